package handler

import (
	"io"
	"net/http"

	"github.com/capricorn-med/backend/pkg/mailer"
)

// Feedback accepts {"name", "email", "feedback"} and emails the feedback
// to the team. Name and email are optional; the feedback text is not.
func (h *Handler) Feedback(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writePreflight(w)
		return
	}

	body, err := io.ReadAll(r.Body)
	if err != nil {
		feedbackError(w, http.StatusBadRequest, "No data provided")
		return
	}

	payload := parseJSON(body)
	if len(payload) == 0 {
		feedbackError(w, http.StatusBadRequest, "No data provided")
		return
	}

	msg := mailer.FeedbackMessage{
		Name:  "Anonymous User",
		Email: "No email provided",
	}
	if name, ok := payload["name"].(string); ok && name != "" {
		msg.Name = name
	}
	if email, ok := payload["email"].(string); ok && email != "" {
		msg.Email = email
	}
	if feedback, ok := payload["feedback"].(string); ok {
		msg.Feedback = feedback
	}

	if msg.Feedback == "" {
		feedbackError(w, http.StatusBadRequest, "No feedback text provided")
		return
	}

	if h.Config.Feedback.APIKey == "" {
		feedbackError(w, http.StatusInternalServerError, "Email service configuration error")
		return
	}

	if err := h.Mailer.Send(r.Context(), msg); err != nil {
		feedbackError(w, http.StatusInternalServerError, err.Error())
		return
	}

	log.Infoln("Feedback email sent")
	writeJSON(w, http.StatusOK, feedbackResponse{Success: true})
}

func feedbackError(w http.ResponseWriter, code int, message string) {
	log.Errorln(message)
	writeJSON(w, code, feedbackResponse{Success: false, Error: message})
}
