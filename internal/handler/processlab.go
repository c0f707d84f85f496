package handler

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"
)

// ProcessLab accepts {"pdf_data": "<base64>"}, runs the Gemini extraction
// over the decoded PDF, and relays the model's plain-text answer.
//
// The flow is strictly linear: validate, decode, call, map. Every failure
// is recovered here into a JSON error response; nothing propagates past
// this handler.
func (h *Handler) ProcessLab(w http.ResponseWriter, r *http.Request) {
	if r.Method == http.MethodOptions {
		writePreflight(w)
		return
	}

	// Outer boundary: anything that panics below still turns into a 500
	// instead of killing the connection without a response.
	defer func() {
		if rec := recover(); rec != nil {
			logAndWriteError(w, http.StatusInternalServerError,
				fmt.Sprintf("An unexpected error occurred: %v", rec))
		}
	}()

	body, err := io.ReadAll(r.Body)
	if err != nil {
		logAndWriteError(w, http.StatusBadRequest, "Missing pdf_data in JSON payload")
		return
	}

	payload := parseJSON(body)
	raw, ok := payload["pdf_data"]
	if payload == nil || !ok {
		logAndWriteError(w, http.StatusBadRequest, "Missing pdf_data in JSON payload")
		return
	}

	encoded, ok := raw.(string)
	if !ok {
		logAndWriteError(w, http.StatusBadRequest, "Invalid base64 data: pdf_data is not a string")
		return
	}

	pdf, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		logAndWriteError(w, http.StatusBadRequest, fmt.Sprintf("Invalid base64 data: %v", err))
		return
	}

	text, err := h.Extractor.Extract(r.Context(), pdf)
	if err != nil {
		logAndWriteError(w, http.StatusInternalServerError,
			fmt.Sprintf("An unexpected error occurred: %v", err))
		return
	}

	if text == "" {
		logAndWriteError(w, http.StatusInternalServerError, "GenAI returned an empty response.")
		return
	}

	log.Infoln("Successfully processed PDF and extracted genomic information")
	writeJSON(w, http.StatusOK, processLabResponse{
		Success: true,
		Data:    text,
	})
}
