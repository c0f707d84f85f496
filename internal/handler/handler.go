// Package handler contains the HTTP handlers for the Capricorn backend.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/capricorn-med/backend/pkg/config"
	"github.com/capricorn-med/backend/pkg/genai"
	"github.com/capricorn-med/backend/pkg/mailer"
)

// Handler holds the collaborators shared by all endpoints.
type Handler struct {
	Extractor genai.Extractor
	Mailer    mailer.Mailer
	Config    *config.Config
}

// New creates a new Handler.
func New(extractor genai.Extractor, m mailer.Mailer, cfg *config.Config) *Handler {
	return &Handler{
		Extractor: extractor,
		Mailer:    m,
		Config:    cfg,
	}
}

// writePreflight answers a CORS preflight probe: empty body, one-hour cache.
func writePreflight(w http.ResponseWriter) {
	h := w.Header()
	h.Set("Access-Control-Allow-Origin", "*")
	h.Set("Access-Control-Allow-Methods", "POST")
	h.Set("Access-Control-Allow-Headers", "Content-Type")
	h.Set("Access-Control-Max-Age", "3600")
	w.WriteHeader(http.StatusNoContent)
}

// writeJSON writes v with the CORS headers every non-preflight response
// carries.
func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Errorf("Failed to encode response: %v", err)
	}
}

func logAndWriteError(w http.ResponseWriter, code int, message string) {
	log.Errorln(message)
	writeJSON(w, code, errorResponse{Error: message})
}

// parseJSON parses body tolerantly: malformed JSON, a JSON null, or a
// non-object document all yield nil rather than an error.
func parseJSON(body []byte) map[string]any {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil
	}
	return payload
}
