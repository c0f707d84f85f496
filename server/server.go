// Package server wires the HTTP routes and runs the listener.
package server

import (
	"net/http"

	"github.com/capricorn-med/backend/internal/handler"
	"github.com/capricorn-med/backend/logging"
	"github.com/capricorn-med/backend/pkg/config"
)

type Server struct {
	config  *config.Config
	handler *handler.Handler
}

func New(cfg *config.Config, h *handler.Handler) *Server {
	return &Server{
		config:  cfg,
		handler: h,
	}
}

// Routes returns the request mux. Exposed separately so tests can drive
// the full routing table without a listener.
func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/process-lab", s.handler.ProcessLab)
	mux.HandleFunc("/feedback", s.handler.Feedback)

	// Simple health check endpoint
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	return mux
}

// ListenAndServe blocks serving requests until the listener fails.
func (s *Server) ListenAndServe() error {
	log := logging.GetLogger()

	srv := &http.Server{
		Addr:    s.config.Server.ListenAddress,
		Handler: s.Routes(),
	}

	log.Infof("Starting server on %s", s.config.Server.ListenAddress)
	return srv.ListenAndServe()
}
