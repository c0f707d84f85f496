package server_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/capricorn-med/backend/internal/handler"
	"github.com/capricorn-med/backend/pkg/config"
	"github.com/capricorn-med/backend/server"
)

type fixedExtractor struct {
	text string
}

func (f *fixedExtractor) Extract(ctx context.Context, pdf []byte) (string, error) {
	return f.text, nil
}

func newMux() *http.ServeMux {
	cfg := &config.Config{}
	h := handler.New(&fixedExtractor{text: "RESULT"}, nil, cfg)
	return server.New(cfg, h).Routes()
}

func TestHealthRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "OK", rec.Body.String())
}

func TestProcessLabRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/process-lab", strings.NewReader(`{"pdf_data": ""}`))
	newMux().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": "RESULT"}`, rec.Body.String())
}

func TestProcessLabPreflightRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newMux().ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/process-lab", nil))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
