package handler_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/capricorn-med/backend/internal/handler"
	"github.com/capricorn-med/backend/pkg/config"
)

type stubExtractor struct {
	text string
	err  error

	gotPDF []byte
}

func (s *stubExtractor) Extract(ctx context.Context, pdf []byte) (string, error) {
	s.gotPDF = pdf
	return s.text, s.err
}

func processLab(t *testing.T, extractor *stubExtractor, method, body string) *httptest.ResponseRecorder {
	t.Helper()

	h := handler.New(extractor, nil, &config.Config{})
	req := httptest.NewRequest(method, "/process-lab", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ProcessLab(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var payload struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	return payload.Error
}

func TestProcessLabMissingField(t *testing.T) {
	for _, body := range []string{`{}`, `{"other": "field"}`, `not json at all`, ``, `null`} {
		rec := processLab(t, &stubExtractor{}, http.MethodPost, body)

		assert.Equal(t, http.StatusBadRequest, rec.Code, "body: %q", body)
		assert.Equal(t, "Missing pdf_data in JSON payload", decodeError(t, rec), "body: %q", body)
	}
}

func TestProcessLabInvalidBase64(t *testing.T) {
	rec := processLab(t, &stubExtractor{}, http.MethodPost, `{"pdf_data": "not-valid-base64!!"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "Invalid base64 data")
}

func TestProcessLabNonStringField(t *testing.T) {
	rec := processLab(t, &stubExtractor{}, http.MethodPost, `{"pdf_data": 5}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec), "Invalid base64 data")
}

func TestProcessLabEmptyModelResponse(t *testing.T) {
	rec := processLab(t, &stubExtractor{text: ""}, http.MethodPost, `{"pdf_data": ""}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "GenAI returned an empty response.", decodeError(t, rec))
}

func TestProcessLabSuccess(t *testing.T) {
	extractor := &stubExtractor{text: "RESULT"}
	pdf := []byte("%PDF-1.4 fake report")
	body := `{"pdf_data": "` + base64.StdEncoding.EncodeToString(pdf) + `"}`

	rec := processLab(t, extractor, http.MethodPost, body)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success": true, "data": "RESULT"}`, rec.Body.String())
	assert.Equal(t, pdf, extractor.gotPDF, "extractor should receive the decoded bytes")
}

func TestProcessLabBackendError(t *testing.T) {
	extractor := &stubExtractor{err: errors.New("quota exceeded")}

	rec := processLab(t, extractor, http.MethodPost, `{"pdf_data": ""}`)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	msg := decodeError(t, rec)
	assert.Contains(t, msg, "An unexpected error occurred")
	assert.Contains(t, msg, "quota exceeded")
}

func TestProcessLabPreflight(t *testing.T) {
	// The preflight branch must win even when a JSON body is supplied.
	rec := processLab(t, &stubExtractor{}, http.MethodOptions, `{"pdf_data": "ignored"}`)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "POST", rec.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Content-Type", rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Equal(t, "3600", rec.Header().Get("Access-Control-Max-Age"))
}

func TestProcessLabCORSHeaders(t *testing.T) {
	// Every non-preflight response, success or failure, carries the same
	// two headers.
	cases := []struct {
		name      string
		extractor *stubExtractor
		body      string
	}{
		{"missing field", &stubExtractor{}, `{}`},
		{"invalid base64", &stubExtractor{}, `{"pdf_data": "!!"}`},
		{"empty response", &stubExtractor{}, `{"pdf_data": ""}`},
		{"backend error", &stubExtractor{err: errors.New("boom")}, `{"pdf_data": ""}`},
		{"success", &stubExtractor{text: "RESULT"}, `{"pdf_data": ""}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := processLab(t, tc.extractor, http.MethodPost, tc.body)

			assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
		})
	}
}

func TestBase64RoundTrip(t *testing.T) {
	// Decoding then re-encoding with standard base64 reproduces the
	// original string.
	pdf := []byte("%PDF-1.4\n1 0 obj\n<< /Type /Catalog >>\nendobj")
	encoded := base64.StdEncoding.EncodeToString(pdf)

	decoded, err := base64.StdEncoding.DecodeString(encoded)
	require.NoError(t, err)
	assert.Equal(t, pdf, decoded)
	assert.Equal(t, encoded, base64.StdEncoding.EncodeToString(decoded))
}
