package response

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestError(t *testing.T) {
	rec := httptest.NewRecorder()
	Error(rec, http.StatusInternalServerError, "Invalid request type")

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("unexpected status %d", rec.Code)
	}
	if rec.Header().Get("Content-Type") != "application/json" {
		t.Errorf("unexpected content type %q", rec.Header().Get("Content-Type"))
	}
	if rec.Body.String() != "{\"error\":\"Invalid request type\"}\n" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}

func TestAttachment(t *testing.T) {
	rec := httptest.NewRecorder()
	Attachment(rec, "application/pdf", "notes.pdf", []byte("%PDF-1.3"))

	if got := rec.Header().Get("Content-Disposition"); got != `attachment; filename="notes.pdf"` {
		t.Errorf("unexpected disposition %q", got)
	}
	if rec.Header().Get("Content-Length") != "8" || rec.Body.String() != "%PDF-1.3" {
		t.Errorf("unexpected body %q", rec.Body.String())
	}
}
