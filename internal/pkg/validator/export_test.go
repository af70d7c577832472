package validator

import (
	"errors"
	"strings"
	"testing"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
)

func TestValidateExport(t *testing.T) {
	v := NewExportValidator(config.ExportConfig{MaxTextSize: 16})

	tests := []struct {
		name    string
		req     entity.ExportRequest
		wantErr error
	}{
		{"valid", entity.ExportRequest{Format: entity.FormatPDF, Text: "notes"}, nil},
		{"unknown format", entity.ExportRequest{Format: "odt", Text: "notes"}, entity.ErrUnsupportedFormat},
		{"empty text", entity.ExportRequest{Format: entity.FormatHTML, Text: "  "}, entity.ErrValidation},
		{"too large", entity.ExportRequest{Format: entity.FormatMarkdown, Text: strings.Repeat("a", 17)}, entity.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateExport(&tt.req)
			if tt.wantErr == nil && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Fatalf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"Cell biology (week 1)": "Cell_biology_week_1",
		"../etc/passwd":         "..etcpasswd",
		"   ":                   "study_notes",
		`say "hi"`:              "say_hi",
	}
	for in, want := range tests {
		if got := SanitizeFilename(in); got != want {
			t.Errorf("SanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}
