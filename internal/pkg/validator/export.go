package validator

import (
	"fmt"
	"strings"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/entity"
)

var AllowedFormats = map[entity.ResultFormat]bool{
	entity.FormatMarkdown: true,
	entity.FormatHTML:     true,
	entity.FormatPDF:      true,
	entity.FormatDOCX:     true,
}

// Validator validates export requests
type Validator struct {
	cfg config.ExportConfig
}

func NewExportValidator(cfg config.ExportConfig) *Validator {
	return &Validator{cfg: cfg}
}

func (v *Validator) ValidateExport(req *entity.ExportRequest) error {
	if !AllowedFormats[req.Format] {
		return fmt.Errorf("%w: %q (allowed: markdown, html, pdf, docx)", entity.ErrUnsupportedFormat, req.Format)
	}
	if strings.TrimSpace(req.Text) == "" {
		return entity.NewValidationError("text must not be empty")
	}
	if int64(len(req.Text)) > v.cfg.MaxTextSize {
		return entity.NewValidationError("text is %d bytes (max %d)", len(req.Text), v.cfg.MaxTextSize)
	}
	return nil
}

// SanitizeFilename turns a title into a safe attachment name
func SanitizeFilename(title string) string {
	replacer := strings.NewReplacer(
		" ", "_",
		"/", "",
		"\\", "",
		"\"", "",
		"(", "",
		")", "",
		"[", "",
		"]", "",
		"{", "",
		"}", "",
		"\n", "",
		"\r", "",
	)
	name := replacer.Replace(strings.TrimSpace(title))
	if name == "" {
		return "study_notes"
	}
	return name
}
