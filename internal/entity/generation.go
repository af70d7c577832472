package entity

import "time"

type GenerationStatus string

const (
	GenerationStatusSuccess            GenerationStatus = "success"
	GenerationStatusConfigurationError GenerationStatus = "configuration_error"
	GenerationStatusValidationError    GenerationStatus = "validation_error"
	GenerationStatusRateLimited        GenerationStatus = "rate_limited"
	GenerationStatusQuotaExhausted     GenerationStatus = "quota_exhausted"
	GenerationStatusUpstreamError      GenerationStatus = "upstream_error"
)

// Generation is the audit record of one translation. It never holds prompt or result content.
type Generation struct {
	ID           string
	Kind         OperationKind
	Status       GenerationStatus
	Provider     string
	ResultLength int
	Attempts     int
	Duration     time.Duration
	CreatedAt    time.Time
}

type ResultFormat string

const (
	FormatMarkdown ResultFormat = "markdown"
	FormatHTML     ResultFormat = "html"
	FormatPDF      ResultFormat = "pdf"
	FormatDOCX     ResultFormat = "docx"
)

type ExportRequest struct {
	Format ResultFormat `json:"format"`
	Title  string       `json:"title"`
	Text   string       `json:"text"`
}
