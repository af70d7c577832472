package entity

import (
	"errors"
	"fmt"
)

// Domain errors
var (
	// Translator errors
	ErrConfiguration  = errors.New("configuration error")
	ErrValidation     = errors.New("validation error")
	ErrRateLimited    = errors.New("rate limited")
	ErrQuotaExhausted = errors.New("quota exhausted")
	ErrUpstream       = errors.New("upstream error")

	ErrInvalidRequestType = NewValidationError("Invalid request type")

	// Export errors
	ErrUnsupportedFormat = errors.New("unsupported export format")
)

// ValidationError carries a caller-facing message and matches ErrValidation
type ValidationError struct {
	Message string
}

func NewValidationError(format string, args ...any) *ValidationError {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	return e.Message
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// UpstreamError describes a failed call to the chat-completion service.
// StatusCode is 0 when the request never got a response.
type UpstreamError struct {
	Kind       error
	StatusCode int
	Body       string
	Err        error
}

func (e *UpstreamError) Error() string {
	switch {
	case e.StatusCode == 0 && e.Err != nil:
		return fmt.Sprintf("AI service request failed: %v", e.Err)
	case e.Kind == ErrRateLimited:
		return fmt.Sprintf("Rate limits exceeded, please try again later. AI service error: %d - %s", e.StatusCode, e.Body)
	case e.Kind == ErrQuotaExhausted:
		return fmt.Sprintf("AI usage quota exhausted, please add credits. AI service error: %d - %s", e.StatusCode, e.Body)
	default:
		return fmt.Sprintf("AI service error: %d - %s", e.StatusCode, e.Body)
	}
}

func (e *UpstreamError) Is(target error) bool {
	return target == e.Kind
}

func (e *UpstreamError) Unwrap() error {
	return e.Err
}

// ClassifyStatus maps a non-2xx upstream status to an UpstreamError
func ClassifyStatus(statusCode int, body string) *UpstreamError {
	kind := ErrUpstream
	switch statusCode {
	case 429:
		kind = ErrRateLimited
	case 402:
		kind = ErrQuotaExhausted
	}

	return &UpstreamError{
		Kind:       kind,
		StatusCode: statusCode,
		Body:       body,
	}
}

// ErrorStatus names the outcome of a translation for the audit log
func ErrorStatus(err error) GenerationStatus {
	switch {
	case err == nil:
		return GenerationStatusSuccess
	case errors.Is(err, ErrConfiguration):
		return GenerationStatusConfigurationError
	case errors.Is(err, ErrValidation):
		return GenerationStatusValidationError
	case errors.Is(err, ErrRateLimited):
		return GenerationStatusRateLimited
	case errors.Is(err, ErrQuotaExhausted):
		return GenerationStatusQuotaExhausted
	default:
		return GenerationStatusUpstreamError
	}
}
