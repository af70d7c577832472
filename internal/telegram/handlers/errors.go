package handlers

import (
	"context"
	"errors"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type ErrorSeverity int

const (
	SeverityWarning ErrorSeverity = iota
	SeverityError
)

// HandlerError pairs an error with what the user sees and how it is logged
type HandlerError struct {
	Err         error
	UserMessage string
	Severity    ErrorSeverity
}

func classifyHandlerError(err error) *HandlerError {
	severity := SeverityError
	if errors.Is(err, entity.ErrValidation) || errors.Is(err, entity.ErrRateLimited) {
		severity = SeverityWarning
	}

	return &HandlerError{
		Err:         err,
		UserMessage: render.ClassifyError(err),
		Severity:    severity,
	}
}

// HandleError logs the error and tells the user what went wrong
func (h *BaseHandler) HandleError(ctx context.Context, chatID int64, err error) {
	if err == nil {
		return
	}

	handlerErr := classifyHandlerError(err)

	switch handlerErr.Severity {
	case SeverityWarning:
		ctxzap.Warn(ctx, "request rejected", zap.Error(handlerErr.Err), zap.Int64("chat_id", chatID))
	default:
		ctxzap.Error(ctx, "request failed", zap.Error(handlerErr.Err), zap.Int64("chat_id", chatID))
	}

	h.sendMessage(chatID, handlerErr.UserMessage, nil)
}
