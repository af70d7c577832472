package handlers

import (
	"context"
	"fmt"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/validator"
	"github.com/futig/study-portal-ai/internal/telegram/keyboard"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/futig/study-portal-ai/internal/telegram/state"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// CallbackHandler handles inline button clicks
type CallbackHandler struct {
	BaseHandler
	formatters FormatterFactory
}

func NewCallbackHandler(sender Sender, states *state.Manager, formatters FormatterFactory) *CallbackHandler {
	return &CallbackHandler{
		BaseHandler: NewBaseHandler(sender, states),
		formatters:  formatters,
	}
}

func (h *CallbackHandler) Handle(ctx context.Context, msg *Message) error {
	data, err := keyboard.ParseCallback(msg.CallbackData)
	if err != nil || data.Action != keyboard.ActionDownload {
		ctxzap.Warn(ctx, "unknown callback", zap.String("data", msg.CallbackData))
		h.sender.AnswerCallback(msg.CallbackID, "❌ Unknown action")
		return nil
	}

	h.sender.AnswerCallback(msg.CallbackID, "⏳ Preparing file...")

	last, ok := h.states.LastResult(msg.ChatID)
	if !ok {
		h.sendMessage(msg.ChatID, render.MsgNothingSave, nil)
		return nil
	}

	f, err := h.formatters.Create(entity.ResultFormat(data.Value))
	if err != nil {
		return fmt.Errorf("create formatter: %w", err)
	}

	file, err := f.Format(last.Title, last.Text)
	if err != nil {
		return fmt.Errorf("format %s: %w", data.Value, err)
	}

	filename := validator.SanitizeFilename(last.Title) + f.FileExtension()
	if err := h.sender.SendDocument(msg.ChatID, filename, file); err != nil {
		return err
	}

	ctxzap.Info(ctx, "export sent",
		zap.String("format", data.Value),
		zap.String("kind", string(last.Kind)),
		zap.Int("size", len(file)),
	)
	return nil
}
