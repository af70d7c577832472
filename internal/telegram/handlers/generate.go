package handlers

import (
	"context"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/futig/study-portal-ai/internal/telegram/state"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

func (h *BaseHandler) generate(ctx context.Context, assistant Assistant, chatID int64, req entity.AiRequest) (*entity.Result, error) {
	typing := NewTypingNotifier(h.sender, chatID)
	typing.Start(ctx)
	defer typing.Stop()

	return assistant.Generate(ctx, req)
}

// deliver sends a result in as many messages as needed and remembers it for export
func (h *BaseHandler) deliver(ctx context.Context, chatID int64, kind entity.OperationKind, title, text string) {
	chunks := render.SplitMessage(text, render.MaxMessageLength)
	for i, chunk := range chunks {
		var markup any
		if i == len(chunks)-1 {
			markup = h.keyboard.ExportKeyboard()
		}
		if err := h.sender.Send(chatID, chunk, markup); err != nil {
			ctxzap.Error(ctx, "failed to deliver result", zap.Error(err), zap.Int("chunk", i))
			return
		}
	}

	h.states.SetLastResult(chatID, &state.LastResult{
		Kind:  kind,
		Title: title,
		Text:  text,
	})
}
