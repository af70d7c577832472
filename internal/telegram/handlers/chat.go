package handlers

import (
	"context"
	"strings"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	"github.com/futig/study-portal-ai/internal/telegram/state"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// ChatHandler continues the conversation with every plain text message
type ChatHandler struct {
	BaseHandler
	assistant Assistant
}

func NewChatHandler(sender Sender, states *state.Manager, assistant Assistant) *ChatHandler {
	return &ChatHandler{
		BaseHandler: NewBaseHandler(sender, states),
		assistant:   assistant,
	}
}

// Handle sends the whole history with the new turn. History only grows when the answer arrives.
func (h *ChatHandler) Handle(ctx context.Context, msg *Message) error {
	text := strings.TrimSpace(msg.Text)
	if text == "" {
		return nil
	}

	userTurn := entity.ChatTurn{Role: entity.RoleUser, Content: text}
	history := append(h.states.History(msg.ChatID), userTurn)

	ctxzap.Debug(ctx, "chat turn", zap.Int("history_length", len(history)))

	result, err := h.generate(ctx, h.assistant, msg.ChatID, entity.ChatRequest{History: history})
	if err != nil {
		h.HandleError(ctx, msg.ChatID, err)
		return nil
	}

	h.states.AppendHistory(msg.ChatID,
		userTurn,
		entity.ChatTurn{Role: entity.RoleAssistant, Content: result.Text},
	)

	h.deliver(ctx, msg.ChatID, entity.OperationChat, render.TitleFor(entity.OperationChat, ""), result.Text)
	return nil
}
