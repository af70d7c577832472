package handlers

import (
	"context"

	"github.com/futig/study-portal-ai/internal/telegram/keyboard"
	"github.com/futig/study-portal-ai/internal/telegram/state"
)

// Message represents a normalized Telegram update
type Message struct {
	ChatID       int64
	UserID       int64
	MessageID    int
	Text         string
	Command      string
	Args         string
	CallbackData string
	CallbackID   string
}

// Handler processes one kind of update
type Handler interface {
	Handle(ctx context.Context, msg *Message) error
}

// BaseHandler provides common functionality for all handlers
type BaseHandler struct {
	sender   Sender
	states   *state.Manager
	keyboard *keyboard.Builder
}

func NewBaseHandler(sender Sender, states *state.Manager) BaseHandler {
	return BaseHandler{
		sender:   sender,
		states:   states,
		keyboard: keyboard.NewBuilder(),
	}
}

func (h *BaseHandler) sendMessage(chatID int64, text string, markup any) {
	h.sender.Send(chatID, text, markup)
}
