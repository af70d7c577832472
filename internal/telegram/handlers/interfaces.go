package handlers

import (
	"context"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
)

// Assistant runs AI requests for the bot
type Assistant interface {
	Generate(ctx context.Context, req entity.AiRequest) (*entity.Result, error)
}

// Sender delivers bot output to a chat
type Sender interface {
	Send(chatID int64, text string, markup any) error
	SendDocument(chatID int64, filename string, data []byte) error
	Typing(chatID int64) error
	AnswerCallback(callbackID, text string) error
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}
