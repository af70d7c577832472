package handlers

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

var _ Sender = &MessageSender{}

// MessageSender sends bot output through the Telegram API
type MessageSender struct {
	bot    *tgbotapi.BotAPI
	logger *zap.Logger
}

func NewMessageSender(bot *tgbotapi.BotAPI, logger *zap.Logger) *MessageSender {
	return &MessageSender{
		bot:    bot,
		logger: logger,
	}
}

func (s *MessageSender) Send(chatID int64, text string, markup any) error {
	msg := tgbotapi.NewMessage(chatID, text)
	if markup != nil {
		msg.ReplyMarkup = markup
	}

	if _, err := s.bot.Send(msg); err != nil {
		s.logger.Error("failed to send message",
			zap.Error(err),
			zap.Int64("chat_id", chatID),
		)
		return err
	}

	return nil
}

func (s *MessageSender) SendDocument(chatID int64, filename string, data []byte) error {
	doc := tgbotapi.NewDocument(chatID, tgbotapi.FileBytes{
		Name:  filename,
		Bytes: data,
	})
	if _, err := s.bot.Send(doc); err != nil {
		return fmt.Errorf("send document: %w", err)
	}
	return nil
}

func (s *MessageSender) Typing(chatID int64) error {
	_, err := s.bot.Request(tgbotapi.NewChatAction(chatID, tgbotapi.ChatTyping))
	return err
}

func (s *MessageSender) AnswerCallback(callbackID, text string) error {
	if _, err := s.bot.Request(tgbotapi.NewCallback(callbackID, text)); err != nil {
		s.logger.Error("failed to answer callback",
			zap.Error(err),
			zap.String("callback_id", callbackID),
		)
		return err
	}
	return nil
}
