package middleware

import (
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// RecoveryMiddleware keeps a panicking handler from taking the bot down
type RecoveryMiddleware struct {
	logger   *zap.Logger
	notifier Notifier
}

func NewRecoveryMiddleware(logger *zap.Logger, notifier Notifier) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logger:   logger,
		notifier: notifier,
	}
}

func (m *RecoveryMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	defer func() {
		if r := recover(); r != nil {
			m.logger.Error("panic recovered in telegram handler",
				zap.Any("panic", r),
				zap.String("stack", string(debug.Stack())),
				zap.Int("update_id", update.UpdateID),
			)

			if _, chatID := updateIDs(update); chatID != 0 {
				if err := m.notifier.Send(chatID, "❌ Something went wrong. Please try again.", nil); err != nil {
					m.logger.Error("failed to send error message", zap.Error(err), zap.Int64("chat_id", chatID))
				}
			}
		}
	}()

	next(update)
}
