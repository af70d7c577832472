package middleware

import (
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const warningInterval = 30 * time.Second

type Limiter interface {
	Allow(key string) bool
}

type Notifier interface {
	Send(chatID int64, text string, markup any) error
}

// RateLimiterMiddleware drops updates from users that exhausted their token bucket
// and warns them at most once per warningInterval.
type RateLimiterMiddleware struct {
	limiter  Limiter
	warned   *cache.Cache
	notifier Notifier
	logger   *zap.Logger
}

func NewRateLimiterMiddleware(limiter Limiter, notifier Notifier, logger *zap.Logger) *RateLimiterMiddleware {
	return &RateLimiterMiddleware{
		limiter:  limiter,
		warned:   cache.New(warningInterval, time.Minute),
		notifier: notifier,
		logger:   logger,
	}
}

func (rl *RateLimiterMiddleware) Handle(update tgbotapi.Update, next func(tgbotapi.Update)) {
	userID, chatID := updateIDs(update)
	if userID == 0 {
		next(update)
		return
	}

	key := strconv.FormatInt(userID, 10)
	if rl.limiter.Allow(key) {
		next(update)
		return
	}

	rl.logger.Warn("rate limit exceeded",
		zap.Int64("user_id", userID),
		zap.Int64("chat_id", chatID),
	)

	// Add fails while a previous warning is still fresh
	if err := rl.warned.Add(key, struct{}{}, cache.DefaultExpiration); err == nil {
		if err := rl.notifier.Send(chatID, "⚠️ Too many requests. Please wait a little.", nil); err != nil {
			rl.logger.Error("failed to send rate limit warning", zap.Error(err), zap.Int64("chat_id", chatID))
		}
	}
}

func updateIDs(update tgbotapi.Update) (userID, chatID int64) {
	switch {
	case update.Message != nil && update.Message.From != nil:
		return update.Message.From.ID, update.Message.Chat.ID
	case update.CallbackQuery != nil && update.CallbackQuery.Message != nil:
		return update.CallbackQuery.From.ID, update.CallbackQuery.Message.Chat.ID
	default:
		return 0, 0
	}
}
