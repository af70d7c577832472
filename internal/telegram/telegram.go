package telegram

import (
	"context"
	"fmt"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
	"github.com/futig/study-portal-ai/internal/pkg/ratelimit"
	"github.com/futig/study-portal-ai/internal/telegram/bot"
	"github.com/futig/study-portal-ai/internal/telegram/handlers"
	"github.com/futig/study-portal-ai/internal/telegram/state"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

// Bot is the main telegram bot interface
type Bot interface {
	Start(ctx context.Context) error
	Stop() error
}

// NewBot authorizes against the Telegram API and wires the study assistant into the bot
func NewBot(cfg *config.TelegramConfig, assistant handlers.Assistant, logger *zap.Logger) (Bot, error) {
	api, err := tgbotapi.NewBotAPI(cfg.BotToken)
	if err != nil {
		return nil, fmt.Errorf("create bot API: %w", err)
	}

	logger.Info("telegram bot authorized",
		zap.String("username", api.Self.UserName),
		zap.Int64("id", api.Self.ID),
	)

	sender := handlers.NewMessageSender(api, logger)
	states := state.NewManager(state.NewCacheStorage(cfg.HistoryTTL), cfg.MaxHistory)

	h := bot.Handlers{
		Commands:  handlers.NewCommandHandler(sender, states, assistant),
		Chat:      handlers.NewChatHandler(sender, states, assistant),
		Callbacks: handlers.NewCallbackHandler(sender, states, formatter.NewFactory()),
	}
	limiter := ratelimit.New(cfg.RateLimitPerMinute, cfg.RateLimitBurst)

	b := bot.New(api, cfg, h, sender, limiter, logger)

	logger.Info("telegram bot initialized successfully",
		zap.Int("max_history", cfg.MaxHistory),
		zap.Duration("history_ttl", cfg.HistoryTTL),
	)

	return b, nil
}
