package bot

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/telegram/handlers"
	"github.com/futig/study-portal-ai/internal/telegram/middleware"
	"github.com/futig/study-portal-ai/internal/telegram/render"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Handlers routes each kind of update
type Handlers struct {
	Commands  handlers.Handler
	Chat      handlers.Handler
	Callbacks handlers.Handler
}

// Bot represents the Telegram bot
type Bot struct {
	api         *tgbotapi.BotAPI
	cfg         *config.TelegramConfig
	handlers    Handlers
	sender      handlers.Sender
	logger      *zap.Logger
	loggingMW   *middleware.LoggingMiddleware
	recoveryMW  *middleware.RecoveryMiddleware
	rateLimitMW *middleware.RateLimiterMiddleware
	updatesChan tgbotapi.UpdatesChannel
	stopChan    chan struct{}
	wg          sync.WaitGroup
}

// New wires a bot around an authorized API client
func New(
	api *tgbotapi.BotAPI,
	cfg *config.TelegramConfig,
	h Handlers,
	sender handlers.Sender,
	limiter middleware.Limiter,
	logger *zap.Logger,
) *Bot {
	return &Bot{
		api:         api,
		cfg:         cfg,
		handlers:    h,
		sender:      sender,
		logger:      logger,
		loggingMW:   middleware.NewLoggingMiddleware(logger),
		recoveryMW:  middleware.NewRecoveryMiddleware(logger, sender),
		rateLimitMW: middleware.NewRateLimiterMiddleware(limiter, sender, logger),
		stopChan:    make(chan struct{}),
	}
}

// Start begins long polling
func (b *Bot) Start(ctx context.Context) error {
	b.logger.Info("starting telegram bot")

	u := tgbotapi.NewUpdate(0)
	u.Timeout = b.cfg.UpdateTimeout
	b.updatesChan = b.api.GetUpdatesChan(u)

	ctx = ctxzap.ToContext(ctx, b.logger)
	go b.processUpdates(ctx)

	b.logger.Info("telegram bot started successfully",
		zap.String("username", b.api.Self.UserName),
	)
	return nil
}

// Stop stops polling and waits for in-flight updates up to the shutdown timeout
func (b *Bot) Stop() error {
	b.logger.Info("stopping telegram bot")

	close(b.stopChan)
	b.api.StopReceivingUpdates()

	done := make(chan struct{})
	go func() {
		b.wg.Wait()
		close(done)
	}()

	shutdownTimeout := time.Duration(b.cfg.ShutdownTimeout) * time.Second
	select {
	case <-done:
		b.logger.Info("all handlers completed gracefully")
	case <-time.After(shutdownTimeout):
		b.logger.Warn("shutdown timeout exceeded, some handlers may not have completed",
			zap.Duration("timeout", shutdownTimeout),
		)
		return fmt.Errorf("shutdown timeout exceeded")
	}

	b.logger.Info("telegram bot stopped successfully")
	return nil
}

func (b *Bot) processUpdates(ctx context.Context) {
	// in-flight updates finish after a shutdown signal; Stop bounds the wait
	handlerCtx := context.WithoutCancel(ctx)

	for {
		select {
		case <-ctx.Done():
			ctxzap.Info(ctx, "context cancelled, stopping update processing")
			return
		case <-b.stopChan:
			ctxzap.Info(ctx, "stop signal received, stopping update processing")
			return
		case update, ok := <-b.updatesChan:
			if !ok {
				return
			}
			b.wg.Add(1)
			go func(u tgbotapi.Update) {
				defer b.wg.Done()
				b.handleUpdateWithMiddleware(handlerCtx, u)
			}(update)
		}
	}
}

func (b *Bot) handleUpdateWithMiddleware(ctx context.Context, update tgbotapi.Update) {
	b.rateLimitMW.Handle(update, func(u tgbotapi.Update) {
		b.loggingMW.Handle(u, func(u2 tgbotapi.Update) {
			b.recoveryMW.Handle(u2, func(u3 tgbotapi.Update) {
				b.handleUpdate(ctx, u3)
			})
		})
	})
}

// handleUpdate routes an update: callbacks, then commands, then plain text as chat
func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	msg, handler := b.route(update)
	if handler == nil {
		return
	}

	ctx = ctxzap.ToContext(ctx, b.logger.With(
		zap.Int64("user_id", msg.UserID),
		zap.Int64("chat_id", msg.ChatID),
	))

	if err := handler.Handle(ctx, msg); err != nil {
		ctxzap.Error(ctx, "handler error", zap.Error(err))
		if err := b.sender.Send(msg.ChatID, render.ErrGeneric, nil); err != nil {
			ctxzap.Error(ctx, "failed to send error message", zap.Error(err))
		}
	}
}

func (b *Bot) route(update tgbotapi.Update) (*handlers.Message, handlers.Handler) {
	if q := update.CallbackQuery; q != nil && q.Message != nil {
		return &handlers.Message{
			ChatID:       q.Message.Chat.ID,
			UserID:       q.From.ID,
			MessageID:    q.Message.MessageID,
			CallbackData: q.Data,
			CallbackID:   q.ID,
		}, b.handlers.Callbacks
	}

	m := update.Message
	if m == nil || m.From == nil {
		return nil, nil
	}

	msg := &handlers.Message{
		ChatID:    m.Chat.ID,
		UserID:    m.From.ID,
		MessageID: m.MessageID,
		Text:      m.Text,
	}

	if m.IsCommand() {
		msg.Command = m.Command()
		msg.Args = m.CommandArguments()
		return msg, b.handlers.Commands
	}

	if m.Text == "" {
		return nil, nil
	}
	return msg, b.handlers.Chat
}
