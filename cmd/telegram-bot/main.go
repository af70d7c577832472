package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/futig/study-portal-ai/internal/builder"
	"go.uber.org/zap"
)

func main() {
	bot, logger, err := builder.BuildTelegramBot()
	if err != nil {
		log.Fatal("Failed to build telegram bot:", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bot.Start(ctx); err != nil {
		logger.Error("telegram bot failed to start", zap.Error(err))
		os.Exit(1)
	}

	<-ctx.Done()
	logger.Info("shutdown signal received, stopping telegram bot")

	if err := bot.Stop(); err != nil {
		logger.Error("error stopping bot", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("telegram bot stopped gracefully")
}
