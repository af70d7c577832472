package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/study-portal-ai/internal/api"
	assistantapi "github.com/futig/study-portal-ai/internal/api/assistant"
	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/integration/llm"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
	"github.com/futig/study-portal-ai/internal/pkg/logger"
	"github.com/futig/study-portal-ai/internal/pkg/ratelimit"
	"github.com/futig/study-portal-ai/internal/pkg/validator"
	"github.com/futig/study-portal-ai/internal/repository"
	"github.com/futig/study-portal-ai/internal/telegram"
	"github.com/futig/study-portal-ai/internal/usecase/assistant"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

func Build() (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	uc, db, err := buildAssistant(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	handler := assistantapi.NewHandler(uc, formatter.NewFactory(), validator.NewExportValidator(cfg.ExportCfg))
	limiter := ratelimit.New(cfg.RateLimitCfg.PerMinute, cfg.RateLimitCfg.Burst)

	// the request deadline must outlive one upstream call
	requestTimeout := cfg.LLMConnectorCfg.RequestTimeout + 5*time.Second
	router := api.SetupRouter(handler, limiter, api.RouterOptions{
		RequestTimeout: requestTimeout,
		TrustProxy:     cfg.TrustProxy,
	}, log)
	log.Info("HTTP router configured",
		zap.Duration("request_timeout", requestTimeout),
		zap.Bool("trust_proxy", cfg.TrustProxy),
	)

	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      requestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	log.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server: server,
		db:     db,
		logger: log,
	}, nil
}

// BuildTelegramBot creates and initializes the Telegram bot
func BuildTelegramBot() (telegram.Bot, *zap.Logger, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if cfg.TelegramCfg.BotToken == "" {
		return nil, nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is required to run the bot")
	}

	log, err := logger.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	log.Info("Building Telegram bot",
		zap.String("environment", cfg.Environment),
	)

	uc, db, err := buildAssistant(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	bot, err := telegram.NewBot(&cfg.TelegramCfg, uc, log)
	if err != nil {
		if db != nil {
			db.Close()
		}
		return nil, nil, fmt.Errorf("initialize telegram bot: %w", err)
	}

	log.Info("Telegram bot built successfully",
		zap.String("environment", cfg.Environment),
	)

	return bot, log, nil
}

// buildAssistant wires storage and the upstream connector into the translator.
// The returned pool is nil when generation history lives in memory.
func buildAssistant(ctx context.Context, cfg *config.Config, log *zap.Logger) (*assistant.Usecase, *pgxpool.Pool, error) {
	generations, db, err := setupGenerations(ctx, cfg, log)
	if err != nil {
		return nil, nil, err
	}

	connector := setupConnector(cfg, log)
	if !connector.Configured() {
		log.Warn("LLM_TOKEN is not set, AI requests will fail until it is configured",
			zap.String("provider", connector.Provider()),
		)
	}

	uc := assistant.NewUsecase(connector, generations, cfg.LLMConnectorCfg.Retry)
	log.Info("Use cases initialized",
		zap.String("provider", connector.Provider()),
		zap.String("model", cfg.LLMConnectorCfg.Model),
		zap.Uint("retry_attempts", cfg.LLMConnectorCfg.Retry.Attempts),
	)

	return uc, db, nil
}

func setupGenerations(ctx context.Context, cfg *config.Config, log *zap.Logger) (assistant.GenerationRepository, *pgxpool.Pool, error) {
	if cfg.DatabaseURL == "" {
		log.Info("DATABASE_URL is not set, keeping generation history in memory",
			zap.Duration("retention", cfg.GenerationsRetention),
		)
		return repository.NewGenerationMemory(cfg.GenerationsRetention), nil, nil
	}

	db, err := setupDatabase(ctx, cfg, log)
	if err != nil {
		return nil, nil, fmt.Errorf("setup database: %w", err)
	}

	log.Info("Running database migrations")
	if err := repository.RunMigrations(cfg.DatabaseURL); err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("run migrations: %w", err)
	}
	log.Info("Database migrations completed successfully")

	return repository.NewGenerationPostgres(db), db, nil
}

func setupConnector(cfg *config.Config, log *zap.Logger) assistant.LLMConnector {
	if cfg.EnableMocks {
		log.Info("Using mock connector for the AI service")
		return llm.NewMockConnector()
	}

	llmCfg := cfg.LLMConnectorCfg
	log.Info("Using real connector for the AI service",
		zap.String("provider", llmCfg.Provider),
		zap.String("service_url", llmCfg.Url),
	)

	switch llmCfg.Provider {
	case config.ProviderGemini:
		return llm.NewGeminiConnector(llmCfg)
	case config.ProviderOpenAI:
		return llm.NewOpenAIConnector(llmCfg)
	case config.ProviderAnthropic:
		return llm.NewAnthropicConnector(llmCfg)
	default:
		return llm.NewConnector(llmCfg)
	}
}
