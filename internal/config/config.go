package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/study-portal-ai/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// LLM providers
const (
	ProviderChatCompletions = "chat-completions"
	ProviderGemini          = "gemini"
	ProviderOpenAI          = "openai"
	ProviderAnthropic       = "anthropic"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr string `env:"SERVER_ADDR" envDefault:":8080"`
	// Client IPs come from proxy headers only when set; rate limiting keys on them
	TrustProxy bool `env:"SERVER_TRUST_PROXY" envDefault:"false"`

	// Database configuration. Generation history is kept in memory when DatabaseURL is empty.
	DatabaseURL         string        `env:"DATABASE_URL"`
	DBMaxConns          int           `env:"DB_MAX_CONNS" envDefault:"10"`
	DBMinConns          int           `env:"DB_MIN_CONNS" envDefault:"1"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`

	// How long in-memory generation history is kept when no database is configured
	GenerationsRetention time.Duration `env:"GENERATIONS_RETENTION" envDefault:"24h"`

	// Upstream chat-completion service
	LLMConnectorCfg LLMConnectorConfig `envPrefix:"LLM_"`

	// Inbound rate limiting, per client
	RateLimitCfg RateLimitConfig `envPrefix:"RATE_LIMIT_"`

	// Document export
	ExportCfg ExportConfig `envPrefix:"EXPORT_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Telegram bot configuration (optional)
	TelegramCfg TelegramConfig `envPrefix:"TELEGRAM_"`

	// Environment (set from flag, not from env var)
	Environment string
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"120s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"110s"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL"`
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider            string               `env:"PROVIDER" envDefault:"chat-completions"`
	Model               string               `env:"MODEL"`
	CompletionsEndpoint string               `env:"COMPLETIONS_ENDPOINT" envDefault:"/chat/completions"`
	Retry               pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type RateLimitConfig struct {
	PerMinute int `env:"PER_MINUTE" envDefault:"30"`
	Burst     int `env:"BURST" envDefault:"10"`
}

type ExportConfig struct {
	MaxTextSize int64 `env:"MAX_TEXT_SIZE" envDefault:"1048576"`
}

// TelegramConfig holds Telegram bot configuration
type TelegramConfig struct {
	BotToken           string        `env:"BOT_TOKEN"`
	UpdateTimeout      int           `env:"UPDATE_TIMEOUT" envDefault:"60"`
	RateLimitPerMinute int           `env:"RATE_LIMIT_PER_MINUTE" envDefault:"20"`
	RateLimitBurst     int           `env:"RATE_LIMIT_BURST" envDefault:"5"`
	MaxHistory         int           `env:"MAX_HISTORY" envDefault:"20"`
	HistoryTTL         time.Duration `env:"HISTORY_TTL" envDefault:"30m"`
	ShutdownTimeout    int           `env:"SHUTDOWN_TIMEOUT" envDefault:"30"` // seconds
}

// defaultServiceURLs are used when LLM_SERVICE_URL is not set
var defaultServiceURLs = map[string]string{
	ProviderChatCompletions: "https://generativelanguage.googleapis.com/v1beta/openai",
	ProviderGemini:          "https://generativelanguage.googleapis.com/v1beta",
	ProviderOpenAI:          "https://api.openai.com/v1",
	ProviderAnthropic:       "https://api.anthropic.com",
}

// defaultModels are used when LLM_MODEL is not set
var defaultModels = map[string]string{
	ProviderChatCompletions: "gemini-2.0-flash",
	ProviderGemini:          "gemini-2.0-flash",
	ProviderOpenAI:          "gpt-4o-mini",
	ProviderAnthropic:       "claude-3-5-haiku-latest",
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Variables are usually set externally in containers, so a missing file is fine.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.LLMConnectorCfg.Provider = strings.ToLower(strings.TrimSpace(cfg.LLMConnectorCfg.Provider))
	if cfg.LLMConnectorCfg.Url == "" {
		cfg.LLMConnectorCfg.Url = defaultServiceURLs[cfg.LLMConnectorCfg.Provider]
	}
	cfg.LLMConnectorCfg.Url = strings.TrimRight(cfg.LLMConnectorCfg.Url, "/")
	if strings.TrimSpace(cfg.LLMConnectorCfg.Model) == "" {
		cfg.LLMConnectorCfg.Model = defaultModels[cfg.LLMConnectorCfg.Provider]
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if _, ok := defaultServiceURLs[cfg.LLMConnectorCfg.Provider]; !ok {
		errors = append(errors, fmt.Sprintf("LLM_PROVIDER must be one of chat-completions, gemini, openai, anthropic, got %q", cfg.LLMConnectorCfg.Provider))
	}

	if strings.TrimSpace(cfg.LLMConnectorCfg.Model) == "" {
		errors = append(errors, "LLM_MODEL must not be empty")
	}

	if cfg.GenerationsRetention <= 0 {
		errors = append(errors, fmt.Sprintf("GENERATIONS_RETENTION must be positive, got %s", cfg.GenerationsRetention))
	}

	if cfg.LLMConnectorCfg.Retry.Attempts < 1 || cfg.LLMConnectorCfg.Retry.Attempts > 5 {
		errors = append(errors, fmt.Sprintf("LLM_RETRY_ATTEMPTS must be between 1 and 5, got %d", cfg.LLMConnectorCfg.Retry.Attempts))
	}

	if cfg.RateLimitCfg.PerMinute < 1 || cfg.RateLimitCfg.PerMinute > 600 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_PER_MINUTE must be between 1 and 600, got %d", cfg.RateLimitCfg.PerMinute))
	}

	if cfg.RateLimitCfg.Burst < 1 || cfg.RateLimitCfg.Burst > 100 {
		errors = append(errors, fmt.Sprintf("RATE_LIMIT_BURST must be between 1 and 100, got %d", cfg.RateLimitCfg.Burst))
	}

	if cfg.ExportCfg.MaxTextSize < 1 {
		errors = append(errors, fmt.Sprintf("EXPORT_MAX_TEXT_SIZE must be positive, got %d", cfg.ExportCfg.MaxTextSize))
	}

	if cfg.TelegramCfg.MaxHistory < 1 || cfg.TelegramCfg.MaxHistory > 100 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_MAX_HISTORY must be between 1 and 100, got %d", cfg.TelegramCfg.MaxHistory))
	}

	if cfg.TelegramCfg.RateLimitPerMinute < 1 || cfg.TelegramCfg.RateLimitPerMinute > 60 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_PER_MINUTE must be between 1 and 60, got %d", cfg.TelegramCfg.RateLimitPerMinute))
	}

	if cfg.TelegramCfg.RateLimitBurst < 1 || cfg.TelegramCfg.RateLimitBurst > 20 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_RATE_LIMIT_BURST must be between 1 and 20, got %d", cfg.TelegramCfg.RateLimitBurst))
	}

	if cfg.TelegramCfg.ShutdownTimeout < 1 || cfg.TelegramCfg.ShutdownTimeout > 300 {
		errors = append(errors, fmt.Sprintf("TELEGRAM_SHUTDOWN_TIMEOUT must be between 1 and 300 seconds, got %d", cfg.TelegramCfg.ShutdownTimeout))
	}

	if cfg.DatabaseURL != "" {
		if cfg.DBMaxConns < 1 || cfg.DBMaxConns > 200 {
			errors = append(errors, fmt.Sprintf("DB_MAX_CONNS must be between 1 and 200, got %d", cfg.DBMaxConns))
		}

		if cfg.DBMinConns < 0 || cfg.DBMinConns > cfg.DBMaxConns {
			errors = append(errors, fmt.Sprintf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS(%d), got %d", cfg.DBMaxConns, cfg.DBMinConns))
		}
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
