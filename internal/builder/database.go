package builder

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

const pingTimeout = 5 * time.Second

func poolSettings(cfg *config.Config) repository.PoolSettings {
	return repository.PoolSettings{
		MaxConns:          int32(cfg.DBMaxConns),
		MinConns:          int32(cfg.DBMinConns),
		MaxConnLifetime:   cfg.DBMaxConnLifetime,
		MaxConnIdleTime:   cfg.DBMaxConnIdleTime,
		HealthCheckPeriod: cfg.DBHealthCheckPeriod,
	}
}

// setupDatabase opens the pool behind the generation store and fails fast when postgres is unreachable
func setupDatabase(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*pgxpool.Pool, error) {
	poolCfg, err := repository.NewPoolConfig(cfg.DatabaseURL, poolSettings(cfg))
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	logger.Info("generation store connected",
		zap.String("host", poolCfg.ConnConfig.Host),
		zap.String("database", poolCfg.ConnConfig.Database),
		zap.Int32("max_conns", poolCfg.MaxConns),
	)

	return pool, nil
}
