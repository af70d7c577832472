package repository

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings bounds the pgx pool behind the generation store
type PoolSettings struct {
	MaxConns          int32
	MinConns          int32
	MaxConnLifetime   time.Duration
	MaxConnIdleTime   time.Duration
	HealthCheckPeriod time.Duration
}

// NewPoolConfig parses databaseURL and applies the non-zero settings on top of pgx defaults
func NewPoolConfig(databaseURL string, s PoolSettings) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	if s.MaxConns > 0 {
		poolCfg.MaxConns = s.MaxConns
	}
	poolCfg.MinConns = s.MinConns
	if s.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = s.MaxConnLifetime
	}
	if s.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = s.MaxConnIdleTime
	}
	if s.HealthCheckPeriod > 0 {
		poolCfg.HealthCheckPeriod = s.HealthCheckPeriod
	}

	return poolCfg, nil
}
