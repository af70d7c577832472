package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// GenerationRepository defines the interface for generation audit persistence
type GenerationRepository interface {
	Create(ctx context.Context, generation entity.Generation) error
	List(ctx context.Context, skip, limit int) ([]*entity.Generation, error)
}

var _ GenerationRepository = &GenerationPostgres{}

const (
	createGenerationQuery = `
INSERT INTO generations (id, kind, status, provider, result_length, attempts, duration_ms, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`

	listGenerationsQuery = `
SELECT id, kind, status, provider, result_length, attempts, duration_ms, created_at
FROM generations
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
)

type dbExecutor interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// GenerationPostgres implements GenerationRepository using PostgreSQL
type GenerationPostgres struct {
	db dbExecutor
}

func NewGenerationPostgres(db *pgxpool.Pool) *GenerationPostgres {
	return &GenerationPostgres{db: db}
}

func (r *GenerationPostgres) Create(ctx context.Context, generation entity.Generation) error {
	generationID, err := uuid.Parse(generation.ID)
	if err != nil {
		return fmt.Errorf("parse generation ID: %w", err)
	}

	_, err = r.db.Exec(ctx, createGenerationQuery,
		pgtype.UUID{Bytes: generationID, Valid: true},
		string(generation.Kind),
		string(generation.Status),
		generation.Provider,
		int32(generation.ResultLength),
		int32(generation.Attempts),
		generation.Duration.Milliseconds(),
		pgtype.Timestamptz{Time: generation.CreatedAt, Valid: true},
	)
	if err != nil {
		return fmt.Errorf("create generation: %w", err)
	}

	return nil
}

func (r *GenerationPostgres) List(ctx context.Context, skip, limit int) ([]*entity.Generation, error) {
	rows, err := r.db.Query(ctx, listGenerationsQuery, int64(limit), int64(skip))
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}

	generations, err := pgx.CollectRows(rows, pgx.RowToAddrOfStructByPos[generationRow])
	if err != nil {
		return nil, fmt.Errorf("scan generations: %w", err)
	}

	result := make([]*entity.Generation, 0, len(generations))
	for _, row := range generations {
		result = append(result, toEntityGeneration(row))
	}

	return result, nil
}

type generationRow struct {
	ID           pgtype.UUID
	Kind         string
	Status       string
	Provider     string
	ResultLength int32
	Attempts     int32
	DurationMs   int64
	CreatedAt    pgtype.Timestamptz
}

func toEntityGeneration(row *generationRow) *entity.Generation {
	return &entity.Generation{
		ID:           uuid.UUID(row.ID.Bytes).String(),
		Kind:         entity.OperationKind(row.Kind),
		Status:       entity.GenerationStatus(row.Status),
		Provider:     row.Provider,
		ResultLength: int(row.ResultLength),
		Attempts:     int(row.Attempts),
		Duration:     time.Duration(row.DurationMs) * time.Millisecond,
		CreatedAt:    row.CreatedAt.Time,
	}
}
