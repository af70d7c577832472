package repository

import (
	"context"
	"sort"
	"time"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/patrickmn/go-cache"
)

var _ GenerationRepository = &GenerationMemory{}

// GenerationMemory keeps audit records in process memory when no database is configured.
// Records expire after the retention period.
type GenerationMemory struct {
	store *cache.Cache
}

func NewGenerationMemory(retention time.Duration) *GenerationMemory {
	return &GenerationMemory{
		store: cache.New(retention, retention/4),
	}
}

func (r *GenerationMemory) Create(ctx context.Context, generation entity.Generation) error {
	r.store.SetDefault(generation.ID, generation)
	return nil
}

func (r *GenerationMemory) List(ctx context.Context, skip, limit int) ([]*entity.Generation, error) {
	items := r.store.Items()

	generations := make([]*entity.Generation, 0, len(items))
	for _, item := range items {
		generation, ok := item.Object.(entity.Generation)
		if !ok {
			continue
		}
		generations = append(generations, &generation)
	}

	sort.Slice(generations, func(i, j int) bool {
		return generations[i].CreatedAt.After(generations[j].CreatedAt)
	})

	if skip >= len(generations) {
		return []*entity.Generation{}, nil
	}
	generations = generations[skip:]
	if limit > 0 && limit < len(generations) {
		generations = generations[:limit]
	}

	return generations, nil
}
