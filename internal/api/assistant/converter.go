package assistant

import "github.com/futig/study-portal-ai/internal/entity"

func toGenerationSummary(g *entity.Generation) *entity.GenerationSummary {
	return &entity.GenerationSummary{
		ID:           g.ID,
		Type:         string(g.Kind),
		Status:       string(g.Status),
		Provider:     g.Provider,
		ResultLength: g.ResultLength,
		Attempts:     g.Attempts,
		DurationMs:   g.Duration.Milliseconds(),
		CreatedAt:    g.CreatedAt,
	}
}
