package assistant

import (
	"context"

	"github.com/futig/study-portal-ai/internal/entity"
)

// LLMConnector is one upstream chat-completion driver
type LLMConnector interface {
	Provider() string
	Configured() bool
	// Complete returns "" when the upstream answered without usable content
	Complete(ctx context.Context, req *entity.CompletionRequest) (string, error)
}

type GenerationRepository interface {
	Create(ctx context.Context, generation entity.Generation) error
	List(ctx context.Context, skip, limit int) ([]*entity.Generation, error)
}
