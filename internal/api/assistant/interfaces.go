package assistant

import (
	"context"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
)

type AssistantUsecase interface {
	Generate(ctx context.Context, req entity.AiRequest) (*entity.Result, error)
	ListGenerations(ctx context.Context, skip, limit int) ([]*entity.Generation, error)
}

type FormatterFactory interface {
	Create(format entity.ResultFormat) (formatter.Formatter, error)
}

type ExportValidator interface {
	ValidateExport(req *entity.ExportRequest) error
}
