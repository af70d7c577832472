package assistant

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/logger"
	pkgRetry "github.com/futig/study-portal-ai/internal/pkg/retry"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	Temperature     = 0.7
	MaxOutputTokens = 2048

	// FallbackText is returned when the upstream answer carries no content
	FallbackText = "No response generated"
)

// Usecase translates AI requests into upstream chat-completion calls
type Usecase struct {
	llm         LLMConnector
	generations GenerationRepository
	retryCfg    pkgRetry.RetryConfig
}

// NewUsecase creates the translator. retryCfg.Attempts of 1 keeps the single-call behavior.
func NewUsecase(
	llm LLMConnector,
	generations GenerationRepository,
	retryCfg pkgRetry.RetryConfig,
) *Usecase {
	return &Usecase{
		llm:         llm,
		generations: generations,
		retryCfg:    retryCfg,
	}
}

// Generate runs one request to completion: validate, build the prompt, call upstream once.
// Only RateLimited failures are retried, and only when retries are configured.
func (uc *Usecase) Generate(ctx context.Context, req entity.AiRequest) (*entity.Result, error) {
	start := time.Now()
	kind := kindOf(req)
	ctx = logger.AddFields(ctx, zap.String("operation", string(kind)))

	attempts := 0
	result, err := uc.generate(ctx, req, &attempts)

	uc.record(ctx, kind, result, err, attempts, time.Since(start))

	return result, err
}

func (uc *Usecase) generate(ctx context.Context, req entity.AiRequest, attempts *int) (*entity.Result, error) {
	if !uc.llm.Configured() {
		ctxzap.Error(ctx, "AI service credential is missing", zap.String("provider", uc.llm.Provider()))
		return nil, fmt.Errorf("%w: LLM_TOKEN is not configured", entity.ErrConfiguration)
	}

	if err := validateRequest(req); err != nil {
		ctxzap.Warn(ctx, "invalid AI request", zap.Error(err))
		return nil, err
	}

	messages, err := BuildMessages(req)
	if err != nil {
		return nil, err
	}

	completion := &entity.CompletionRequest{
		Messages:    messages,
		Temperature: Temperature,
		MaxTokens:   MaxOutputTokens,
	}

	ctxzap.Info(ctx, "calling AI service",
		zap.String("provider", uc.llm.Provider()),
		zap.Int("message_count", len(messages)),
	)

	opts := append(uc.retryCfg.ToRetryOptions(),
		retry.Context(ctx),
		retry.RetryIf(func(err error) bool {
			return errors.Is(err, entity.ErrRateLimited)
		}),
		retry.OnRetry(func(n uint, err error) {
			ctxzap.Warn(ctx, "AI service rate limited, backing off", zap.Uint("attempt", n+1))
		}),
	)

	text, err := retry.DoWithData(func() (string, error) {
		*attempts++
		return uc.llm.Complete(ctx, completion)
	}, opts...)
	if err != nil {
		ctxzap.Error(ctx, "AI service call failed", zap.Error(err), zap.Int("attempts", *attempts))
		return nil, err
	}

	ctxzap.Info(ctx, "AI service response received", zap.Int("result_length", len(text)))

	if text == "" {
		text = FallbackText
	}

	return &entity.Result{Text: text}, nil
}

// record stores the audit entry; failures never affect the caller
func (uc *Usecase) record(ctx context.Context, kind entity.OperationKind, result *entity.Result, err error, attempts int, duration time.Duration) {
	generation := entity.Generation{
		ID:        uuid.New().String(),
		Kind:      kind,
		Status:    entity.ErrorStatus(err),
		Provider:  uc.llm.Provider(),
		Attempts:  attempts,
		Duration:  duration,
		CreatedAt: time.Now().UTC(),
	}
	if result != nil {
		generation.ResultLength = len(result.Text)
	}

	if err := uc.generations.Create(ctx, generation); err != nil {
		ctxzap.Warn(ctx, "failed to record generation", zap.Error(err))
	}
}

// ListGenerations returns recent audit records, newest first
func (uc *Usecase) ListGenerations(ctx context.Context, skip, limit int) ([]*entity.Generation, error) {
	generations, err := uc.generations.List(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list generations: %w", err)
	}
	return generations, nil
}

func kindOf(req entity.AiRequest) entity.OperationKind {
	if req == nil {
		return entity.OperationUnknown
	}
	return req.Kind()
}
