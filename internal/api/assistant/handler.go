package assistant

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/futig/study-portal-ai/internal/entity"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
	"github.com/futig/study-portal-ai/internal/pkg/logger"
	"github.com/futig/study-portal-ai/internal/pkg/response"
	"github.com/futig/study-portal-ai/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxRequestBodySize = 4 << 20

type Handler struct {
	usecase    AssistantUsecase
	formatters FormatterFactory
	validator  ExportValidator
}

func NewHandler(
	usecase AssistantUsecase,
	formatters FormatterFactory,
	validator ExportValidator,
) *Handler {
	return &Handler{
		usecase:    usecase,
		formatters: formatters,
		validator:  validator,
	}
}

// Generate handles POST /ai
func (h *Handler) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Generate")

	var body entity.AiRequestBody
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&body); err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, fmt.Errorf("invalid request body: %w", err))
		return
	}

	ctx = logger.AddFields(ctx, zap.String("type", body.Type))

	result, err := h.usecase.Generate(ctx, body.ToRequest())
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	ctxzap.Info(ctx, "AI request completed", zap.Int("result_length", len(result.Text)))
	response.Success(w, result)
}

// Export handles POST /ai/export
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Export")

	var req entity.ExportRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodySize)).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
		return
	}

	if err := h.validator.ValidateExport(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err)
		return
	}

	f, err := h.formatters.Create(req.Format)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err)
		return
	}

	data, err := f.Format(req.Title, req.Text)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, fmt.Errorf("format %s: %w", req.Format, err))
		return
	}

	title := req.Title
	if title == "" {
		title = formatter.DefaultTitle
	}
	filename := validator.SanitizeFilename(title) + f.FileExtension()

	ctxzap.Info(ctx, "export rendered",
		zap.String("format", string(req.Format)),
		zap.Int("size", len(data)),
	)
	response.Attachment(w, f.ContentType(), filename, data)
}

// ListGenerations handles GET /ai/generations
func (h *Handler) ListGenerations(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ListGenerations")

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	offset, _ := strconv.Atoi(r.URL.Query().Get("offset"))

	req := entity.ListGenerationsRequest{
		Limit:  limit,
		Offset: offset,
	}
	req.Normalize()

	generations, err := h.usecase.ListGenerations(ctx, req.Offset, req.Limit)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, err)
		return
	}

	summaries := make([]*entity.GenerationSummary, 0, len(generations))
	for _, g := range generations {
		summaries = append(summaries, toGenerationSummary(g))
	}

	ctxzap.Debug(ctx, "generations listed", zap.Int("count", len(summaries)))
	response.Success(w, &entity.ListGenerationsResponse{
		Generations: summaries,
	})
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	switch {
	case errors.Is(err, entity.ErrValidation), errors.Is(err, entity.ErrUnsupportedFormat):
		ctxzap.Warn(ctx, "request rejected", zap.Error(err))
	default:
		ctxzap.Error(ctx, "request failed", zap.Error(err))
	}
	response.Error(w, status, err.Error())
}
