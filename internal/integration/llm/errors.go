package llm

import (
	"context"
	"errors"

	"github.com/futig/study-portal-ai/internal/entity"
	pkghttp "github.com/futig/study-portal-ai/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// completionText turns the outcome of a connector call into driver output.
// A 2xx body of the wrong shape is treated as an empty completion.
func completionText(ctx context.Context, text string, err error) (string, error) {
	if err == nil {
		return text, nil
	}

	var decodeErr *pkghttp.DecodeError
	if errors.As(err, &decodeErr) {
		ctxzap.Warn(ctx, "malformed upstream response, treating as empty", zap.Error(decodeErr.Err))
		return "", nil
	}

	return "", upstreamError(err)
}

// upstreamError converts connector failures into the translator's error taxonomy
func upstreamError(err error) error {
	var httpErr *pkghttp.HTTPError
	if errors.As(err, &httpErr) {
		return entity.ClassifyStatus(httpErr.StatusCode, httpErr.Message)
	}

	var netErr *pkghttp.NetworkError
	if errors.As(err, &netErr) {
		return &entity.UpstreamError{Kind: entity.ErrUpstream, Err: netErr.Err}
	}

	return &entity.UpstreamError{Kind: entity.ErrUpstream, Err: err}
}
