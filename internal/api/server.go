package api

import (
	"net/http"
	"time"

	"github.com/futig/study-portal-ai/internal/api/assistant"
	"github.com/futig/study-portal-ai/internal/api/docs"
	"github.com/futig/study-portal-ai/internal/api/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// RouterOptions tunes the middleware stack
type RouterOptions struct {
	RequestTimeout time.Duration
	// TrustProxy takes the client address from X-Forwarded-For/X-Real-IP.
	// Enable only behind a proxy that overwrites those headers, since rate limits key on it.
	TrustProxy bool
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(assistantHandler *assistant.Handler, limiter middleware.Limiter, opts RouterOptions, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	if opts.TrustProxy {
		r.Use(chimiddleware.RealIP)
	}
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CORS)
	r.Use(chimiddleware.Timeout(opts.RequestTimeout))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	docs.RegisterRoutes(r)

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(limiter))
		assistant.RegisterRoutes(r, assistantHandler)
	})

	return r
}
