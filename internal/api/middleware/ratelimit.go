package middleware

import (
	"net"
	"net/http"

	"github.com/futig/study-portal-ai/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Limiter interface {
	Allow(key string) bool
}

// RateLimit rejects clients that exhausted their token bucket. Keys are client IPs.
func RateLimit(limiter Limiter) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			ip := clientIP(r)
			if !limiter.Allow(ip) {
				ctxzap.Warn(r.Context(), "client rate limited", zap.String("client_ip", ip))
				response.Error(w, http.StatusTooManyRequests, "Too many requests, please slow down")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
