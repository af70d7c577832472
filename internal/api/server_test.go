package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/futig/study-portal-ai/internal/api/assistant"
	"github.com/futig/study-portal-ai/internal/config"
	"github.com/futig/study-portal-ai/internal/integration/llm"
	"github.com/futig/study-portal-ai/internal/pkg/formatter"
	"github.com/futig/study-portal-ai/internal/pkg/ratelimit"
	pkgRetry "github.com/futig/study-portal-ai/internal/pkg/retry"
	"github.com/futig/study-portal-ai/internal/pkg/validator"
	"github.com/futig/study-portal-ai/internal/repository"
	assistantuc "github.com/futig/study-portal-ai/internal/usecase/assistant"
	"go.uber.org/zap"
)

func newTestServer(burst int) http.Handler {
	return newTestServerWithOptions(burst, RouterOptions{RequestTimeout: 5 * time.Second})
}

func newTestServerWithOptions(burst int, opts RouterOptions) http.Handler {
	usecase := assistantuc.NewUsecase(llm.NewMockConnector(), repository.NewGenerationMemory(time.Hour), *pkgRetry.DefaultRetryConfig())
	h := assistant.NewHandler(usecase, formatter.NewFactory(), validator.NewExportValidator(config.ExportConfig{MaxTextSize: 1024}))
	return SetupRouter(h, ratelimit.New(1, burst), opts, zap.NewNop())
}

func TestHealth(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer(1).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	if rec.Code != http.StatusOK || rec.Body.String() != `{"status":"healthy"}` {
		t.Errorf("unexpected health response: %d %s", rec.Code, rec.Body.String())
	}
}

func TestPreflight(t *testing.T) {
	srv := newTestServer(1)

	for i := 0; i < 3; i++ {
		rec := httptest.NewRecorder()
		srv.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/ai", nil))

		if rec.Code != http.StatusOK || rec.Body.Len() != 0 {
			t.Fatalf("unexpected preflight response: %d %q", rec.Code, rec.Body.String())
		}
		if rec.Header().Get("Access-Control-Allow-Origin") != "*" {
			t.Errorf("missing CORS origin header")
		}
	}
}

func TestRateLimitedRoutes(t *testing.T) {
	srv := newTestServer(1)

	first := httptest.NewRecorder()
	srv.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/ai/generations", nil))
	second := httptest.NewRecorder()
	srv.ServeHTTP(second, httptest.NewRequest(http.MethodGet, "/ai/generations", nil))

	if first.Code != http.StatusOK || second.Code != http.StatusTooManyRequests {
		t.Errorf("unexpected statuses: %d %d", first.Code, second.Code)
	}
	if second.Header().Get("Access-Control-Allow-Origin") != "*" {
		t.Error("rejected responses must still carry CORS headers")
	}

	health := httptest.NewRecorder()
	srv.ServeHTTP(health, httptest.NewRequest(http.MethodGet, "/health", nil))
	if health.Code != http.StatusOK {
		t.Error("health must not be rate limited")
	}
}

func TestRateLimit_IgnoresForwardedHeadersByDefault(t *testing.T) {
	srv := newTestServer(1)

	codes := make([]int, 0, 3)
	for _, ip := range []string{"10.0.0.1", "10.0.0.2", "10.0.0.3"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ai/generations", nil)
		req.Header.Set("X-Forwarded-For", ip)
		srv.ServeHTTP(rec, req)
		codes = append(codes, rec.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusTooManyRequests || codes[2] != http.StatusTooManyRequests {
		t.Errorf("rotating X-Forwarded-For must not reset the bucket, got %v", codes)
	}
}

func TestRateLimit_TrustedProxyKeysOnForwardedIP(t *testing.T) {
	srv := newTestServerWithOptions(1, RouterOptions{RequestTimeout: 5 * time.Second, TrustProxy: true})

	for _, ip := range []string{"10.0.0.1", "10.0.0.2"} {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/ai/generations", nil)
		req.Header.Set("X-Forwarded-For", ip)
		srv.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Errorf("client %s: unexpected status %d", ip, rec.Code)
		}
	}
}
