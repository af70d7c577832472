package retry

import (
	"errors"
	"testing"
	"time"

	"github.com/avast/retry-go/v4"
)

func TestToRetryOptions_ZeroAttemptsMeansOneCall(t *testing.T) {
	cfg := RetryConfig{Delay: time.Millisecond, MaxDelay: time.Millisecond}

	calls := 0
	err := retry.Do(func() error {
		calls++
		return errors.New("boom")
	}, cfg.ToRetryOptions()...)

	if err == nil || err.Error() != "boom" {
		t.Errorf("expected the last error only, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected a single call, got %d", calls)
	}
}

func TestToRetryOptions_Attempts(t *testing.T) {
	cfg := RetryConfig{Attempts: 3, Delay: time.Millisecond, MaxDelay: 2 * time.Millisecond}

	calls := 0
	retry.Do(func() error {
		calls++
		return errors.New("boom")
	}, cfg.ToRetryOptions()...)

	if calls != 3 {
		t.Errorf("expected 3 calls, got %d", calls)
	}
}

func TestDefaultRetryConfig(t *testing.T) {
	cfg := DefaultRetryConfig()
	if cfg.Attempts != 1 {
		t.Errorf("retries must be off by default, got %d attempts", cfg.Attempts)
	}
}
