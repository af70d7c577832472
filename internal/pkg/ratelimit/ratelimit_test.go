package ratelimit

import (
	"sync"
	"testing"
	"time"
)

type fakeClock struct {
	mu sync.Mutex
	t  time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t = c.t.Add(d)
}

func newTestLimiter(perMinute, burst int) (*Limiter, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	l := New(perMinute, burst)
	l.now = clock.Now
	return l, clock
}

func TestAllow_Burst(t *testing.T) {
	l, _ := newTestLimiter(60, 3)

	for i := 0; i < 3; i++ {
		if !l.Allow("10.0.0.1") {
			t.Fatalf("call %d within burst was rejected", i+1)
		}
	}
	if l.Allow("10.0.0.1") {
		t.Error("call beyond burst must be rejected")
	}
	if !l.Allow("10.0.0.2") {
		t.Error("buckets must be independent per key")
	}
}

func TestAllow_Refill(t *testing.T) {
	l, clock := newTestLimiter(60, 2)

	l.Allow("k")
	l.Allow("k")
	if l.Allow("k") {
		t.Fatal("bucket must be empty")
	}

	clock.Advance(time.Second)
	if !l.Allow("k") {
		t.Error("one token must be refilled after a second at 60/min")
	}
	if l.Allow("k") {
		t.Error("only one token must be refilled")
	}

	clock.Advance(time.Hour)
	if !l.Allow("k") || !l.Allow("k") || l.Allow("k") {
		t.Error("refill must be capped at burst")
	}
}

func TestAllow_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(0, 50)

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 200; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	if allowed != 50 {
		t.Errorf("expected exactly 50 allowed calls, got %d", allowed)
	}
}
