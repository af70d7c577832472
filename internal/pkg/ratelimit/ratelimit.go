package ratelimit

import (
	"sync"
	"time"

	"github.com/patrickmn/go-cache"
)

const (
	bucketExpiration = time.Hour
	cleanupInterval  = 10 * time.Minute
)

// Limiter is a keyed token bucket. Each key gets burst tokens refilled at perMinute/60 per second.
type Limiter struct {
	buckets   *cache.Cache
	mu        sync.Mutex
	capacity  float64
	perSecond float64
	now       func() time.Time
}

type bucket struct {
	mu       sync.Mutex
	tokens   float64
	lastFill time.Time
}

func New(perMinute, burst int) *Limiter {
	if burst <= 0 {
		burst = 1
	}
	return &Limiter{
		buckets:   cache.New(bucketExpiration, cleanupInterval),
		capacity:  float64(burst),
		perSecond: float64(perMinute) / 60,
		now:       time.Now,
	}
}

// Allow consumes one token for key and reports whether the call may proceed
func (l *Limiter) Allow(key string) bool {
	b := l.bucket(key)

	b.mu.Lock()
	defer b.mu.Unlock()

	now := l.now()
	elapsed := now.Sub(b.lastFill).Seconds()
	if elapsed > 0 {
		b.tokens = min(l.capacity, b.tokens+elapsed*l.perSecond)
		b.lastFill = now
	}

	if b.tokens < 1 {
		return false
	}
	b.tokens--
	return true
}

func (l *Limiter) bucket(key string) *bucket {
	l.mu.Lock()
	defer l.mu.Unlock()

	if cached, ok := l.buckets.Get(key); ok {
		// touch to extend idle expiration
		l.buckets.SetDefault(key, cached)
		return cached.(*bucket)
	}

	b := &bucket{tokens: l.capacity, lastFill: l.now()}
	l.buckets.SetDefault(key, b)
	return b
}
