package ai

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// DefaultRateLimit is the default number of provider requests per minute.
const DefaultRateLimit = 60

// RateLimiter throttles outbound provider calls. The limit is requests per
// minute and can be changed at runtime.
type RateLimiter struct {
	mu      sync.Mutex
	limit   int
	limiter *rate.Limiter
}

// NewRateLimiter creates a limiter allowing perMinute requests per minute.
// Non-positive values fall back to DefaultRateLimit.
func NewRateLimiter(perMinute int) *RateLimiter {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	return &RateLimiter{
		limit:   perMinute,
		limiter: newLimiter(perMinute),
	}
}

func newLimiter(perMinute int) *rate.Limiter {
	return rate.NewLimiter(rate.Every(time.Minute/time.Duration(perMinute)), perMinute)
}

// GetLimit returns the current requests-per-minute limit.
func (r *RateLimiter) GetLimit() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.limit
}

// SetLimit updates the limit. Non-positive values reset to DefaultRateLimit.
func (r *RateLimiter) SetLimit(perMinute int) {
	if perMinute <= 0 {
		perMinute = DefaultRateLimit
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.limit = perMinute
	r.limiter = newLimiter(perMinute)
}

// Wait blocks until a request may proceed or the context is done.
func (r *RateLimiter) Wait(ctx context.Context) error {
	r.mu.Lock()
	limiter := r.limiter
	r.mu.Unlock()
	return limiter.Wait(ctx)
}
