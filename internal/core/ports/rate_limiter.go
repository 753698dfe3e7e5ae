package ports

import (
	"context"
	"time"
)

// RateLimitRepository provides atomic fixed-window counters.
type RateLimitRepository interface {
	// IncrementWindow increments the counter of client in the current window
	// and ensures the key expires after ttl.
	IncrementWindow(ctx context.Context, client string, window time.Duration, keyPrefix string, ttl time.Duration) (count int, windowStart time.Time, err error)
}

// RateLimitDecision is the outcome of one Allow call.
type RateLimitDecision struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// RateLimiterService limits requests per client (the caller's IP address).
type RateLimiterService interface {
	Allow(ctx context.Context, client string) (RateLimitDecision, error)
}
