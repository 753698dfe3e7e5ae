package ports

import (
	"context"
	"time"
)

// Cache defines a minimal key-value cache contract.
// Implementations should degrade gracefully so that callers can fall back to
// the database.
type Cache interface {
	// Get returns the raw bytes for key. ok=false if not found.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores value for key with TTL (0 means no expiration).
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	// Delete removes the keys; absence is not an error.
	Delete(ctx context.Context, keys ...string) error
}

// HealthChecker abstracts a dependency health probe.
type HealthChecker interface {
	Name() string
	Check(ctx context.Context) error
}
