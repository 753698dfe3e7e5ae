package health

import (
	"context"

	"github.com/go-redis/redis/v8"

	"github.com/lexluc/lexluc-platform/internal/core/ports"
	infraDB "github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

// dbHealthChecker wraps the database for health checks.
type dbHealthChecker struct{ db *infraDB.Database }

func (d *dbHealthChecker) Name() string                    { return "database" }
func (d *dbHealthChecker) Check(ctx context.Context) error { return d.db.DB.PingContext(ctx) }

// redisHealthChecker wraps the redis client for health checks.
type redisHealthChecker struct{ client redis.UniversalClient }

func (r *redisHealthChecker) Name() string                    { return "redis" }
func (r *redisHealthChecker) Check(ctx context.Context) error { return r.client.Ping(ctx).Err() }

// Pinger is anything that can prove a dependency is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

type pingChecker struct {
	name string
	p    Pinger
}

func (c *pingChecker) Name() string                    { return c.name }
func (c *pingChecker) Check(ctx context.Context) error { return c.p.Ping(ctx) }

// NewDBHealthChecker creates a health checker for the database.
func NewDBHealthChecker(db *infraDB.Database) ports.HealthChecker { return &dbHealthChecker{db: db} }

// NewRedisHealthChecker creates a health checker for Redis.
func NewRedisHealthChecker(client redis.UniversalClient) ports.HealthChecker {
	return &redisHealthChecker{client: client}
}

// NewStorageHealthChecker creates a health checker for the image bucket.
func NewStorageHealthChecker(store Pinger) ports.HealthChecker {
	return &pingChecker{name: "storage", p: store}
}
