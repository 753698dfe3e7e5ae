package redis

import (
	"context"
	"errors"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisCache implements ports.Cache using a Redis client.
type RedisCache struct {
	r redis.Cmdable
	// optional key prefix to namespace entries
	prefix string
}

// NewRedisCache creates a new Redis-backed cache.
func NewRedisCache(r redis.Cmdable, prefix string) *RedisCache {
	return &RedisCache{r: r, prefix: prefix}
}

func (c *RedisCache) namespaced(key string) string {
	if c.prefix == "" {
		return key
	}
	return c.prefix + ":" + key
}

// Get implements Cache.Get.
func (c *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := c.r.Get(ctx, c.namespaced(key)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return val, true, nil
}

// Set implements Cache.Set.
func (c *RedisCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	return c.r.Set(ctx, c.namespaced(key), value, ttl).Err()
}

// Delete implements Cache.Delete. Keys are removed one by one so that a
// cluster never sees a cross-slot DEL.
func (c *RedisCache) Delete(ctx context.Context, keys ...string) error {
	var firstErr error
	for _, key := range keys {
		if err := c.r.Del(ctx, c.namespaced(key)).Err(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
