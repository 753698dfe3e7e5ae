package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

const blacklistPrefix = "lexluc_tokens:blacklist"

// TokenBlacklistRepository stores revoked tokens in Redis until they expire.
// Only the SHA-256 of a token is kept.
type TokenBlacklistRepository struct {
	client redis.Cmdable
	logger *logrus.Logger
}

func NewTokenBlacklistRepository(client redis.Cmdable, logger *logrus.Logger) *TokenBlacklistRepository {
	return &TokenBlacklistRepository{client: client, logger: logger}
}

func blacklistKey(token string) string {
	h := sha256.Sum256([]byte(token))
	return blacklistPrefix + ":" + hex.EncodeToString(h[:])
}

// Blacklist revokes token for ttl. A non-positive ttl means the token has
// already expired and nothing is stored.
func (r *TokenBlacklistRepository) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}
	if err := r.client.Set(ctx, blacklistKey(token), 1, ttl).Err(); err != nil {
		r.logger.WithError(err).Error("redis: failed to blacklist token")
		return fmt.Errorf("failed to blacklist token: %w", err)
	}
	return nil
}

func (r *TokenBlacklistRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	err := r.client.Get(ctx, blacklistKey(token)).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check token blacklist: %w", err)
	}
	return true, nil
}
