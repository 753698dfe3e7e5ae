package services

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

// RateLimiterService implements a fixed-window limit per client IP.
type RateLimiterService struct {
	repo      ports.RateLimitRepository
	limit     int
	window    time.Duration
	keyPrefix string
	logger    *logrus.Logger
}

// RateLimiterConfig groups configuration parameters for the rate limiter.
type RateLimiterConfig struct {
	Requests  int
	Window    time.Duration
	KeyPrefix string
}

func NewRateLimiterService(repo ports.RateLimitRepository, cfg *RateLimiterConfig, logger *logrus.Logger) *RateLimiterService {
	// Apply defaults
	limit := 100
	w := 15 * time.Minute
	kp := "ratelimit:ip"
	if cfg != nil {
		if cfg.Requests > 0 {
			limit = cfg.Requests
		}
		if cfg.Window > 0 {
			w = cfg.Window
		}
		if cfg.KeyPrefix != "" {
			kp = cfg.KeyPrefix
		}
	}
	return &RateLimiterService{repo: repo, limit: limit, window: w, keyPrefix: kp, logger: logger}
}

// Allow counts one request for client. Storage errors fail open and are
// returned alongside an allowing decision.
func (s *RateLimiterService) Allow(ctx context.Context, client string) (ports.RateLimitDecision, error) {
	ttl := s.window * 2 // retain overlap window
	count, windowStart, err := s.repo.IncrementWindow(ctx, client, s.window, s.keyPrefix, ttl)
	decision := ports.RateLimitDecision{
		Allowed:   true,
		Limit:     s.limit,
		Remaining: s.limit,
		Reset:     windowStart.Add(s.window),
	}
	if err != nil {
		if s.logger != nil {
			s.logger.WithField("client", client).WithError(err).Error("rate limiter: failed to increment window")
		}
		// fail open
		return decision, err
	}
	if s.logger != nil {
		s.logger.WithFields(logrus.Fields{"client": client, "count": count, "limit": s.limit}).Debug("rate limiter window state")
	}
	if count > s.limit {
		decision.Allowed = false
		decision.Remaining = 0
		return decision, nil
	}
	decision.Remaining = s.limit - count
	return decision, nil
}

var _ ports.RateLimiterService = (*RateLimiterService)(nil)
