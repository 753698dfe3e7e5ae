package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

const rateLimitMessage = "Too many requests from this IP, please try again later."

type RateLimitMiddleware struct {
	rateLimiter ports.RateLimiterService
	logger      *logrus.Logger
	now         func() time.Time
}

func NewRateLimitMiddleware(rateLimiter ports.RateLimiterService, logger *logrus.Logger) *RateLimitMiddleware {
	return &RateLimitMiddleware{rateLimiter: rateLimiter, logger: logger, now: time.Now}
}

// Handler limits requests per client IP and sets the RateLimit-* headers.
func (r *RateLimitMiddleware) Handler() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()
			decision, err := r.rateLimiter.Allow(c.Request().Context(), ip)
			if err != nil {
				if r.logger != nil {
					r.logger.WithError(err).WithField("ip", ip).Warn("rate limiter error; allowing request (fail-open)")
				}
				return next(c)
			}

			resetIn := int(decision.Reset.Sub(r.now()).Seconds() + 0.999)
			if resetIn < 1 {
				resetIn = 1
			}
			h := c.Response().Header()
			h.Set("RateLimit-Limit", strconv.Itoa(decision.Limit))
			h.Set("RateLimit-Remaining", strconv.Itoa(decision.Remaining))
			h.Set("RateLimit-Reset", strconv.Itoa(resetIn))

			if !decision.Allowed {
				h.Set("Retry-After", strconv.Itoa(resetIn))
				return echo.NewHTTPError(http.StatusTooManyRequests, rateLimitMessage)
			}
			return next(c)
		}
	}
}
