package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
)

type response struct {
	status     int
	retryAfter string
	body       []byte
}

// executeWithRetry runs the request up to MaxRetries+1 times. Transport
// failures, timeouts and 429s are retried; any other non-2xx fails at once.
func (c *Client) executeWithRetry(ctx context.Context, req *preparedRequest) (json.RawMessage, error) {
	b := c.newBackOff()

	for attempt := 0; ; attempt++ {
		remaining := c.cfg.MaxRetries - attempt

		resp, err := c.attempt(ctx, req)
		if err != nil {
			if remaining <= 0 || ctx.Err() != nil {
				return nil, err
			}
			wait := b.NextBackOff()
			c.logRetry(req, attempt, wait).WithError(err).Warn("Request failed. Retrying")
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}
			continue
		}

		switch {
		case resp.status >= 200 && resp.status < 300:
			return c.decode(req, resp.body)

		case resp.status == http.StatusTooManyRequests:
			if remaining <= 0 {
				return nil, ErrTooManyRequests
			}
			wait := b.NextBackOff()
			if ra, ok := parseRetryAfter(resp.retryAfter, c.now()); ok {
				wait = ra
			}
			c.logRetry(req, attempt, wait).Warn("Rate limited. Retrying")
			if err := c.sleep(ctx, wait); err != nil {
				return nil, err
			}

		default:
			return nil, newAPIError(resp.status, resp.body)
		}
	}
}

func (c *Client) attempt(ctx context.Context, req *preparedRequest) (*response, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.cfg.Timeout)
	defer cancel()

	var body io.Reader
	if req.body != nil {
		body = bytes.NewReader(req.body)
	}
	httpReq, err := http.NewRequestWithContext(attemptCtx, req.method, req.url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header = req.header.Clone()

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, c.attemptError(ctx, attemptCtx, err)
	}
	defer httpResp.Body.Close()

	data, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, c.attemptError(ctx, attemptCtx, err)
	}

	return &response{
		status:     httpResp.StatusCode,
		retryAfter: httpResp.Header.Get("Retry-After"),
		body:       data,
	}, nil
}

func (c *Client) attemptError(parent, attemptCtx context.Context, err error) error {
	if parent.Err() == nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) {
		return ErrRequestTimeout
	}
	return err
}

// decode validates a success body and, for GETs, stores it in the cache.
func (c *Client) decode(req *preparedRequest, body []byte) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		trimmed = []byte("null")
	}
	if !json.Valid(trimmed) {
		return nil, fmt.Errorf("failed to decode response from %s", req.key)
	}
	val := json.RawMessage(trimmed)

	if req.method == http.MethodGet {
		c.mu.Lock()
		c.cache[req.key] = val
		c.mu.Unlock()
	}
	return bytes.Clone(val), nil
}

// newBackOff yields RetryDelay, 2*RetryDelay, 4*RetryDelay, ... without jitter.
func (c *Client) newBackOff() *backoff.ExponentialBackOff {
	b := &backoff.ExponentialBackOff{
		InitialInterval:     c.cfg.RetryDelay,
		RandomizationFactor: 0,
		Multiplier:          2,
		MaxInterval:         c.cfg.RetryDelay << uint(max(c.cfg.MaxRetries, 0)),
		MaxElapsedTime:      0,
		Stop:                backoff.Stop,
		Clock:               backoff.SystemClock,
	}
	b.Reset()
	return b
}

func (c *Client) logRetry(req *preparedRequest, attempt int, wait time.Duration) *logrus.Entry {
	return c.logger.WithFields(logrus.Fields{
		"key":     req.key,
		"attempt": attempt + 1,
		"wait":    wait.String(),
	})
}

// parseRetryAfter reads either delay-seconds or an HTTP-date. Dates closer
// than one second still wait one second.
func parseRetryAfter(value string, now time.Time) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, false
	}
	if secs, err := strconv.Atoi(value); err == nil {
		if secs < 0 {
			return 0, false
		}
		return time.Duration(secs) * time.Second, true
	}
	at, err := http.ParseTime(value)
	if err != nil {
		return 0, false
	}
	return max(at.Sub(now), time.Second), true
}
