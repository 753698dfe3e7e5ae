package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// Credentials supplies the bearer token attached to every request. It is read
// on each call and never written by the dispatcher.
type Credentials interface {
	Token() string
}

// Client talks to the backend REST API. GET responses are cached per
// method+endpoint until ClearCache is called, and concurrent GETs for the same
// key share one network call.
type Client struct {
	cfg         Config
	httpClient  *http.Client
	credentials Credentials
	logger      *logrus.Logger
	sleep       func(ctx context.Context, d time.Duration) error
	now         func() time.Time

	mu       sync.Mutex
	cache    map[string]json.RawMessage
	inflight map[string]*flight
}

// flight is a pending GET that later callers for the same key wait on.
type flight struct {
	done chan struct{}
	val  json.RawMessage
	err  error
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default http.Client. A nil client is ignored.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithCredentials sets the bearer token source.
func WithCredentials(creds Credentials) Option {
	return func(c *Client) { c.credentials = creds }
}

// WithLogger sets the logger used for retry diagnostics.
func WithLogger(logger *logrus.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithSleeper replaces the backoff sleep, mainly for tests.
func WithSleeper(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(c *Client) { c.sleep = sleep }
}

// WithClock replaces the time source used to evaluate Retry-After dates.
func WithClock(now func() time.Time) Option {
	return func(c *Client) { c.now = now }
}

// New creates a Client. Each Client owns its own cache and in-flight registry.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid api client config: %w", err)
	}

	discard := logrus.New()
	discard.SetOutput(io.Discard)

	c := &Client{
		cfg:        cfg,
		httpClient: &http.Client{},
		logger:     discard,
		sleep:      sleepContext,
		now:        time.Now,
		cache:      make(map[string]json.RawMessage),
		inflight:   make(map[string]*flight),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// ClearCache drops every cached response. Callers invoke it after mutations
// that may have changed previously fetched collections.
func (c *Client) ClearCache() {
	c.mu.Lock()
	c.cache = make(map[string]json.RawMessage)
	c.mu.Unlock()
}

func (c *Client) token() string {
	if c.credentials == nil {
		return ""
	}
	return c.credentials.Token()
}

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
