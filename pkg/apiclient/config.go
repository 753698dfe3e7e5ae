package apiclient

import (
	"fmt"
	"net/url"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// DefaultBaseURL is the local development API address.
const DefaultBaseURL = "http://localhost:3001/api/v1"

// Config holds the connection and retry settings of a Client.
type Config struct {
	// BaseURL is prepended verbatim to every endpoint.
	BaseURL string

	// Timeout bounds a single network attempt, not the whole retry loop.
	Timeout time.Duration

	// MaxRetries is the number of attempts made after the first one.
	MaxRetries int

	// RetryDelay is the backoff base: retry n waits RetryDelay * 2^(n-1).
	RetryDelay time.Duration
}

// DefaultConfig returns a Config with a 15s attempt timeout and 3 retries
// starting at 1s.
func DefaultConfig() Config {
	return Config{
		BaseURL:    DefaultBaseURL,
		Timeout:    15 * time.Second,
		MaxRetries: 3,
		RetryDelay: time.Second,
	}
}

// Validate checks if the configuration is usable.
func (c Config) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.BaseURL, validation.Required, validation.By(httpURL)),
		validation.Field(&c.Timeout, validation.Required, validation.Min(time.Duration(1))),
		validation.Field(&c.MaxRetries, validation.Min(0)),
		validation.Field(&c.RetryDelay, validation.Min(time.Duration(0))),
	)
}

func httpURL(value any) error {
	u, err := url.Parse(value.(string))
	if err != nil {
		return fmt.Errorf("invalid url: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("must use http or https scheme, got %q", u.Scheme)
	}
	return nil
}
