package apiclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrTooManyRequests is returned once every retry of a rate-limited call was used up.
	ErrTooManyRequests = errors.New("Too many requests. Please wait a moment and try again.")
	// ErrRequestTimeout is returned when a single attempt exceeds Config.Timeout.
	ErrRequestTimeout = errors.New("Request timeout")
)

// APIError is a non-2xx, non-429 response. It is never retried.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

// newAPIError extracts the server message from an error body. A body that does
// not decode is treated as an empty object.
func newAPIError(status int, body []byte) *APIError {
	var payload struct {
		Message json.RawMessage `json:"message"`
	}
	_ = json.Unmarshal(body, &payload)

	msg := decodeMessage(payload.Message)
	if msg == "" {
		msg = fmt.Sprintf("API error: %d", status)
	}
	return &APIError{StatusCode: status, Message: msg}
}

// decodeMessage accepts either a string or a list of strings, the latter being
// how field validation failures are reported.
func decodeMessage(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return strings.Join(list, ", ")
	}
	return ""
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}
