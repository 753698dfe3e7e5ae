package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// RequestOptions describes a call. The zero value is a GET without a body.
type RequestOptions struct {
	Method  string
	Body    any
	Headers map[string]string
}

type preparedRequest struct {
	method string
	url    string
	key    string
	body   []byte
	header http.Header
}

// Request performs a call against BaseURL+endpoint and returns the raw JSON
// body. GETs are served from cache when possible and coalesced with an
// identical pending GET; every other method always reaches the network.
func (c *Client) Request(ctx context.Context, endpoint string, opts *RequestOptions) (json.RawMessage, error) {
	req, err := c.prepare(endpoint, opts)
	if err != nil {
		return nil, err
	}
	if req.method != http.MethodGet {
		return c.executeWithRetry(ctx, req)
	}

	c.mu.Lock()
	if cached, ok := c.cache[req.key]; ok {
		c.mu.Unlock()
		return bytes.Clone(cached), nil
	}
	f, joined := c.inflight[req.key]
	if !joined {
		f = &flight{done: make(chan struct{})}
		c.inflight[req.key] = f
	}
	c.mu.Unlock()

	if joined {
		c.logger.WithField("key", req.key).Debug("joining in-flight request")
	} else {
		// The shared call must outlive the caller that happened to start it.
		go c.lead(context.WithoutCancel(ctx), req, f)
	}

	select {
	case <-f.done:
		if f.err != nil {
			return nil, f.err
		}
		return bytes.Clone(f.val), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (c *Client) lead(ctx context.Context, req *preparedRequest, f *flight) {
	val, err := c.executeWithRetry(ctx, req)

	c.mu.Lock()
	delete(c.inflight, req.key)
	f.val, f.err = val, err
	c.mu.Unlock()
	close(f.done)
}

func (c *Client) prepare(endpoint string, opts *RequestOptions) (*preparedRequest, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}
	method := opts.Method
	if method == "" {
		method = http.MethodGet
	}

	var body []byte
	switch b := opts.Body.(type) {
	case nil:
	case []byte:
		body = b
	case json.RawMessage:
		body = b
	default:
		encoded, err := json.Marshal(b)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = encoded
	}

	header := http.Header{}
	header.Set("Content-Type", "application/json")
	for k, v := range opts.Headers {
		header.Set(k, v)
	}
	if token := c.token(); token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	return &preparedRequest{
		method: method,
		url:    c.cfg.BaseURL + endpoint,
		key:    cacheKey(method, endpoint),
		body:   body,
		header: header,
	}, nil
}

// cacheKey is the literal method and endpoint, so query parameter order matters.
func cacheKey(method, endpoint string) string {
	return method + ":" + endpoint
}
