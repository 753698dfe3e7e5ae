package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/pkg/apiclient"
)

type sleepRecorder struct {
	mu    sync.Mutex
	waits []time.Duration
}

func (s *sleepRecorder) sleep(_ context.Context, d time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.waits = append(s.waits, d)
	return nil
}

func (s *sleepRecorder) recorded() []time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]time.Duration(nil), s.waits...)
}

// flakyTransport fails the first n round trips with err.
type flakyTransport struct {
	n     int32
	err   error
	calls atomic.Int32
}

func (f *flakyTransport) RoundTrip(r *http.Request) (*http.Response, error) {
	if f.calls.Add(1) <= f.n {
		return nil, f.err
	}
	return http.DefaultTransport.RoundTrip(r)
}

type staticToken string

func (s staticToken) Token() string { return string(s) }

func newTestClient(t *testing.T, baseURL string, opts ...apiclient.Option) (*apiclient.Client, *sleepRecorder) {
	t.Helper()
	rec := &sleepRecorder{}
	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = baseURL
	c, err := apiclient.New(cfg, append([]apiclient.Option{apiclient.WithSleeper(rec.sleep)}, opts...)...)
	require.NoError(t, err)
	return c, rec
}

func TestRequest_CoalescesConcurrentGets(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`[{"id":"s1"}]`))
	}))
	defer srv.Close()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c, _ := newTestClient(t, srv.URL, apiclient.WithLogger(logger))

	results := make([]json.RawMessage, 2)
	errs := make([]error, 2)
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		results[0], errs[0] = c.Request(context.Background(), "/services", nil)
	}()
	<-arrived
	go func() {
		defer wg.Done()
		results[1], errs[1] = c.Request(context.Background(), "/services", nil)
	}()
	require.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "joining in-flight request" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)
	close(release)
	wg.Wait()

	require.NoError(t, errs[0])
	require.NoError(t, errs[1])
	assert.Equal(t, int32(1), hits.Load())
	assert.JSONEq(t, string(results[0]), string(results[1]))
}

func TestRequest_CacheHitSkipsNetworkUntilCleared(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`{"users":3}`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	first, err := c.Request(ctx, "/admin/stats", nil)
	require.NoError(t, err)
	second, err := c.Request(ctx, "/admin/stats", nil)
	require.NoError(t, err)
	assert.JSONEq(t, string(first), string(second))
	assert.Equal(t, int32(1), hits.Load())

	c.ClearCache()
	_, err = c.Request(ctx, "/admin/stats", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

func TestRequest_MutationsBypassCacheAndCoalescing(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		time.Sleep(20 * time.Millisecond)
		_, _ = w.Write([]byte(`{"id":"b1"}`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := c.Request(context.Background(), "/bookings", &apiclient.RequestOptions{
				Method: http.MethodPost,
				Body:   apiclient.Payload{"fullName": "Ada"},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(2), hits.Load())

	_, err := c.Request(context.Background(), "/bookings", &apiclient.RequestOptions{Method: http.MethodPost})
	require.NoError(t, err)
	assert.Equal(t, int32(3), hits.Load())
}

func TestRequest_RetriesTransportFailuresThenSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()
	transport := &flakyTransport{n: 2, err: errors.New("connection reset")}
	c, sleeps := newTestClient(t, srv.URL, apiclient.WithHTTPClient(&http.Client{Transport: transport}))

	got, err := c.Request(context.Background(), "/tours", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"ok":true}`, string(got))
	assert.Equal(t, int32(3), transport.calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second}, sleeps.recorded())
}

func TestRequest_SurfacesLastErrorWhenRetriesExhausted(t *testing.T) {
	reset := errors.New("connection reset")
	transport := &flakyTransport{n: 100, err: reset}
	c, sleeps := newTestClient(t, "http://api.invalid", apiclient.WithHTTPClient(&http.Client{Transport: transport}))

	_, err := c.Request(context.Background(), "/tours", nil)
	require.ErrorIs(t, err, reset)
	assert.Equal(t, int32(4), transport.calls.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeps.recorded())
}

func TestRequest_RateLimitHonoursRetryAfterSeconds(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	c, sleeps := newTestClient(t, srv.URL)

	_, err := c.Request(context.Background(), "/blog/public", nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{2 * time.Second}, sleeps.recorded())
}

func TestRequest_RateLimitHonoursRetryAfterDate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch hits.Add(1) {
		case 1:
			w.Header().Set("Retry-After", now.Add(3*time.Second).Format(http.TimeFormat))
			w.WriteHeader(http.StatusTooManyRequests)
		case 2:
			w.Header().Set("Retry-After", now.Add(-time.Minute).Format(http.TimeFormat))
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			_, _ = w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()
	c, sleeps := newTestClient(t, srv.URL, apiclient.WithClock(func() time.Time { return now }))

	_, err := c.Request(context.Background(), "/tours", nil)
	require.NoError(t, err)
	assert.Equal(t, []time.Duration{3 * time.Second, time.Second}, sleeps.recorded())
}

func TestRequest_RateLimitExhaustedReturnsFriendlyMessage(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"message":"ThrottlerException: Too Many Requests"}`))
	}))
	defer srv.Close()
	c, sleeps := newTestClient(t, srv.URL)

	_, err := c.Request(context.Background(), "/services", nil)
	require.ErrorIs(t, err, apiclient.ErrTooManyRequests)
	assert.Equal(t, "Too many requests. Please wait a moment and try again.", err.Error())
	assert.Equal(t, int32(4), hits.Load())
	assert.Equal(t, []time.Duration{time.Second, 2 * time.Second, 4 * time.Second}, sleeps.recorded())
}

func TestRequest_ClientErrorsAreNotRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message":"Not found"}`))
	}))
	defer srv.Close()
	c, sleeps := newTestClient(t, srv.URL)

	_, err := c.Request(context.Background(), "/tours/missing", nil)
	require.Error(t, err)
	assert.Equal(t, "Not found", err.Error())
	assert.True(t, apiclient.IsNotFound(err))
	assert.Equal(t, int32(1), hits.Load())
	assert.Empty(t, sleeps.recorded())
}

func TestRequest_ErrorBodyFallbacks(t *testing.T) {
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"not json", http.StatusInternalServerError, "<html>oops</html>", "API error: 500"},
		{"no message", http.StatusForbidden, `{"error":"Forbidden"}`, "API error: 403"},
		{"message list", http.StatusBadRequest, `{"message":["email must be an email","password is required"]}`, "email must be an email, password is required"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer srv.Close()
			c, _ := newTestClient(t, srv.URL)

			_, err := c.Request(context.Background(), "/x", nil)
			var apiErr *apiclient.APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tc.status, apiErr.StatusCode)
			assert.Equal(t, tc.want, apiErr.Message)
		})
	}
}

func TestRequest_FailedGetIsRemovedFromInFlightRegistry(t *testing.T) {
	reset := errors.New("connection refused")
	transport := &flakyTransport{n: 4, err: reset}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"id":"t1"}`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL, apiclient.WithHTTPClient(&http.Client{Transport: transport}))

	_, err := c.Request(context.Background(), "/tours/t1", nil)
	require.ErrorIs(t, err, reset)
	assert.Equal(t, int32(4), transport.calls.Load())

	got, err := c.Request(context.Background(), "/tours/t1", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"t1"}`, string(got))
	assert.Equal(t, int32(5), transport.calls.Load())
}

func TestRequest_QueryOrderProducesDistinctKeys(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL)

	_, err := c.Request(context.Background(), "/tours?page=1&limit=10", nil)
	require.NoError(t, err)
	_, err = c.Request(context.Background(), "/tours?limit=10&page=1", nil)
	require.NoError(t, err)
	assert.Equal(t, int32(2), hits.Load())
}

// Mutations do not invalidate cached reads on their own; callers are expected
// to call ClearCache. This documents the current behaviour.
func TestRequest_MutationDoesNotInvalidateCachedRead(t *testing.T) {
	var gets atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			gets.Add(1)
		}
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.Services().GetAll(ctx)
	require.NoError(t, err)
	_, err = c.Services().Create(ctx, apiclient.Payload{"name": "Visa Assistance"})
	require.NoError(t, err)
	_, err = c.Services().GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, int32(1), gets.Load())
}

func TestRequest_Headers(t *testing.T) {
	var mu sync.Mutex
	var last http.Header
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		last = r.Header.Clone()
		mu.Unlock()
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()
	headers := func() http.Header {
		mu.Lock()
		defer mu.Unlock()
		return last
	}

	c, _ := newTestClient(t, srv.URL)
	_, err := c.Request(context.Background(), "/auth/me", nil)
	require.NoError(t, err)
	got := headers()
	assert.Equal(t, "application/json", got.Get("Content-Type"))
	assert.Empty(t, got.Get("Authorization"))

	c, _ = newTestClient(t, srv.URL, apiclient.WithCredentials(staticToken("tok")))
	_, err = c.Request(context.Background(), "/auth/me", &apiclient.RequestOptions{
		Headers: map[string]string{"Content-Type": "text/plain", "X-Trace": "1"},
	})
	require.NoError(t, err)
	got = headers()
	assert.Equal(t, "Bearer tok", got.Get("Authorization"))
	assert.Equal(t, "text/plain", got.Get("Content-Type"))
	assert.Equal(t, "1", got.Get("X-Trace"))
}

func TestRequest_AttemptTimeoutIsRetried(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits.Add(1) == 1 {
			select {
			case <-r.Context().Done():
			case <-time.After(time.Second):
			}
			return
		}
		_, _ = w.Write([]byte(`"ok"`))
	}))
	defer srv.Close()

	rec := &sleepRecorder{}
	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Timeout = 50 * time.Millisecond
	c, err := apiclient.New(cfg, apiclient.WithSleeper(rec.sleep))
	require.NoError(t, err)

	got, err := c.Request(context.Background(), "/tours", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `"ok"`, string(got))
	assert.Equal(t, []time.Duration{time.Second}, rec.recorded())
}

func TestRequest_TimeoutSurfacesAfterExhaustion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Timeout = 20 * time.Millisecond
	cfg.MaxRetries = 0
	c, err := apiclient.New(cfg)
	require.NoError(t, err)

	_, err = c.Request(context.Background(), "/tours", nil)
	require.ErrorIs(t, err, apiclient.ErrRequestTimeout)
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	cfg := apiclient.DefaultConfig()
	cfg.BaseURL = "ftp://example.com"
	_, err := apiclient.New(cfg)
	require.Error(t, err)

	cfg = apiclient.DefaultConfig()
	cfg.Timeout = 0
	_, err = apiclient.New(cfg)
	require.Error(t, err)
}

func TestRequest_CancelledCallerDoesNotAbortSharedRequest(t *testing.T) {
	var hits atomic.Int32
	arrived := make(chan struct{}, 1)
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		arrived <- struct{}{}
		<-release
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	logger, hook := logtest.NewNullLogger()
	logger.SetLevel(logrus.DebugLevel)
	c, _ := newTestClient(t, srv.URL, apiclient.WithLogger(logger))

	ctx, cancel := context.WithCancel(context.Background())
	leaderErr := make(chan error, 1)
	go func() {
		_, err := c.Request(ctx, "/tours", nil)
		leaderErr <- err
	}()
	<-arrived

	joined := make(chan json.RawMessage, 1)
	go func() {
		got, err := c.Request(context.Background(), "/tours", nil)
		assert.NoError(t, err)
		joined <- got
	}()
	require.Eventually(t, func() bool {
		for _, e := range hook.AllEntries() {
			if e.Message == "joining in-flight request" {
				return true
			}
		}
		return false
	}, time.Second, 5*time.Millisecond)

	cancel()
	require.ErrorIs(t, <-leaderErr, context.Canceled)

	close(release)
	assert.JSONEq(t, `{"ok":true}`, string(<-joined))
	assert.Equal(t, int32(1), hits.Load())
}

func TestNew_IgnoresNilHTTPClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c, _ := newTestClient(t, srv.URL, apiclient.WithHTTPClient(nil))
	got, err := c.Request(context.Background(), "/services", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `[]`, string(got))
}
