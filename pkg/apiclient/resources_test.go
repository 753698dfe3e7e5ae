package apiclient_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/pkg/apiclient"
)

type recordedCall struct {
	method string
	uri    string
	body   string
}

type callLog struct {
	mu    sync.Mutex
	calls []recordedCall
}

func (l *callLog) all() []recordedCall {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]recordedCall(nil), l.calls...)
}

func recordingServer(t *testing.T, reply string) (*httptest.Server, *callLog) {
	t.Helper()
	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		log.mu.Lock()
		log.calls = append(log.calls, recordedCall{method: r.Method, uri: r.URL.RequestURI(), body: string(b)})
		log.mu.Unlock()
		_, _ = w.Write([]byte(reply))
	}))
	t.Cleanup(srv.Close)
	return srv, log
}

func TestResources_Routes(t *testing.T) {
	srv, calls := recordingServer(t, `{}`)
	c, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.Tours().Page(ctx, 2, 5)
	require.NoError(t, err)
	_, err = c.Services().GetBySlug(ctx, "visa-assistance")
	require.NoError(t, err)
	_, err = c.Bookings().GetByReference(ctx, "LX-20250301-ABC123")
	require.NoError(t, err)
	_, err = c.Bookings().UpdateStatus(ctx, "b1", "CONFIRMED")
	require.NoError(t, err)
	_, err = c.Blog().GetPublic(ctx)
	require.NoError(t, err)
	_, err = c.Blog().GetAdmin(ctx)
	require.NoError(t, err)
	_, err = c.Contacts().MarkAsRead(ctx, "c1")
	require.NoError(t, err)
	_, err = c.Contacts().Respond(ctx, "c1", "Thanks, we will call you.")
	require.NoError(t, err)
	_, err = c.Users().Update(ctx, "u1", apiclient.Payload{"firstName": "Ada"})
	require.NoError(t, err)
	require.NoError(t, c.Tours().Delete(ctx, "t1"))

	want := []recordedCall{
		{http.MethodGet, "/tours?page=2&limit=5", ""},
		{http.MethodGet, "/services/slug/visa-assistance", ""},
		{http.MethodGet, "/bookings/reference/LX-20250301-ABC123", ""},
		{http.MethodPatch, "/bookings/b1/status?status=CONFIRMED", ""},
		{http.MethodGet, "/blog/public", ""},
		{http.MethodGet, "/blog/admin", ""},
		{http.MethodPatch, "/contacts/c1/read", ""},
		{http.MethodPatch, "/contacts/c1/respond", `{"response":"Thanks, we will call you."}`},
		{http.MethodPatch, "/users/u1", `{"firstName":"Ada"}`},
		{http.MethodDelete, "/tours/t1", ""},
	}
	got := calls.all()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.method, got[i].method, "call %d", i)
		assert.Equal(t, w.uri, got[i].uri, "call %d", i)
		if w.body != "" {
			assert.JSONEq(t, w.body, got[i].body, "call %d", i)
		}
	}
}

func TestResources_PageFillsServerDefaults(t *testing.T) {
	srv, calls := recordingServer(t, `[]`)
	c, _ := newTestClient(t, srv.URL)
	ctx := context.Background()

	_, err := c.Tours().Page(ctx, 0, 5)
	require.NoError(t, err)
	_, err = c.Services().Page(ctx, 3, 0)
	require.NoError(t, err)

	got := calls.all()
	require.Len(t, got, 2)
	assert.Equal(t, "/tours?page=1&limit=5", got[0].uri)
	assert.Equal(t, "/services?page=3&limit=10", got[1].uri)
}

func TestAdminStats_Decodes(t *testing.T) {
	srv, _ := recordingServer(t, `{"users":2,"services":5,"tours":7,"bookings":11,"posts":3,"unreadContacts":4}`)
	c, _ := newTestClient(t, srv.URL)

	stats, err := c.AdminStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, apiclient.Stats{Users: 2, Services: 5, Tours: 7, Bookings: 11, Posts: 3, UnreadContacts: 4}, *stats)
}

type memoryCreds struct {
	token   string
	cleared bool
}

func (m *memoryCreds) Token() string { return m.token }
func (m *memoryCreds) Clear() error  { m.token, m.cleared = "", true; return nil }

func TestAuth_LoginAndLogout(t *testing.T) {
	srv, calls := recordingServer(t, `{"access_token":"jwt","user":{"email":"admin@lexlucglobal.ng"}}`)
	creds := &memoryCreds{token: "old"}
	c, _ := newTestClient(t, srv.URL, apiclient.WithCredentials(creds))
	ctx := context.Background()

	res, err := c.Auth().Login(ctx, "admin@lexlucglobal.ng", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jwt", res.AccessToken)

	_, err = c.Auth().Profile(ctx)
	require.NoError(t, err)

	require.NoError(t, c.Auth().Logout(ctx))
	assert.True(t, creds.cleared)

	_, err = c.Auth().Profile(ctx)
	require.NoError(t, err)
	assert.Len(t, calls.all(), 4, "logout clears the cached profile")
}

func TestUploads_Image(t *testing.T) {
	var mu sync.Mutex
	var gotPath, gotAuth, gotName, gotContent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f, hdr, err := r.FormFile("file")
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		defer f.Close()
		mu.Lock()
		defer mu.Unlock()
		gotPath, gotAuth = r.URL.Path, r.Header.Get("Authorization")
		b, _ := io.ReadAll(f)
		gotName, gotContent = hdr.Filename, string(b)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"success": true,
			"data": map[string]any{
				"secure_url": "https://cdn.example.com/lexluc/tours/abc.png",
				"public_id":  "lexluc/tours/abc",
				"width":      1, "height": 1, "format": "png", "size": 4,
			},
			"message": "Tour image uploaded successfully",
		})
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL, apiclient.WithCredentials(staticToken("tok")))

	img, err := c.Uploads().Image(context.Background(), "tour", "abc.png", strings.NewReader("data"))
	require.NoError(t, err)
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, "/uploads/tour", gotPath)
	assert.Equal(t, "https://cdn.example.com/lexluc/tours/abc.png", img.SecureURL)
	assert.Equal(t, "lexluc/tours/abc", img.PublicID)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "abc.png", gotName)
	assert.Equal(t, "data", gotContent)
}

func TestUploads_ImageRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"message":"Invalid file type. Only JPEG, PNG, GIF and WebP are allowed."}`))
	}))
	defer srv.Close()
	c, _ := newTestClient(t, srv.URL)

	_, err := c.Uploads().Image(context.Background(), "image", "notes.txt", strings.NewReader("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid file type")
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestUploads_ImageSurfacesBodyReadError(t *testing.T) {
	reset := errors.New("connection reset by peer")
	hc := &http.Client{Transport: roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusCreated,
			Header:     http.Header{},
			Body:       io.NopCloser(iotest.ErrReader(reset)),
			Request:    r,
		}, nil
	})}
	c, _ := newTestClient(t, "http://api.test", apiclient.WithHTTPClient(hc))

	_, err := c.Uploads().Image(context.Background(), "tour", "abc.png", strings.NewReader("data"))
	require.ErrorIs(t, err, reset)
	assert.Contains(t, err.Error(), "failed to read upload response")
}
