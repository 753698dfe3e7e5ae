package services_test

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/lexluc/lexluc-platform/internal/application/services"
	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/media"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/test/mocks"
)

func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func TestUploadImage_StoresUnderKindFolder(t *testing.T) {
	var gotID, gotType string
	store := &mocks.ImageStoreMock{PutFn: func(ctx context.Context, publicID, contentType string, data []byte) (string, error) {
		gotID, gotType = publicID, contentType
		return "https://cdn.example.com/" + publicID, nil
	}}
	svc := impl.NewUploadService(store, "lexluc", 5<<20, quietLogger())

	img, err := svc.UploadImage(context.Background(), media.KindTour, "Obudu Ranch.png", "image/png", pngBytes(t, 32, 16))
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(img.PublicID, "lexluc/tours/obudu-ranch-"), img.PublicID)
	assert.Equal(t, gotID, img.PublicID)
	assert.Equal(t, "image/png", gotType)
	assert.Equal(t, "png", img.Format)
	assert.Equal(t, 32, img.Width)
	assert.Equal(t, 16, img.Height)
	assert.Equal(t, "https://cdn.example.com/"+img.PublicID, img.SecureURL)
}

func TestUploadImage_Rejections(t *testing.T) {
	svc := impl.NewUploadService(&mocks.ImageStoreMock{}, "lexluc", 1024, quietLogger())
	ctx := context.Background()

	_, err := svc.UploadImage(ctx, media.KindImage, "a.png", "image/png", nil)
	requireKind(t, err, domain.ErrInvalidInput, media.ErrNoFile.Error())

	_, err = svc.UploadImage(ctx, media.Kind("avatar"), "a.png", "image/png", pngBytes(t, 1, 1))
	require.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.UploadImage(ctx, media.KindImage, "big.png", "image/png", append(pngBytes(t, 1, 1), make([]byte, 2048)...))
	requireKind(t, err, domain.ErrInvalidInput, media.ErrTooLarge.Error())

	_, err = svc.UploadImage(ctx, media.KindImage, "notes.txt", "text/plain", []byte("hello world"))
	requireKind(t, err, domain.ErrInvalidInput, media.ErrUnsupportedType.Error())

	_, err = svc.UploadImage(ctx, media.KindImage, "fake.gif", "image/gif", pngBytes(t, 1, 1))
	requireKind(t, err, domain.ErrInvalidInput, media.ErrUnsupportedType.Error())
}

func TestUploadImage_GenericDeclaredTypeIsSniffed(t *testing.T) {
	svc := impl.NewUploadService(&mocks.ImageStoreMock{}, "lexluc", 5<<20, quietLogger())
	img, err := svc.UploadImage(context.Background(), media.KindBlog, "x.png", "application/octet-stream", pngBytes(t, 2, 2))
	require.NoError(t, err)
	assert.Equal(t, "png", img.Format)
	assert.True(t, strings.HasPrefix(img.PublicID, "lexluc/blog/x-"))
}

func TestDeleteImage(t *testing.T) {
	var deleted string
	store := &mocks.ImageStoreMock{DeleteFn: func(ctx context.Context, publicID string) error {
		deleted = publicID
		return nil
	}}
	svc := impl.NewUploadService(store, "lexluc", 1024, quietLogger())

	require.NoError(t, svc.DeleteImage(context.Background(), "/lexluc/tours/a-1234/"))
	assert.Equal(t, "lexluc/tours/a-1234", deleted)

	require.ErrorIs(t, svc.DeleteImage(context.Background(), "/"), domain.ErrInvalidInput)
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	counts := map[string]int{}
	start := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	var gotTTL time.Duration
	repo := &mocks.RateLimitRepositoryMock{IncrementWindowFn: func(ctx context.Context, client string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
		counts[client]++
		gotTTL = ttl
		return counts[client], start, nil
	}}
	rl := impl.NewRateLimiterService(repo, &impl.RateLimiterConfig{Requests: 2, Window: time.Minute}, quietLogger())

	var d ports.RateLimitDecision
	for i := 0; i < 2; i++ {
		var err error
		d, err = rl.Allow(context.Background(), "1.2.3.4")
		require.NoError(t, err)
		assert.True(t, d.Allowed)
	}
	assert.Equal(t, 0, d.Remaining)
	assert.Equal(t, start.Add(time.Minute), d.Reset)
	assert.Equal(t, 2*time.Minute, gotTTL)

	d, err := rl.Allow(context.Background(), "1.2.3.4")
	require.NoError(t, err)
	assert.False(t, d.Allowed)
	assert.Equal(t, 2, d.Limit)

	d, err = rl.Allow(context.Background(), "5.6.7.8")
	require.NoError(t, err)
	assert.True(t, d.Allowed)
	assert.Equal(t, 1, d.Remaining)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	boom := errors.New("redis down")
	repo := &mocks.RateLimitRepositoryMock{IncrementWindowFn: func(ctx context.Context, client string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
		return 0, time.Time{}, boom
	}}
	rl := impl.NewRateLimiterService(repo, nil, quietLogger())

	d, err := rl.Allow(context.Background(), "1.2.3.4")
	require.ErrorIs(t, err, boom)
	assert.True(t, d.Allowed)
	assert.Equal(t, 100, d.Limit)
}
