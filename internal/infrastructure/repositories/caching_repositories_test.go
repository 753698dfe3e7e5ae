package repositories_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/repositories"
	"github.com/lexluc/lexluc-platform/test/mocks"
)

func TestCachingServiceRepository_ListServedFromCache(t *testing.T) {
	calls := 0
	inner := &mocks.ServiceRepositoryMock{ListFn: func(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
		calls++
		assert.False(t, params.Paginated(), "the decorator always loads the full list")
		return []*catalog.Service{{Name: "a"}, {Name: "b"}, {Name: "c"}}, nil
	}}
	cache := mocks.NewMemoryCache()
	repo := repositories.NewCachingServiceRepository(inner, cache, time.Minute)
	ctx := context.Background()

	all, err := repo.List(ctx, domain.ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 3)

	page, err := repo.List(ctx, domain.ListParams{Page: 2, Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "c", page[0].Name)

	beyond, err := repo.List(ctx, domain.ListParams{Page: 5, Limit: 2})
	require.NoError(t, err)
	assert.Empty(t, beyond)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Equal(t, 1, calls)
}

func TestCachingServiceRepository_WritesInvalidate(t *testing.T) {
	id := uuid.New()
	stored := &catalog.Service{ID: id, Name: "Visa", Slug: "visa"}
	inner := &mocks.ServiceRepositoryMock{
		GetByIDFn: func(ctx context.Context, got uuid.UUID) (*catalog.Service, error) {
			cp := *stored
			return &cp, nil
		},
		SoftDeleteFn: func(ctx context.Context, got uuid.UUID) (*catalog.Service, error) {
			cp := *stored
			return &cp, nil
		},
	}
	cache := mocks.NewMemoryCache()
	repo := repositories.NewCachingServiceRepository(inner, cache, time.Minute)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.True(t, cache.Has("service:slug:visa"))
	_, err = repo.List(ctx, domain.ListParams{})
	require.NoError(t, err)
	assert.True(t, cache.Has("services:all"))

	renamed := &catalog.Service{ID: id, Name: "Visa Help", Slug: "visa-help"}
	require.NoError(t, repo.Update(ctx, renamed))
	assert.False(t, cache.Has("service:slug:visa"))
	assert.True(t, cache.Has("service:slug:visa-help"))
	assert.False(t, cache.Has("services:all"))

	stored = renamed
	_, err = repo.SoftDelete(ctx, id)
	require.NoError(t, err)
	assert.False(t, cache.Has("service:id:"+id.String()))
	assert.False(t, cache.Has("service:slug:visa-help"))
}

func TestCachingServiceRepository_CacheErrorsFallBack(t *testing.T) {
	inner := &mocks.ServiceRepositoryMock{GetBySlugFn: func(ctx context.Context, slug string) (*catalog.Service, error) {
		return &catalog.Service{Slug: slug}, nil
	}}
	cache := mocks.NewMemoryCache()
	cache.GetErr = errors.New("redis down")
	repo := repositories.NewCachingServiceRepository(inner, cache, time.Minute)

	s, err := repo.GetBySlug(context.Background(), "visa")
	require.NoError(t, err)
	assert.Equal(t, "visa", s.Slug)
}

func TestCachingTourRepository_ServiceListingInvalidated(t *testing.T) {
	serviceID := uuid.New()
	calls := 0
	inner := &mocks.TourRepositoryMock{ListByServiceFn: func(ctx context.Context, id uuid.UUID) ([]*catalog.Tour, error) {
		calls++
		return []*catalog.Tour{{Title: "Obudu", ServiceID: &id}}, nil
	}}
	cache := mocks.NewMemoryCache()
	repo := repositories.NewCachingTourRepository(inner, cache, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		list, err := repo.ListByService(ctx, serviceID)
		require.NoError(t, err)
		require.Len(t, list, 1)
	}
	assert.Equal(t, 1, calls)

	require.NoError(t, repo.Create(ctx, &catalog.Tour{ID: uuid.New(), Slug: "yankari", ServiceID: &serviceID}))
	assert.False(t, cache.Has("tours:service:"+serviceID.String()))

	_, err := repo.ListByService(ctx, serviceID)
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestCachingBlogRepository_AdminReadsBypassCache(t *testing.T) {
	published, all := 0, 0
	inner := &mocks.BlogRepositoryMock{
		ListPublishedFn: func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
			published++
			return []*blog.Post{{Slug: "live", IsPublished: true}}, nil
		},
		ListAllFn: func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
			all++
			return []*blog.Post{{Slug: "live"}, {Slug: "draft"}}, nil
		},
	}
	cache := mocks.NewMemoryCache()
	repo := repositories.NewCachingBlogRepository(inner, cache, time.Minute)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		_, err := repo.ListPublished(ctx, domain.ListParams{})
		require.NoError(t, err)
		_, err = repo.ListAll(ctx, domain.ListParams{})
		require.NoError(t, err)
	}
	assert.Equal(t, 1, published)
	assert.Equal(t, 2, all)

	require.NoError(t, repo.Create(ctx, &blog.Post{ID: uuid.New(), Slug: "new"}))
	assert.False(t, cache.Has("blog:published"))
}
