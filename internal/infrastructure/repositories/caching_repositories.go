package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

// Utility helpers
func cacheSetSilently(c ports.Cache, ctx context.Context, key string, v any, ttl time.Duration) {
	if c == nil {
		return
	}
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	_ = c.Set(ctx, key, b, ttl)
}

func cacheGet[T any](c ports.Cache, ctx context.Context, key string) (*T, bool) {
	if c == nil {
		return nil, false
	}
	b, ok, err := c.Get(ctx, key)
	if err != nil || !ok {
		return nil, false
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, false
	}
	return &v, true
}

func cacheDelete(c ports.Cache, ctx context.Context, keys ...string) {
	if c == nil {
		return
	}
	_ = c.Delete(ctx, keys...)
}

// loadFullListWithSingleflight coalesces a full-list load using singleflight,
// caches the full list and returns it. The loader fetches the complete list.
func loadFullListWithSingleflight[T any](cache ports.Cache, ctx context.Context, listKey string, ttl time.Duration, loader func() ([]T, error)) ([]T, error) {
	if v, ok := cacheGet[[]T](cache, ctx, listKey); ok {
		return *v, nil
	}
	res, err, _ := sf.Do(listKey, func() (any, error) {
		if v, ok := cacheGet[[]T](cache, ctx, listKey); ok {
			return *v, nil
		}
		all, err := loader()
		if err != nil {
			return nil, err
		}
		cacheSetSilently(cache, ctx, listKey, all, ttl)
		return all, nil
	})
	if err != nil {
		return nil, err
	}
	all, ok := res.([]T)
	if !ok {
		return nil, fmt.Errorf("unexpected type from singleflight result")
	}
	return all, nil
}

// pageOf slices a cached full list the same way the SQL LIMIT/OFFSET would.
func pageOf[T any](all []T, params domain.ListParams) []T {
	if !params.Paginated() {
		return all
	}
	limit, offset := params.Window()
	if offset >= len(all) {
		return []T{}
	}
	end := offset + limit
	if end > len(all) {
		end = len(all)
	}
	return all[offset:end]
}

// CachingServiceRepository decorates a ServiceRepository with cache-aside.
type CachingServiceRepository struct {
	inner ports.ServiceRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingServiceRepository(inner ports.ServiceRepository, cache ports.Cache, ttl time.Duration) ports.ServiceRepository {
	return &CachingServiceRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingServiceRepository) remember(ctx context.Context, s *catalog.Service) {
	cacheSetSilently(c.cache, ctx, "service:id:"+s.ID.String(), s, c.ttl)
	cacheSetSilently(c.cache, ctx, "service:slug:"+s.Slug, s, c.ttl)
}

func (c *CachingServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	if err := c.inner.Create(ctx, s); err != nil {
		return err
	}
	c.remember(ctx, s)
	cacheDelete(c.cache, ctx, "services:all")
	return nil
}

func (c *CachingServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if v, ok := cacheGet[catalog.Service](c.cache, ctx, "service:id:"+id.String()); ok {
		return v, nil
	}
	s, err := c.inner.GetByID(ctx, id)
	if err == nil {
		c.remember(ctx, s)
	}
	return s, err
}

func (c *CachingServiceRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	if v, ok := cacheGet[catalog.Service](c.cache, ctx, "service:slug:"+slug); ok {
		return v, nil
	}
	s, err := c.inner.GetBySlug(ctx, slug)
	if err == nil {
		c.remember(ctx, s)
	}
	return s, err
}

func (c *CachingServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	// The slug may change, so the old slug key goes too.
	old, _ := c.inner.GetByID(ctx, s.ID)
	if err := c.inner.Update(ctx, s); err != nil {
		return err
	}
	if old != nil && old.Slug != s.Slug {
		cacheDelete(c.cache, ctx, "service:slug:"+old.Slug)
	}
	c.remember(ctx, s)
	cacheDelete(c.cache, ctx, "services:all")
	return nil
}

func (c *CachingServiceRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	s, err := c.inner.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheDelete(c.cache, ctx, "service:id:"+id.String(), "service:slug:"+s.Slug, "services:all")
	return s, nil
}

func (c *CachingServiceRepository) List(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
	all, err := loadFullListWithSingleflight(c.cache, ctx, "services:all", c.ttl, func() ([]*catalog.Service, error) {
		return c.inner.List(ctx, domain.ListParams{})
	})
	if err != nil {
		return nil, err
	}
	return pageOf(all, params), nil
}

// Count derives from the full list when it is cached; List and Count cover
// the same rows.
func (c *CachingServiceRepository) Count(ctx context.Context) (int, error) {
	if v, ok := cacheGet[[]*catalog.Service](c.cache, ctx, "services:all"); ok {
		return len(*v), nil
	}
	return c.inner.Count(ctx)
}

// CachingTourRepository decorates a TourRepository with cache-aside.
type CachingTourRepository struct {
	inner ports.TourRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingTourRepository(inner ports.TourRepository, cache ports.Cache, ttl time.Duration) ports.TourRepository {
	return &CachingTourRepository{inner: inner, cache: cache, ttl: ttl}
}

func (c *CachingTourRepository) remember(ctx context.Context, t *catalog.Tour) {
	cacheSetSilently(c.cache, ctx, "tour:id:"+t.ID.String(), t, c.ttl)
	cacheSetSilently(c.cache, ctx, "tour:slug:"+t.Slug, t, c.ttl)
}

// forget drops the listings a tour can appear in.
func (c *CachingTourRepository) forget(ctx context.Context, tours ...*catalog.Tour) {
	keys := []string{"tours:all"}
	for _, t := range tours {
		if t == nil {
			continue
		}
		if t.ServiceID != nil {
			keys = append(keys, "tours:service:"+t.ServiceID.String())
		}
	}
	cacheDelete(c.cache, ctx, keys...)
}

func (c *CachingTourRepository) Create(ctx context.Context, t *catalog.Tour) error {
	if err := c.inner.Create(ctx, t); err != nil {
		return err
	}
	c.remember(ctx, t)
	c.forget(ctx, t)
	return nil
}

func (c *CachingTourRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	if v, ok := cacheGet[catalog.Tour](c.cache, ctx, "tour:id:"+id.String()); ok {
		return v, nil
	}
	t, err := c.inner.GetByID(ctx, id)
	if err == nil {
		c.remember(ctx, t)
	}
	return t, err
}

func (c *CachingTourRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Tour, error) {
	if v, ok := cacheGet[catalog.Tour](c.cache, ctx, "tour:slug:"+slug); ok {
		return v, nil
	}
	t, err := c.inner.GetBySlug(ctx, slug)
	if err == nil {
		c.remember(ctx, t)
	}
	return t, err
}

func (c *CachingTourRepository) Update(ctx context.Context, t *catalog.Tour) error {
	old, _ := c.inner.GetByID(ctx, t.ID)
	if err := c.inner.Update(ctx, t); err != nil {
		return err
	}
	if old != nil && old.Slug != t.Slug {
		cacheDelete(c.cache, ctx, "tour:slug:"+old.Slug)
	}
	c.remember(ctx, t)
	c.forget(ctx, old, t)
	return nil
}

func (c *CachingTourRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	t, err := c.inner.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	cacheDelete(c.cache, ctx, "tour:id:"+id.String(), "tour:slug:"+t.Slug)
	c.forget(ctx, t)
	return t, nil
}

func (c *CachingTourRepository) List(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error) {
	all, err := loadFullListWithSingleflight(c.cache, ctx, "tours:all", c.ttl, func() ([]*catalog.Tour, error) {
		return c.inner.List(ctx, domain.ListParams{})
	})
	if err != nil {
		return nil, err
	}
	return pageOf(all, params), nil
}

func (c *CachingTourRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*catalog.Tour, error) {
	return loadFullListWithSingleflight(c.cache, ctx, "tours:service:"+serviceID.String(), c.ttl, func() ([]*catalog.Tour, error) {
		return c.inner.ListByService(ctx, serviceID)
	})
}

// Count includes inactive tours, so it is never derived from the listing.
func (c *CachingTourRepository) Count(ctx context.Context) (int, error) {
	return c.inner.Count(ctx)
}

// CachingBlogRepository caches the public listing and slug lookups. Admin
// reads always go to the database so drafts are never stale.
type CachingBlogRepository struct {
	ports.BlogRepository
	cache ports.Cache
	ttl   time.Duration
}

func NewCachingBlogRepository(inner ports.BlogRepository, cache ports.Cache, ttl time.Duration) ports.BlogRepository {
	return &CachingBlogRepository{BlogRepository: inner, cache: cache, ttl: ttl}
}

func (c *CachingBlogRepository) forget(ctx context.Context, slugs ...string) {
	keys := []string{"blog:published"}
	for _, s := range slugs {
		keys = append(keys, "blog:slug:"+s)
	}
	cacheDelete(c.cache, ctx, keys...)
}

func (c *CachingBlogRepository) Create(ctx context.Context, p *blog.Post) error {
	if err := c.BlogRepository.Create(ctx, p); err != nil {
		return err
	}
	c.forget(ctx, p.Slug)
	return nil
}

func (c *CachingBlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if v, ok := cacheGet[blog.Post](c.cache, ctx, "blog:slug:"+slug); ok {
		return v, nil
	}
	p, err := c.BlogRepository.GetBySlug(ctx, slug)
	if err == nil {
		cacheSetSilently(c.cache, ctx, "blog:slug:"+slug, p, c.ttl)
	}
	return p, err
}

func (c *CachingBlogRepository) Update(ctx context.Context, p *blog.Post) error {
	old, _ := c.BlogRepository.GetByID(ctx, p.ID)
	if err := c.BlogRepository.Update(ctx, p); err != nil {
		return err
	}
	if old != nil {
		c.forget(ctx, old.Slug, p.Slug)
	} else {
		c.forget(ctx, p.Slug)
	}
	return nil
}

func (c *CachingBlogRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	p, err := c.BlogRepository.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	c.forget(ctx, p.Slug)
	return p, nil
}

func (c *CachingBlogRepository) ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	all, err := loadFullListWithSingleflight(c.cache, ctx, "blog:published", c.ttl, func() ([]*blog.Post, error) {
		return c.BlogRepository.ListPublished(ctx, domain.ListParams{})
	})
	if err != nil {
		return nil, err
	}
	return pageOf(all, params), nil
}

// Simple validation to ensure decorators implement interfaces at compile time
var _ ports.ServiceRepository = (*CachingServiceRepository)(nil)
var _ ports.TourRepository = (*CachingTourRepository)(nil)
var _ ports.BlogRepository = (*CachingBlogRepository)(nil)

// singleflight group for coalescing cache-miss loads in-process
var sf singleflight.Group
