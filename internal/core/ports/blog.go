package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
)

type BlogRepository interface {
	Create(ctx context.Context, p *blog.Post) error
	GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	GetBySlug(ctx context.Context, slug string) (*blog.Post, error)
	Update(ctx context.Context, p *blog.Post) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	// ListPublished is ordered by publishedAt, newest first.
	ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	// ListAll includes drafts, ordered by createdAt, newest first.
	ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	Count(ctx context.Context) (int, error)
}

type BlogService interface {
	CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error)
	GetPost(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*blog.Post, error)
	UpdatePost(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error)
	DeletePost(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
}
