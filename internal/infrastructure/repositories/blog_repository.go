package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

const postColumns = `id, title, slug, content, excerpt, image, category, is_published, published_at,
	meta_title, meta_description, created_at, updated_at, deleted_at`

type BlogRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewBlogRepository(database *db.Database, logger *logrus.Logger) ports.BlogRepository {
	return &BlogRepository{db: database, logger: logger}
}

func (r *BlogRepository) Create(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts (id, title, slug, content, excerpt, image, category, is_published,
			published_at, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Image, p.Category, p.IsPublished,
		p.PublishedAt, p.MetaTitle, p.MetaDescription, p.CreatedAt, p.UpdatedAt)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"post_id": p.ID, "slug": p.Slug}).WithError(err).Error("db: failed to create blog post")
		return writeError("create blog post", err)
	}
	r.logger.WithFields(logrus.Fields{"post_id": p.ID, "slug": p.Slug}).Info("db: blog post created")
	return nil
}

func (r *BlogRepository) get(ctx context.Context, where string, arg any) (*blog.Post, error) {
	var p blog.Post
	query := `SELECT ` + postColumns + ` FROM blog_posts WHERE ` + where + ` AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &p, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("blog post", arg)
		}
		r.logger.WithField("key", arg).WithError(err).Error("db: failed to get blog post")
		return nil, fmt.Errorf("failed to get blog post: %w", err)
	}
	return &p, nil
}

func (r *BlogRepository) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *BlogRepository) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *BlogRepository) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE blog_posts
		SET title = $2, slug = $3, content = $4, excerpt = $5, image = $6, category = $7,
			is_published = $8, published_at = $9, meta_title = $10, meta_description = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query,
		p.ID, p.Title, p.Slug, p.Content, p.Excerpt, p.Image, p.Category, p.IsPublished,
		p.PublishedAt, p.MetaTitle, p.MetaDescription, p.UpdatedAt)
	if err != nil {
		r.logger.WithField("post_id", p.ID).WithError(err).Error("db: failed to update blog post")
		return writeError("update blog post", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return notFound("blog post", p.ID)
	}
	return nil
}

func (r *BlogRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	var p blog.Post
	query := `UPDATE blog_posts SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + postColumns
	if err := r.db.DB.GetContext(ctx, &p, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("blog post", id)
		}
		r.logger.WithField("post_id", id).WithError(err).Error("db: failed to delete blog post")
		return nil, fmt.Errorf("failed to delete blog post: %w", err)
	}
	return &p, nil
}

func (r *BlogRepository) ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	posts := []*blog.Post{}
	query, args := paginate(`SELECT `+postColumns+` FROM blog_posts
		WHERE deleted_at IS NULL AND is_published ORDER BY published_at DESC`, params)
	if err := r.db.DB.SelectContext(ctx, &posts, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list published posts")
		return nil, fmt.Errorf("failed to list published posts: %w", err)
	}
	return posts, nil
}

func (r *BlogRepository) ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	posts := []*blog.Post{}
	query, args := paginate(`SELECT `+postColumns+` FROM blog_posts
		WHERE deleted_at IS NULL ORDER BY created_at DESC`, params)
	if err := r.db.DB.SelectContext(ctx, &posts, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list posts")
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return posts, nil
}

func (r *BlogRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM blog_posts WHERE deleted_at IS NULL`); err != nil {
		return 0, fmt.Errorf("failed to count blog posts: %w", err)
	}
	return count, nil
}
