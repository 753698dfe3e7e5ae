package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

type BlogService struct {
	repo   ports.BlogRepository
	logger *logrus.Logger
	now    func() time.Time
}

func NewBlogService(repo ports.BlogRepository, logger *logrus.Logger) ports.BlogService {
	return &BlogService{repo: repo, logger: logger, now: time.Now}
}

func (s *BlogService) CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	slug, err := slugOr(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	now := s.now()
	p := &blog.Post{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		Image:           req.Image,
		Category:        req.Category,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	p.SetPublished(boolOr(req.IsPublished, false), now)

	if err := s.repo.Create(ctx, p); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"post_id": p.ID, "published": p.IsPublished}).Info("blog post created")
	return p, nil
}

func (s *BlogService) GetPost(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *BlogService) GetPostBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return s.repo.GetBySlug(ctx, slug)
}

func (s *BlogService) UpdatePost(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error) {
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		p.Title = *req.Title
	}
	if req.Slug != nil {
		p.Slug = *req.Slug
	}
	if req.Content != nil {
		p.Content = *req.Content
	}
	if req.Excerpt != nil {
		p.Excerpt = req.Excerpt
	}
	if req.Image != nil {
		p.Image = req.Image
	}
	if req.Category != nil {
		p.Category = req.Category
	}
	if req.MetaTitle != nil {
		p.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		p.MetaDescription = req.MetaDescription
	}
	now := s.now()
	if req.IsPublished != nil {
		p.SetPublished(*req.IsPublished, now)
	}
	p.UpdatedAt = now

	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"post_id": p.ID, "published": p.IsPublished}).Info("blog post updated")
	return p, nil
}

func (s *BlogService) DeletePost(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	return s.repo.SoftDelete(ctx, id)
}

func (s *BlogService) ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	return s.repo.ListPublished(ctx, params)
}

func (s *BlogService) ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	return s.repo.ListAll(ctx, params)
}
