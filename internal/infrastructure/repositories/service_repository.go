package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

const serviceColumns = `id, name, slug, description, content, icon, image, sort_order, is_active,
	meta_title, meta_description, created_at, updated_at, deleted_at`

type ServiceRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewServiceRepository(database *db.Database, logger *logrus.Logger) ports.ServiceRepository {
	return &ServiceRepository{db: database, logger: logger}
}

func (r *ServiceRepository) Create(ctx context.Context, s *catalog.Service) error {
	query := `
		INSERT INTO services (id, name, slug, description, content, icon, image, sort_order, is_active,
			meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`

	_, err := r.db.DB.ExecContext(ctx, query,
		s.ID, s.Name, s.Slug, s.Description, s.Content, s.Icon, s.Image, s.Order, s.IsActive,
		s.MetaTitle, s.MetaDescription, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"service_id": s.ID, "slug": s.Slug}).WithError(err).Error("db: failed to create service")
		return writeError("create service", err)
	}
	r.logger.WithFields(logrus.Fields{"service_id": s.ID, "slug": s.Slug}).Info("db: service created")
	return nil
}

func (r *ServiceRepository) get(ctx context.Context, where string, arg any) (*catalog.Service, error) {
	var s catalog.Service
	query := `SELECT ` + serviceColumns + ` FROM services WHERE ` + where + ` AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &s, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("service", arg)
		}
		r.logger.WithField("key", arg).WithError(err).Error("db: failed to get service")
		return nil, fmt.Errorf("failed to get service: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *ServiceRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *ServiceRepository) Update(ctx context.Context, s *catalog.Service) error {
	query := `
		UPDATE services
		SET name = $2, slug = $3, description = $4, content = $5, icon = $6, image = $7,
			sort_order = $8, is_active = $9, meta_title = $10, meta_description = $11, updated_at = $12
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query,
		s.ID, s.Name, s.Slug, s.Description, s.Content, s.Icon, s.Image,
		s.Order, s.IsActive, s.MetaTitle, s.MetaDescription, s.UpdatedAt)
	if err != nil {
		r.logger.WithField("service_id", s.ID).WithError(err).Error("db: failed to update service")
		return writeError("update service", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return notFound("service", s.ID)
	}
	return nil
}

func (r *ServiceRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	var s catalog.Service
	query := `UPDATE services SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + serviceColumns
	if err := r.db.DB.GetContext(ctx, &s, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("service", id)
		}
		r.logger.WithField("service_id", id).WithError(err).Error("db: failed to delete service")
		return nil, fmt.Errorf("failed to delete service: %w", err)
	}
	return &s, nil
}

func (r *ServiceRepository) List(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
	services := []*catalog.Service{}
	query, args := paginate(`SELECT `+serviceColumns+` FROM services
		WHERE deleted_at IS NULL ORDER BY sort_order ASC, created_at ASC`, params)
	if err := r.db.DB.SelectContext(ctx, &services, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list services")
		return nil, fmt.Errorf("failed to list services: %w", err)
	}
	return services, nil
}

func (r *ServiceRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM services WHERE deleted_at IS NULL`); err != nil {
		return 0, fmt.Errorf("failed to count services: %w", err)
	}
	return count, nil
}
