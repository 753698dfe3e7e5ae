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

const tourColumns = `id, title, slug, description, content, image, destination, duration, price,
	max_participants, is_active, highlights, inclusions, exclusions, itinerary, start_date, end_date,
	service_id, meta_title, meta_description, created_at, updated_at, deleted_at`

type TourRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewTourRepository(database *db.Database, logger *logrus.Logger) ports.TourRepository {
	return &TourRepository{db: database, logger: logger}
}

func (r *TourRepository) Create(ctx context.Context, t *catalog.Tour) error {
	query := `
		INSERT INTO tours (id, title, slug, description, content, image, destination, duration, price,
			max_participants, is_active, highlights, inclusions, exclusions, itinerary, start_date, end_date,
			service_id, meta_title, meta_description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22)`

	_, err := r.db.DB.ExecContext(ctx, query,
		t.ID, t.Title, t.Slug, t.Description, t.Content, t.Image, t.Destination, t.Duration, t.Price,
		t.MaxParticipants, t.IsActive, t.Highlights, t.Inclusions, t.Exclusions, t.Itinerary,
		t.StartDate, t.EndDate, t.ServiceID, t.MetaTitle, t.MetaDescription, t.CreatedAt, t.UpdatedAt)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"tour_id": t.ID, "slug": t.Slug}).WithError(err).Error("db: failed to create tour")
		return writeError("create tour", err)
	}
	r.logger.WithFields(logrus.Fields{"tour_id": t.ID, "slug": t.Slug}).Info("db: tour created")
	return nil
}

func (r *TourRepository) get(ctx context.Context, where string, arg any) (*catalog.Tour, error) {
	var t catalog.Tour
	query := `SELECT ` + tourColumns + ` FROM tours WHERE ` + where + ` AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &t, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("tour", arg)
		}
		r.logger.WithField("key", arg).WithError(err).Error("db: failed to get tour")
		return nil, fmt.Errorf("failed to get tour: %w", err)
	}
	return &t, nil
}

func (r *TourRepository) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *TourRepository) GetBySlug(ctx context.Context, slug string) (*catalog.Tour, error) {
	return r.get(ctx, "slug = $1", slug)
}

func (r *TourRepository) Update(ctx context.Context, t *catalog.Tour) error {
	query := `
		UPDATE tours
		SET title = $2, slug = $3, description = $4, content = $5, image = $6, destination = $7,
			duration = $8, price = $9, max_participants = $10, is_active = $11, highlights = $12,
			inclusions = $13, exclusions = $14, itinerary = $15, start_date = $16, end_date = $17,
			service_id = $18, meta_title = $19, meta_description = $20, updated_at = $21
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query,
		t.ID, t.Title, t.Slug, t.Description, t.Content, t.Image, t.Destination, t.Duration, t.Price,
		t.MaxParticipants, t.IsActive, t.Highlights, t.Inclusions, t.Exclusions, t.Itinerary,
		t.StartDate, t.EndDate, t.ServiceID, t.MetaTitle, t.MetaDescription, t.UpdatedAt)
	if err != nil {
		r.logger.WithField("tour_id", t.ID).WithError(err).Error("db: failed to update tour")
		return writeError("update tour", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return notFound("tour", t.ID)
	}
	return nil
}

func (r *TourRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	var t catalog.Tour
	query := `UPDATE tours SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + tourColumns
	if err := r.db.DB.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("tour", id)
		}
		r.logger.WithField("tour_id", id).WithError(err).Error("db: failed to delete tour")
		return nil, fmt.Errorf("failed to delete tour: %w", err)
	}
	return &t, nil
}

func (r *TourRepository) List(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error) {
	tours := []*catalog.Tour{}
	query, args := paginate(`SELECT `+tourColumns+` FROM tours
		WHERE deleted_at IS NULL AND is_active ORDER BY created_at DESC`, params)
	if err := r.db.DB.SelectContext(ctx, &tours, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list tours")
		return nil, fmt.Errorf("failed to list tours: %w", err)
	}
	return tours, nil
}

func (r *TourRepository) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*catalog.Tour, error) {
	tours := []*catalog.Tour{}
	query := `SELECT ` + tourColumns + ` FROM tours
		WHERE service_id = $1 AND deleted_at IS NULL AND is_active ORDER BY created_at DESC`
	if err := r.db.DB.SelectContext(ctx, &tours, query, serviceID); err != nil {
		r.logger.WithField("service_id", serviceID).WithError(err).Error("db: failed to list tours by service")
		return nil, fmt.Errorf("failed to list tours by service: %w", err)
	}
	return tours, nil
}

func (r *TourRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM tours WHERE deleted_at IS NULL`); err != nil {
		return 0, fmt.Errorf("failed to count tours: %w", err)
	}
	return count, nil
}
