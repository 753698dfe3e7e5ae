package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

const contactColumns = `id, first_name, last_name, email, phone, company, subject, message, status,
	response, responded_at, user_id, created_at, updated_at, deleted_at`

type ContactRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewContactRepository(database *db.Database, logger *logrus.Logger) ports.ContactRepository {
	return &ContactRepository{db: database, logger: logger}
}

func (r *ContactRepository) Create(ctx context.Context, m *contact.Message) error {
	query := `
		INSERT INTO contact_messages (id, first_name, last_name, email, phone, company, subject, message,
			status, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	_, err := r.db.DB.ExecContext(ctx, query,
		m.ID, m.FirstName, m.LastName, m.Email, m.Phone, m.Company, m.Subject, m.Message,
		m.Status, m.UserID, m.CreatedAt, m.UpdatedAt)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"contact_id": m.ID, "email": m.Email}).WithError(err).Error("db: failed to create contact message")
		return writeError("create contact message", err)
	}
	r.logger.WithField("contact_id", m.ID).Info("db: contact message created")
	return nil
}

func (r *ContactRepository) GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	var m contact.Message
	query := `SELECT ` + contactColumns + ` FROM contact_messages WHERE id = $1 AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("contact message", id)
		}
		r.logger.WithField("contact_id", id).WithError(err).Error("db: failed to get contact message")
		return nil, fmt.Errorf("failed to get contact message: %w", err)
	}
	return &m, nil
}

func (r *ContactRepository) Update(ctx context.Context, m *contact.Message) error {
	query := `
		UPDATE contact_messages
		SET status = $2, response = $3, responded_at = $4, updated_at = $5
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query, m.ID, m.Status, m.Response, m.RespondedAt, m.UpdatedAt)
	if err != nil {
		r.logger.WithField("contact_id", m.ID).WithError(err).Error("db: failed to update contact message")
		return writeError("update contact message", err)
	}
	if n, err := result.RowsAffected(); err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	} else if n == 0 {
		return notFound("contact message", m.ID)
	}
	return nil
}

func (r *ContactRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	var m contact.Message
	query := `UPDATE contact_messages SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + contactColumns
	if err := r.db.DB.GetContext(ctx, &m, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("contact message", id)
		}
		r.logger.WithField("contact_id", id).WithError(err).Error("db: failed to delete contact message")
		return nil, fmt.Errorf("failed to delete contact message: %w", err)
	}
	return &m, nil
}

func (r *ContactRepository) List(ctx context.Context, params domain.ListParams) ([]*contact.Message, error) {
	messages := []*contact.Message{}
	query, args := paginate(`SELECT `+contactColumns+` FROM contact_messages
		WHERE deleted_at IS NULL ORDER BY created_at DESC`, params)
	if err := r.db.DB.SelectContext(ctx, &messages, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list contact messages")
		return nil, fmt.Errorf("failed to list contact messages: %w", err)
	}
	return messages, nil
}

func (r *ContactRepository) CountByStatus(ctx context.Context, status contact.Status) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM contact_messages WHERE status = $1 AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &count, query, status); err != nil {
		return 0, fmt.Errorf("failed to count contact messages: %w", err)
	}
	return count, nil
}
