package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

const userColumns = `id, email, password_hash, first_name, last_name, phone, role, is_active,
	created_at, updated_at, deleted_at`

// UserRepository implements the user repository interface
type UserRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(database *db.Database, logger *logrus.Logger) ports.UserRepository {
	return &UserRepository{
		db:     database,
		logger: logger,
	}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	query := `
		INSERT INTO users (id, email, password_hash, first_name, last_name, phone, role, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone, u.Role,
		u.IsActive, u.CreatedAt, u.UpdatedAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).WithError(err).Error("db: failed to create user")
		}
		return writeError("create user", err)
	}
	if r.logger != nil {
		r.logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("db: user created")
	}

	return nil
}

// GetByID retrieves a non-deleted user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 AND deleted_at IS NULL`

	if err := r.db.DB.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"user_id": id}).Debug("db: user not found by ID")
			}
			return nil, notFound("user", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": id}).WithError(err).Error("db: failed to get user by ID")
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &u, nil
}

// GetByEmail retrieves a non-deleted user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	var u user.User
	query := `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower($1) AND deleted_at IS NULL`

	if err := r.db.DB.GetContext(ctx, &u, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			if r.logger != nil {
				r.logger.WithFields(logrus.Fields{"email": email}).Debug("db: user not found by email")
			}
			return nil, notFound("user", email)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"email": email}).WithError(err).Error("db: failed to get user by email")
		}
		return nil, fmt.Errorf("failed to get user by email: %w", err)
	}

	return &u, nil
}

// Update updates an existing user
func (r *UserRepository) Update(ctx context.Context, u *user.User) error {
	query := `
		UPDATE users
		SET email = $2, password_hash = $3, first_name = $4, last_name = $5,
			phone = $6, role = $7, is_active = $8, updated_at = $9
		WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.DB.ExecContext(ctx, query,
		u.ID, u.Email, u.PasswordHash, u.FirstName, u.LastName, u.Phone,
		u.Role, u.IsActive, u.UpdatedAt)
	if err != nil {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": u.ID}).WithError(err).Error("db: failed to update user")
		}
		return writeError("update user", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": u.ID}).Debug("db: update affected 0 rows - user not found")
		}
		return notFound("user", u.ID)
	}

	return nil
}

// SoftDelete marks a user deleted and returns the final record
func (r *UserRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*user.User, error) {
	var u user.User
	query := `UPDATE users SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + userColumns

	if err := r.db.DB.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("user", id)
		}
		if r.logger != nil {
			r.logger.WithFields(logrus.Fields{"user_id": id}).WithError(err).Error("db: failed to delete user")
		}
		return nil, fmt.Errorf("failed to delete user: %w", err)
	}

	return &u, nil
}

// List retrieves users, newest first
func (r *UserRepository) List(ctx context.Context, params domain.ListParams) ([]*user.User, error) {
	users := []*user.User{}
	query, args := paginate(`SELECT `+userColumns+` FROM users WHERE deleted_at IS NULL ORDER BY created_at DESC`, params)

	if err := r.db.DB.SelectContext(ctx, &users, query, args...); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to list users")
		}
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	return users, nil
}

// Count returns the number of non-deleted users
func (r *UserRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM users WHERE deleted_at IS NULL`); err != nil {
		if r.logger != nil {
			r.logger.WithError(err).Error("db: failed to count users")
		}
		return 0, fmt.Errorf("failed to count users: %w", err)
	}

	return count, nil
}
