package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
)

const bookingColumns = `id, reference_no, first_name, last_name, email, phone, number_of_participants,
	total_price, status, special_requests, notes, tour_id, user_id, created_at, updated_at, deleted_at`

type BookingRepository struct {
	db     *db.Database
	logger *logrus.Logger
}

func NewBookingRepository(database *db.Database, logger *logrus.Logger) ports.BookingRepository {
	return &BookingRepository{db: database, logger: logger}
}

func (r *BookingRepository) Create(ctx context.Context, b *booking.Booking) error {
	query := `
		INSERT INTO bookings (id, reference_no, first_name, last_name, email, phone, number_of_participants,
			total_price, status, special_requests, notes, tour_id, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := r.db.DB.ExecContext(ctx, query,
		b.ID, b.ReferenceNo, b.FirstName, b.LastName, b.Email, b.Phone, b.NumberOfParticipants,
		b.TotalPrice, b.Status, b.SpecialRequests, b.Notes, b.TourID, b.UserID, b.CreatedAt, b.UpdatedAt)
	if err != nil {
		r.logger.WithFields(logrus.Fields{"booking_id": b.ID, "reference_no": b.ReferenceNo}).WithError(err).Error("db: failed to create booking")
		return writeError("create booking", err)
	}
	r.logger.WithFields(logrus.Fields{"booking_id": b.ID, "reference_no": b.ReferenceNo}).Info("db: booking created")
	return nil
}

func (r *BookingRepository) get(ctx context.Context, where string, arg any) (*booking.Booking, error) {
	var b booking.Booking
	query := `SELECT ` + bookingColumns + ` FROM bookings WHERE ` + where + ` AND deleted_at IS NULL`
	if err := r.db.DB.GetContext(ctx, &b, query, arg); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("booking", arg)
		}
		r.logger.WithField("key", arg).WithError(err).Error("db: failed to get booking")
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return r.get(ctx, "id = $1", id)
}

func (r *BookingRepository) GetByReference(ctx context.Context, referenceNo string) (*booking.Booking, error) {
	return r.get(ctx, "reference_no = $1", referenceNo)
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	var b booking.Booking
	query := `UPDATE bookings SET status = $2, updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + bookingColumns
	if err := r.db.DB.GetContext(ctx, &b, query, id, status); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("booking", id)
		}
		r.logger.WithFields(logrus.Fields{"booking_id": id, "status": status}).WithError(err).Error("db: failed to update booking status")
		return nil, fmt.Errorf("failed to update booking status: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) SoftDelete(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	var b booking.Booking
	query := `UPDATE bookings SET deleted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND deleted_at IS NULL RETURNING ` + bookingColumns
	if err := r.db.DB.GetContext(ctx, &b, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, notFound("booking", id)
		}
		r.logger.WithField("booking_id", id).WithError(err).Error("db: failed to delete booking")
		return nil, fmt.Errorf("failed to delete booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error) {
	bookings := []*booking.Booking{}
	query, args := paginate(`SELECT `+bookingColumns+` FROM bookings
		WHERE deleted_at IS NULL ORDER BY created_at DESC`, params)
	if err := r.db.DB.SelectContext(ctx, &bookings, query, args...); err != nil {
		r.logger.WithError(err).Error("db: failed to list bookings")
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

func (r *BookingRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.DB.GetContext(ctx, &count, `SELECT COUNT(*) FROM bookings WHERE deleted_at IS NULL`); err != nil {
		return 0, fmt.Errorf("failed to count bookings: %w", err)
	}
	return count, nil
}
