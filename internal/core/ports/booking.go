package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
)

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetByReference(ctx context.Context, referenceNo string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	List(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error)
	Count(ctx context.Context) (int, error)
}

type BookingService interface {
	CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetBookingByReference(ctx context.Context, referenceNo string) (*booking.Booking, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	DeleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBookings(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error)
}
