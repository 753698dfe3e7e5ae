package booking

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
)

type Status string

const (
	StatusPending   Status = "PENDING"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
	StatusCompleted Status = "COMPLETED"
)

func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	default:
		return false
	}
}

type Booking struct {
	ID                   uuid.UUID  `json:"id" db:"id"`
	ReferenceNo          string     `json:"referenceNo" db:"reference_no"`
	FirstName            string     `json:"firstName" db:"first_name"`
	LastName             string     `json:"lastName" db:"last_name"`
	Email                string     `json:"email" db:"email"`
	Phone                string     `json:"phone" db:"phone"`
	NumberOfParticipants int        `json:"numberOfParticipants" db:"number_of_participants"`
	TotalPrice           float64    `json:"totalPrice" db:"total_price"`
	Status               Status     `json:"status" db:"status"`
	SpecialRequests      *string    `json:"specialRequests" db:"special_requests"`
	Notes                *string    `json:"notes" db:"notes"`
	TourID               uuid.UUID  `json:"tourId" db:"tour_id"`
	UserID               *uuid.UUID `json:"userId" db:"user_id"`
	CreatedAt            time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt            time.Time  `json:"updatedAt" db:"updated_at"`
	DeletedAt            *time.Time `json:"deletedAt,omitempty" db:"deleted_at"`

	Tour *catalog.Tour `json:"tour,omitempty" db:"-"`
}

// FullName is used in notification emails.
func (b *Booking) FullName() string {
	return b.FirstName + " " + b.LastName
}

type CreateBookingRequest struct {
	FirstName            string     `json:"firstName"`
	LastName             string     `json:"lastName"`
	Email                string     `json:"email"`
	Phone                string     `json:"phone"`
	NumberOfParticipants int        `json:"numberOfParticipants"`
	TotalPrice           float64    `json:"totalPrice"`
	TourID               uuid.UUID  `json:"tourId"`
	UserID               *uuid.UUID `json:"userId,omitempty"`
	SpecialRequests      *string    `json:"specialRequests,omitempty"`
	Notes                *string    `json:"notes,omitempty"`
}

func (r *CreateBookingRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.FirstName, validation.Required),
		validation.Field(&r.LastName, validation.Required),
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Phone, validation.Required),
		validation.Field(&r.NumberOfParticipants, validation.Required, validation.Min(1)),
		validation.Field(&r.TotalPrice, validation.Min(0.0)),
		validation.Field(&r.TourID, validation.Required),
	)
}
