package ports

import (
	"context"

	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
)

// EmailService sends customer and staff notifications.
type EmailService interface {
	SendBookingConfirmation(ctx context.Context, b *booking.Booking) error
	SendContactNotification(ctx context.Context, m *contact.Message) error
	SendContactResponse(ctx context.Context, m *contact.Message) error
}
