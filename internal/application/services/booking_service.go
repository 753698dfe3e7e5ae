package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/utils"
)

type BookingService struct {
	repo         ports.BookingRepository
	tours        ports.TourRepository
	emailService ports.EmailService
	logger       *logrus.Logger
}

func NewBookingService(repo ports.BookingRepository, tours ports.TourRepository, emailService ports.EmailService, logger *logrus.Logger) ports.BookingService {
	return &BookingService{repo: repo, tours: tours, emailService: emailService, logger: logger}
}

// CreateBooking records a PENDING booking under a fresh reference and emails
// the customer. Email failures do not fail the booking.
func (s *BookingService) CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	tour, err := s.tours.GetByID(ctx, req.TourID)
	if err != nil {
		return nil, err
	}
	if !tour.IsActive {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Tour '%s' is not open for booking", tour.Title)
	}
	if tour.MaxParticipants != nil && req.NumberOfParticipants > *tour.MaxParticipants {
		return nil, domain.Errorf(domain.ErrInvalidInput, "This tour accepts at most %d participants", *tour.MaxParticipants)
	}

	now := time.Now()
	ref, err := utils.NewBookingReference(now)
	if err != nil {
		return nil, err
	}

	b := &booking.Booking{
		ID:                   uuid.New(),
		ReferenceNo:          ref,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		NumberOfParticipants: req.NumberOfParticipants,
		TotalPrice:           req.TotalPrice,
		Status:               booking.StatusPending,
		SpecialRequests:      req.SpecialRequests,
		Notes:                req.Notes,
		TourID:               req.TourID,
		UserID:               req.UserID,
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}
	b.Tour = tour

	if s.emailService != nil {
		if err := s.emailService.SendBookingConfirmation(ctx, b); err != nil {
			// Log error but don't fail the booking
			s.logger.WithFields(logrus.Fields{
				"booking_id":   b.ID,
				"reference_no": b.ReferenceNo,
			}).WithError(err).Warn("failed to send booking confirmation")
		}
	}

	return b, nil
}

func (s *BookingService) withTour(ctx context.Context, b *booking.Booking) *booking.Booking {
	if t, err := s.tours.GetByID(ctx, b.TourID); err == nil {
		b.Tour = t
	}
	return b
}

func (s *BookingService) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	b, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withTour(ctx, b), nil
}

func (s *BookingService) GetBookingByReference(ctx context.Context, referenceNo string) (*booking.Booking, error) {
	b, err := s.repo.GetByReference(ctx, referenceNo)
	if err != nil {
		return nil, err
	}
	return s.withTour(ctx, b), nil
}

func (s *BookingService) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if !status.IsValid() {
		return nil, domain.Errorf(domain.ErrInvalidInput, "Invalid booking status '%s'", status)
	}
	b, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.logger.WithFields(logrus.Fields{"booking_id": id, "status": status}).Info("booking status updated")
	return s.withTour(ctx, b), nil
}

func (s *BookingService) DeleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	return s.repo.SoftDelete(ctx, id)
}

func (s *BookingService) ListBookings(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error) {
	bookings, err := s.repo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	for _, b := range bookings {
		s.withTour(ctx, b)
	}
	return bookings, nil
}
