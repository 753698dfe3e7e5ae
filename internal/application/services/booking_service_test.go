package services_test

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	impl "github.com/lexluc/lexluc-platform/internal/application/services"
	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/test/mocks"
)

func tourRepoWith(tour *catalog.Tour) *mocks.TourRepositoryMock {
	return &mocks.TourRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
		if id == tour.ID {
			return tour, nil
		}
		return nil, domain.ErrNotFound
	}}
}

func bookingRequest(tourID uuid.UUID, participants int) *booking.CreateBookingRequest {
	return &booking.CreateBookingRequest{
		FirstName: "Ngozi", LastName: "Eze", Email: "ngozi@x.io", Phone: "+2348000000000",
		NumberOfParticipants: participants, TotalPrice: 500000, TourID: tourID,
	}
}

func TestCreateBooking_PendingWithReferenceAndEmail(t *testing.T) {
	tour := &catalog.Tour{ID: uuid.New(), Title: "Obudu", IsActive: true}
	var stored *booking.Booking
	repo := &mocks.BookingRepositoryMock{CreateFn: func(ctx context.Context, b *booking.Booking) error {
		stored = b
		return nil
	}}
	mail := &mocks.EmailServiceMock{}
	svc := impl.NewBookingService(repo, tourRepoWith(tour), mail, quietLogger())

	b, err := svc.CreateBooking(context.Background(), bookingRequest(tour.ID, 2))
	require.NoError(t, err)
	require.Same(t, stored, b)
	assert.Equal(t, booking.StatusPending, b.Status)
	assert.Regexp(t, regexp.MustCompile(`^LX-\d{8}-[A-Z2-9]{6}$`), b.ReferenceNo)
	assert.Same(t, tour, b.Tour)
	require.Len(t, mail.Confirmations, 1)
	assert.Same(t, b, mail.Confirmations[0])
}

func TestCreateBooking_EmailFailureDoesNotFail(t *testing.T) {
	tour := &catalog.Tour{ID: uuid.New(), IsActive: true}
	mail := &mocks.EmailServiceMock{Err: errors.New("sendgrid: 500")}
	svc := impl.NewBookingService(&mocks.BookingRepositoryMock{}, tourRepoWith(tour), mail, quietLogger())

	b, err := svc.CreateBooking(context.Background(), bookingRequest(tour.ID, 1))
	require.NoError(t, err)
	assert.NotNil(t, b)
}

func TestCreateBooking_TourRules(t *testing.T) {
	limit := 4
	active := &catalog.Tour{ID: uuid.New(), Title: "Small group", IsActive: true, MaxParticipants: &limit}
	closed := &catalog.Tour{ID: uuid.New(), Title: "Closed", IsActive: false}
	tours := &mocks.TourRepositoryMock{GetByIDFn: func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
		switch id {
		case active.ID:
			return active, nil
		case closed.ID:
			return closed, nil
		}
		return nil, domain.ErrNotFound
	}}
	repo := &mocks.BookingRepositoryMock{CreateFn: func(ctx context.Context, b *booking.Booking) error {
		t.Fatal("unexpected create")
		return nil
	}}
	svc := impl.NewBookingService(repo, tours, nil, quietLogger())

	_, err := svc.CreateBooking(context.Background(), bookingRequest(closed.ID, 1))
	requireKind(t, err, domain.ErrInvalidInput, "Tour 'Closed' is not open for booking")

	_, err = svc.CreateBooking(context.Background(), bookingRequest(active.ID, 5))
	requireKind(t, err, domain.ErrInvalidInput, "This tour accepts at most 4 participants")

	_, err = svc.CreateBooking(context.Background(), bookingRequest(uuid.New(), 1))
	require.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpdateStatus_ValidatesStatus(t *testing.T) {
	id := uuid.New()
	repo := &mocks.BookingRepositoryMock{UpdateStatusFn: func(ctx context.Context, got uuid.UUID, status booking.Status) (*booking.Booking, error) {
		return &booking.Booking{ID: got, Status: status}, nil
	}}
	svc := impl.NewBookingService(repo, &mocks.TourRepositoryMock{}, nil, quietLogger())

	_, err := svc.UpdateStatus(context.Background(), id, booking.Status("SHIPPED"))
	requireKind(t, err, domain.ErrInvalidInput, "Invalid booking status 'SHIPPED'")

	b, err := svc.UpdateStatus(context.Background(), id, booking.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, booking.StatusConfirmed, b.Status)
	assert.Nil(t, b.Tour)
}

func TestListBookings_AttachesTours(t *testing.T) {
	tour := &catalog.Tour{ID: uuid.New(), Title: "Obudu"}
	repo := &mocks.BookingRepositoryMock{ListFn: func(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error) {
		assert.Equal(t, domain.ListParams{Page: 2, Limit: 5}, params)
		return []*booking.Booking{{TourID: tour.ID}, {TourID: uuid.New()}}, nil
	}}
	svc := impl.NewBookingService(repo, tourRepoWith(tour), nil, quietLogger())

	list, err := svc.ListBookings(context.Background(), domain.ListParams{Page: 2, Limit: 5})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Same(t, tour, list[0].Tour)
	assert.Nil(t, list[1].Tour)
}
