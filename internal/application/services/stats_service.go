package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/lexluc/lexluc-platform/internal/core/domain/admin"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

type StatsService struct {
	users    ports.UserRepository
	services ports.ServiceRepository
	tours    ports.TourRepository
	bookings ports.BookingRepository
	posts    ports.BlogRepository
	contacts ports.ContactRepository
}

func NewStatsService(users ports.UserRepository, services ports.ServiceRepository, tours ports.TourRepository,
	bookings ports.BookingRepository, posts ports.BlogRepository, contacts ports.ContactRepository) ports.StatsService {
	return &StatsService{users: users, services: services, tours: tours, bookings: bookings, posts: posts, contacts: contacts}
}

// GetStats runs the six counts concurrently; the first failure wins.
func (s *StatsService) GetStats(ctx context.Context) (*admin.Stats, error) {
	var stats admin.Stats
	g, gctx := errgroup.WithContext(ctx)

	count := func(dst *int, fn func(context.Context) (int, error)) {
		g.Go(func() error {
			n, err := fn(gctx)
			if err != nil {
				return err
			}
			*dst = n
			return nil
		})
	}

	count(&stats.Users, s.users.Count)
	count(&stats.Services, s.services.Count)
	count(&stats.Tours, s.tours.Count)
	count(&stats.Bookings, s.bookings.Count)
	count(&stats.Posts, s.posts.Count)
	count(&stats.UnreadContacts, func(ctx context.Context) (int, error) {
		return s.contacts.CountByStatus(ctx, contact.StatusNew)
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &stats, nil
}
