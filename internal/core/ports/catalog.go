package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
)

type ServiceRepository interface {
	Create(ctx context.Context, s *catalog.Service) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Service, error)
	Update(ctx context.Context, s *catalog.Service) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	// List returns non-deleted services ordered by their display order.
	List(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error)
	Count(ctx context.Context) (int, error)
}

type TourRepository interface {
	Create(ctx context.Context, t *catalog.Tour) error
	GetByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	GetBySlug(ctx context.Context, slug string) (*catalog.Tour, error)
	Update(ctx context.Context, t *catalog.Tour) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	// List returns active, non-deleted tours, newest first.
	List(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error)
	ListByService(ctx context.Context, serviceID uuid.UUID) ([]*catalog.Tour, error)
	Count(ctx context.Context) (int, error)
}

// CatalogService manages services and the tours attached to them.
type CatalogService interface {
	CreateService(ctx context.Context, req *catalog.CreateServiceRequest) (*catalog.Service, error)
	GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error)
	UpdateService(ctx context.Context, id uuid.UUID, req *catalog.UpdateServiceRequest) (*catalog.Service, error)
	DeleteService(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ListServices(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error)

	CreateTour(ctx context.Context, req *catalog.CreateTourRequest) (*catalog.Tour, error)
	GetTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	GetTourBySlug(ctx context.Context, slug string) (*catalog.Tour, error)
	UpdateTour(ctx context.Context, id uuid.UUID, req *catalog.UpdateTourRequest) (*catalog.Tour, error)
	DeleteTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	ListTours(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error)
}
