package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/utils"
)

type CatalogService struct {
	services ports.ServiceRepository
	tours    ports.TourRepository
	logger   *logrus.Logger
}

func NewCatalogService(services ports.ServiceRepository, tours ports.TourRepository, logger *logrus.Logger) ports.CatalogService {
	return &CatalogService{services: services, tours: tours, logger: logger}
}

// slugOr returns slug when set, otherwise one derived from fallback.
func slugOr(slug, fallback string) (string, error) {
	if slug != "" {
		return slug, nil
	}
	if s := utils.Slugify(fallback); s != "" {
		return s, nil
	}
	return "", domain.Errorf(domain.ErrInvalidInput, "a slug could not be derived from %q", fallback)
}

func boolOr(v *bool, def bool) bool {
	if v == nil {
		return def
	}
	return *v
}

func (s *CatalogService) CreateService(ctx context.Context, req *catalog.CreateServiceRequest) (*catalog.Service, error) {
	slug, err := slugOr(req.Slug, req.Name)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	svc := &catalog.Service{
		ID:              uuid.New(),
		Name:            req.Name,
		Slug:            slug,
		Description:     req.Description,
		Content:         req.Content,
		Icon:            req.Icon,
		Image:           req.Image,
		IsActive:        boolOr(req.IsActive, true),
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if req.Order != nil {
		svc.Order = *req.Order
	}

	if err := s.services.Create(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	return s.services.GetByID(ctx, id)
}

// GetServiceBySlug returns the service with its active tours.
func (s *CatalogService) GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	svc, err := s.services.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	tours, err := s.tours.ListByService(ctx, svc.ID)
	if err != nil {
		return nil, err
	}
	svc.Tours = tours
	return svc, nil
}

func (s *CatalogService) UpdateService(ctx context.Context, id uuid.UUID, req *catalog.UpdateServiceRequest) (*catalog.Service, error) {
	svc, err := s.services.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		svc.Name = *req.Name
	}
	if req.Slug != nil {
		svc.Slug = *req.Slug
	}
	if req.Description != nil {
		svc.Description = *req.Description
	}
	if req.Content != nil {
		svc.Content = req.Content
	}
	if req.Icon != nil {
		svc.Icon = req.Icon
	}
	if req.Image != nil {
		svc.Image = req.Image
	}
	if req.Order != nil {
		svc.Order = *req.Order
	}
	if req.IsActive != nil {
		svc.IsActive = *req.IsActive
	}
	if req.MetaTitle != nil {
		svc.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		svc.MetaDescription = req.MetaDescription
	}
	svc.UpdatedAt = time.Now()

	if err := s.services.Update(ctx, svc); err != nil {
		return nil, err
	}
	return svc, nil
}

func (s *CatalogService) DeleteService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	svc, err := s.services.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("service_id", id).Info("service deleted")
	return svc, nil
}

func (s *CatalogService) ListServices(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
	return s.services.List(ctx, params)
}

func (s *CatalogService) CreateTour(ctx context.Context, req *catalog.CreateTourRequest) (*catalog.Tour, error) {
	slug, err := slugOr(req.Slug, req.Title)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	t := &catalog.Tour{
		ID:              uuid.New(),
		Title:           req.Title,
		Slug:            slug,
		Description:     req.Description,
		Content:         req.Content,
		Image:           req.Image,
		Destination:     req.Destination,
		Duration:        req.Duration,
		Price:           req.Price,
		MaxParticipants: req.MaxParticipants,
		IsActive:        boolOr(req.IsActive, true),
		Highlights:      nonNil(req.Highlights),
		Inclusions:      nonNil(req.Inclusions),
		Exclusions:      nonNil(req.Exclusions),
		Itinerary:       req.Itinerary,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		ServiceID:       req.ServiceID,
		MetaTitle:       req.MetaTitle,
		MetaDescription: req.MetaDescription,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	if err := s.tours.Create(ctx, t); err != nil {
		return nil, err
	}
	return s.withService(ctx, t), nil
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}
	return items
}

// withService attaches the owning service. A missing service is logged and
// left out rather than failing the read.
func (s *CatalogService) withService(ctx context.Context, t *catalog.Tour) *catalog.Tour {
	if t.ServiceID == nil {
		return t
	}
	svc, err := s.services.GetByID(ctx, *t.ServiceID)
	if err != nil {
		s.logger.WithFields(logrus.Fields{"tour_id": t.ID, "service_id": *t.ServiceID}).WithError(err).Debug("tour service not loaded")
		return t
	}
	t.Service = svc
	return t
}

func (s *CatalogService) GetTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	t, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.withService(ctx, t), nil
}

func (s *CatalogService) GetTourBySlug(ctx context.Context, slug string) (*catalog.Tour, error) {
	t, err := s.tours.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	return s.withService(ctx, t), nil
}

func (s *CatalogService) UpdateTour(ctx context.Context, id uuid.UUID, req *catalog.UpdateTourRequest) (*catalog.Tour, error) {
	t, err := s.tours.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		t.Title = *req.Title
	}
	if req.Slug != nil {
		t.Slug = *req.Slug
	}
	if req.Description != nil {
		t.Description = *req.Description
	}
	if req.Content != nil {
		t.Content = req.Content
	}
	if req.Image != nil {
		t.Image = req.Image
	}
	if req.Destination != nil {
		t.Destination = *req.Destination
	}
	if req.Duration != nil {
		t.Duration = *req.Duration
	}
	if req.Price != nil {
		t.Price = *req.Price
	}
	if req.MaxParticipants != nil {
		t.MaxParticipants = req.MaxParticipants
	}
	if req.IsActive != nil {
		t.IsActive = *req.IsActive
	}
	if req.Highlights != nil {
		t.Highlights = req.Highlights
	}
	if req.Inclusions != nil {
		t.Inclusions = req.Inclusions
	}
	if req.Exclusions != nil {
		t.Exclusions = req.Exclusions
	}
	if req.Itinerary != nil {
		t.Itinerary = req.Itinerary
	}
	if req.StartDate != nil {
		t.StartDate = req.StartDate
	}
	if req.EndDate != nil {
		t.EndDate = req.EndDate
	}
	if t.StartDate != nil && t.EndDate != nil && t.EndDate.Before(*t.StartDate) {
		return nil, domain.Errorf(domain.ErrInvalidInput, "endDate must not be before startDate")
	}
	if req.ServiceID != nil {
		t.ServiceID = req.ServiceID
	}
	if req.MetaTitle != nil {
		t.MetaTitle = req.MetaTitle
	}
	if req.MetaDescription != nil {
		t.MetaDescription = req.MetaDescription
	}
	t.UpdatedAt = time.Now()

	if err := s.tours.Update(ctx, t); err != nil {
		return nil, err
	}
	return s.withService(ctx, t), nil
}

func (s *CatalogService) DeleteTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	t, err := s.tours.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.WithField("tour_id", id).Info("tour deleted")
	return t, nil
}

func (s *CatalogService) ListTours(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error) {
	tours, err := s.tours.List(ctx, params)
	if err != nil {
		return nil, err
	}
	for _, t := range tours {
		s.withService(ctx, t)
	}
	return tours, nil
}
