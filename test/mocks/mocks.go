package mocks

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/admin"
	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/blog"
	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/core/domain/media"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
)

var (
	_ ports.UserRepository     = (*UserRepositoryMock)(nil)
	_ ports.ServiceRepository  = (*ServiceRepositoryMock)(nil)
	_ ports.TourRepository     = (*TourRepositoryMock)(nil)
	_ ports.BookingRepository  = (*BookingRepositoryMock)(nil)
	_ ports.BlogRepository     = (*BlogRepositoryMock)(nil)
	_ ports.ContactRepository  = (*ContactRepositoryMock)(nil)
	_ ports.TokenBlacklist     = (*TokenBlacklistMock)(nil)
	_ ports.EmailService       = (*EmailServiceMock)(nil)
	_ ports.ImageStore         = (*ImageStoreMock)(nil)
	_ ports.RateLimitRepository = (*RateLimitRepositoryMock)(nil)
	_ ports.Cache              = (*MemoryCache)(nil)
	_ ports.AuthService        = (*AuthServiceMock)(nil)
	_ ports.UserService        = (*UserServiceMock)(nil)
	_ ports.CatalogService     = (*CatalogServiceMock)(nil)
	_ ports.BookingService     = (*BookingServiceMock)(nil)
	_ ports.BlogService        = (*BlogServiceMock)(nil)
	_ ports.ContactService     = (*ContactServiceMock)(nil)
	_ ports.StatsService       = (*StatsServiceMock)(nil)
	_ ports.UploadService      = (*UploadServiceMock)(nil)
	_ ports.RateLimiterService = (*RateLimiterServiceMock)(nil)
)

// UserRepositoryMock is a lightweight mock for UserRepository
type UserRepositoryMock struct {
	CreateFn     func(ctx context.Context, u *user.User) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmailFn func(ctx context.Context, email string) (*user.User, error)
	UpdateFn     func(ctx context.Context, u *user.User) error
	SoftDeleteFn func(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListFn       func(ctx context.Context, params domain.ListParams) ([]*user.User, error)
	CountFn      func(ctx context.Context) (int, error)
}

func (m *UserRepositoryMock) Create(ctx context.Context, u *user.User) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *UserRepositoryMock) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.GetByEmailFn != nil {
		return m.GetByEmailFn(ctx, email)
	}
	return nil, domain.ErrNotFound
}
func (m *UserRepositoryMock) Update(ctx context.Context, u *user.User) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, u)
	}
	return nil
}
func (m *UserRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *UserRepositoryMock) List(ctx context.Context, params domain.ListParams) ([]*user.User, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *UserRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// ServiceRepositoryMock is a lightweight mock for ServiceRepository
type ServiceRepositoryMock struct {
	CreateFn     func(ctx context.Context, s *catalog.Service) error
	GetByIDFn    func(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetBySlugFn  func(ctx context.Context, slug string) (*catalog.Service, error)
	UpdateFn     func(ctx context.Context, s *catalog.Service) error
	SoftDeleteFn func(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ListFn       func(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error)
	CountFn      func(ctx context.Context) (int, error)
}

func (m *ServiceRepositoryMock) Create(ctx context.Context, s *catalog.Service) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, s)
	}
	return nil
}
func (m *ServiceRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ServiceRepositoryMock) GetBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *ServiceRepositoryMock) Update(ctx context.Context, s *catalog.Service) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, s)
	}
	return nil
}
func (m *ServiceRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ServiceRepositoryMock) List(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *ServiceRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// TourRepositoryMock is a lightweight mock for TourRepository
type TourRepositoryMock struct {
	CreateFn        func(ctx context.Context, t *catalog.Tour) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	GetBySlugFn     func(ctx context.Context, slug string) (*catalog.Tour, error)
	UpdateFn        func(ctx context.Context, t *catalog.Tour) error
	SoftDeleteFn    func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	ListFn          func(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error)
	ListByServiceFn func(ctx context.Context, serviceID uuid.UUID) ([]*catalog.Tour, error)
	CountFn         func(ctx context.Context) (int, error)
}

func (m *TourRepositoryMock) Create(ctx context.Context, t *catalog.Tour) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, t)
	}
	return nil
}
func (m *TourRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *TourRepositoryMock) GetBySlug(ctx context.Context, slug string) (*catalog.Tour, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *TourRepositoryMock) Update(ctx context.Context, t *catalog.Tour) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, t)
	}
	return nil
}
func (m *TourRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *TourRepositoryMock) List(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *TourRepositoryMock) ListByService(ctx context.Context, serviceID uuid.UUID) ([]*catalog.Tour, error) {
	if m.ListByServiceFn != nil {
		return m.ListByServiceFn(ctx, serviceID)
	}
	return nil, nil
}
func (m *TourRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// BookingRepositoryMock is a lightweight mock for BookingRepository
type BookingRepositoryMock struct {
	CreateFn         func(ctx context.Context, b *booking.Booking) error
	GetByIDFn        func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetByReferenceFn func(ctx context.Context, referenceNo string) (*booking.Booking, error)
	UpdateStatusFn   func(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	SoftDeleteFn     func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListFn           func(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error)
	CountFn          func(ctx context.Context) (int, error)
}

func (m *BookingRepositoryMock) Create(ctx context.Context, b *booking.Booking) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, b)
	}
	return nil
}
func (m *BookingRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingRepositoryMock) GetByReference(ctx context.Context, referenceNo string) (*booking.Booking, error) {
	if m.GetByReferenceFn != nil {
		return m.GetByReferenceFn(ctx, referenceNo)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingRepositoryMock) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingRepositoryMock) List(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *BookingRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// BlogRepositoryMock is a lightweight mock for BlogRepository
type BlogRepositoryMock struct {
	CreateFn        func(ctx context.Context, p *blog.Post) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	GetBySlugFn     func(ctx context.Context, slug string) (*blog.Post, error)
	UpdateFn        func(ctx context.Context, p *blog.Post) error
	SoftDeleteFn    func(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	ListPublishedFn func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	ListAllFn       func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	CountFn         func(ctx context.Context) (int, error)
}

func (m *BlogRepositoryMock) Create(ctx context.Context, p *blog.Post) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, p)
	}
	return nil
}
func (m *BlogRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogRepositoryMock) GetBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.GetBySlugFn != nil {
		return m.GetBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogRepositoryMock) Update(ctx context.Context, p *blog.Post) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, p)
	}
	return nil
}
func (m *BlogRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogRepositoryMock) ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	if m.ListPublishedFn != nil {
		return m.ListPublishedFn(ctx, params)
	}
	return nil, nil
}
func (m *BlogRepositoryMock) ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, params)
	}
	return nil, nil
}
func (m *BlogRepositoryMock) Count(ctx context.Context) (int, error) {
	if m.CountFn != nil {
		return m.CountFn(ctx)
	}
	return 0, nil
}

// ContactRepositoryMock is a lightweight mock for ContactRepository
type ContactRepositoryMock struct {
	CreateFn        func(ctx context.Context, msg *contact.Message) error
	GetByIDFn       func(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	UpdateFn        func(ctx context.Context, msg *contact.Message) error
	SoftDeleteFn    func(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	ListFn          func(ctx context.Context, params domain.ListParams) ([]*contact.Message, error)
	CountByStatusFn func(ctx context.Context, status contact.Status) (int, error)
}

func (m *ContactRepositoryMock) Create(ctx context.Context, msg *contact.Message) error {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, msg)
	}
	return nil
}
func (m *ContactRepositoryMock) GetByID(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactRepositoryMock) Update(ctx context.Context, msg *contact.Message) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, msg)
	}
	return nil
}
func (m *ContactRepositoryMock) SoftDelete(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if m.SoftDeleteFn != nil {
		return m.SoftDeleteFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactRepositoryMock) List(ctx context.Context, params domain.ListParams) ([]*contact.Message, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx, params)
	}
	return nil, nil
}
func (m *ContactRepositoryMock) CountByStatus(ctx context.Context, status contact.Status) (int, error) {
	if m.CountByStatusFn != nil {
		return m.CountByStatusFn(ctx, status)
	}
	return 0, nil
}

// TokenBlacklistMock keeps revoked tokens in memory.
type TokenBlacklistMock struct {
	mu      sync.Mutex
	Revoked map[string]time.Duration
	Err     error
}

func (m *TokenBlacklistMock) Blacklist(ctx context.Context, token string, ttl time.Duration) error {
	if m.Err != nil {
		return m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.Revoked == nil {
		m.Revoked = make(map[string]time.Duration)
	}
	m.Revoked[token] = ttl
	return nil
}
func (m *TokenBlacklistMock) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	if m.Err != nil {
		return false, m.Err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.Revoked[token]
	return ok, nil
}

// EmailServiceMock records the notifications it was asked to send.
type EmailServiceMock struct {
	mu                sync.Mutex
	Err               error
	Confirmations     []*booking.Booking
	Notifications     []*contact.Message
	ContactResponses  []*contact.Message
}

func (m *EmailServiceMock) SendBookingConfirmation(ctx context.Context, b *booking.Booking) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Confirmations = append(m.Confirmations, b)
	return m.Err
}
func (m *EmailServiceMock) SendContactNotification(ctx context.Context, msg *contact.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Notifications = append(m.Notifications, msg)
	return m.Err
}
func (m *EmailServiceMock) SendContactResponse(ctx context.Context, msg *contact.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ContactResponses = append(m.ContactResponses, msg)
	return m.Err
}

// ImageStoreMock is a lightweight mock for ImageStore
type ImageStoreMock struct {
	PutFn    func(ctx context.Context, publicID, contentType string, data []byte) (string, error)
	DeleteFn func(ctx context.Context, publicID string) error
}

func (m *ImageStoreMock) Put(ctx context.Context, publicID, contentType string, data []byte) (string, error) {
	if m.PutFn != nil {
		return m.PutFn(ctx, publicID, contentType, data)
	}
	return "https://cdn.example.com/" + publicID, nil
}
func (m *ImageStoreMock) Delete(ctx context.Context, publicID string) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, publicID)
	}
	return nil
}

// RateLimitRepositoryMock is a lightweight mock for RateLimitRepository
type RateLimitRepositoryMock struct {
	IncrementWindowFn func(ctx context.Context, client string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error)
}

func (m *RateLimitRepositoryMock) IncrementWindow(ctx context.Context, client string, window time.Duration, keyPrefix string, ttl time.Duration) (int, time.Time, error) {
	if m.IncrementWindowFn != nil {
		return m.IncrementWindowFn(ctx, client, window, keyPrefix, ttl)
	}
	return 1, time.Now().Truncate(window), nil
}

// MemoryCache is an in-memory Cache that counts reads and writes.
type MemoryCache struct {
	mu      sync.Mutex
	items   map[string][]byte
	Gets    int
	Sets    int
	Deletes []string
	GetErr  error
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string][]byte)}
}

func (c *MemoryCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Gets++
	if c.GetErr != nil {
		return nil, false, c.GetErr
	}
	v, ok := c.items[key]
	return v, ok, nil
}
func (c *MemoryCache) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Sets++
	c.items[key] = append([]byte(nil), value...)
	return nil
}
func (c *MemoryCache) Delete(ctx context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, k := range keys {
		delete(c.items, k)
		c.Deletes = append(c.Deletes, k)
	}
	return nil
}

// Has reports whether key is currently cached.
func (c *MemoryCache) Has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.items[key]
	return ok
}

// AuthServiceMock is a lightweight mock for AuthService
type AuthServiceMock struct {
	LoginFn         func(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)
	LogoutFn        func(ctx context.Context, token string, claims *auth.Claims) error
	GenerateTokenFn func(u *user.User) (string, error)
}

func (m *AuthServiceMock) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	if m.LoginFn != nil {
		return m.LoginFn(ctx, req)
	}
	return nil, domain.Errorf(domain.ErrUnauthorized, "Invalid credentials")
}
func (m *AuthServiceMock) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	if m.ValidateTokenFn != nil {
		return m.ValidateTokenFn(ctx, token)
	}
	return nil, domain.Errorf(domain.ErrUnauthorized, "Invalid token")
}
func (m *AuthServiceMock) Logout(ctx context.Context, token string, claims *auth.Claims) error {
	if m.LogoutFn != nil {
		return m.LogoutFn(ctx, token, claims)
	}
	return nil
}
func (m *AuthServiceMock) GenerateToken(u *user.User) (string, error) {
	if m.GenerateTokenFn != nil {
		return m.GenerateTokenFn(u)
	}
	return "token", nil
}

// UserServiceMock is a lightweight mock for UserService
type UserServiceMock struct {
	CreateUserFn       func(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
	RegisterFn         func(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
	GetUserFn          func(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateUserFn       func(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error)
	DeleteUserFn       func(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListUsersFn        func(ctx context.Context, params domain.ListParams) ([]*user.User, error)
	EnsureSuperAdminFn func(ctx context.Context, email, password string) error
}

func (m *UserServiceMock) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if m.CreateUserFn != nil {
		return m.CreateUserFn(ctx, req)
	}
	return &user.User{ID: uuid.New(), Email: req.Email, Role: user.RoleUser}, nil
}
func (m *UserServiceMock) Register(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	if m.RegisterFn != nil {
		return m.RegisterFn(ctx, req)
	}
	return &user.User{ID: uuid.New(), Email: req.Email, Role: user.RoleUser}, nil
}
func (m *UserServiceMock) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.GetUserFn != nil {
		return m.GetUserFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *UserServiceMock) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	if m.UpdateUserFn != nil {
		return m.UpdateUserFn(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}
func (m *UserServiceMock) DeleteUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	if m.DeleteUserFn != nil {
		return m.DeleteUserFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *UserServiceMock) ListUsers(ctx context.Context, params domain.ListParams) ([]*user.User, error) {
	if m.ListUsersFn != nil {
		return m.ListUsersFn(ctx, params)
	}
	return []*user.User{}, nil
}
func (m *UserServiceMock) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	if m.EnsureSuperAdminFn != nil {
		return m.EnsureSuperAdminFn(ctx, email, password)
	}
	return nil
}

// CatalogServiceMock is a lightweight mock for CatalogService
type CatalogServiceMock struct {
	CreateServiceFn    func(ctx context.Context, req *catalog.CreateServiceRequest) (*catalog.Service, error)
	GetServiceFn       func(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	GetServiceBySlugFn func(ctx context.Context, slug string) (*catalog.Service, error)
	UpdateServiceFn    func(ctx context.Context, id uuid.UUID, req *catalog.UpdateServiceRequest) (*catalog.Service, error)
	DeleteServiceFn    func(ctx context.Context, id uuid.UUID) (*catalog.Service, error)
	ListServicesFn     func(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error)
	CreateTourFn       func(ctx context.Context, req *catalog.CreateTourRequest) (*catalog.Tour, error)
	GetTourFn          func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	GetTourBySlugFn    func(ctx context.Context, slug string) (*catalog.Tour, error)
	UpdateTourFn       func(ctx context.Context, id uuid.UUID, req *catalog.UpdateTourRequest) (*catalog.Tour, error)
	DeleteTourFn       func(ctx context.Context, id uuid.UUID) (*catalog.Tour, error)
	ListToursFn        func(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error)
}

func (m *CatalogServiceMock) CreateService(ctx context.Context, req *catalog.CreateServiceRequest) (*catalog.Service, error) {
	if m.CreateServiceFn != nil {
		return m.CreateServiceFn(ctx, req)
	}
	return &catalog.Service{ID: uuid.New(), Name: req.Name, Slug: req.Slug}, nil
}
func (m *CatalogServiceMock) GetService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if m.GetServiceFn != nil {
		return m.GetServiceFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) GetServiceBySlug(ctx context.Context, slug string) (*catalog.Service, error) {
	if m.GetServiceBySlugFn != nil {
		return m.GetServiceBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) UpdateService(ctx context.Context, id uuid.UUID, req *catalog.UpdateServiceRequest) (*catalog.Service, error) {
	if m.UpdateServiceFn != nil {
		return m.UpdateServiceFn(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) DeleteService(ctx context.Context, id uuid.UUID) (*catalog.Service, error) {
	if m.DeleteServiceFn != nil {
		return m.DeleteServiceFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) ListServices(ctx context.Context, params domain.ListParams) ([]*catalog.Service, error) {
	if m.ListServicesFn != nil {
		return m.ListServicesFn(ctx, params)
	}
	return []*catalog.Service{}, nil
}
func (m *CatalogServiceMock) CreateTour(ctx context.Context, req *catalog.CreateTourRequest) (*catalog.Tour, error) {
	if m.CreateTourFn != nil {
		return m.CreateTourFn(ctx, req)
	}
	return &catalog.Tour{ID: uuid.New(), Title: req.Title, Slug: req.Slug}, nil
}
func (m *CatalogServiceMock) GetTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	if m.GetTourFn != nil {
		return m.GetTourFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) GetTourBySlug(ctx context.Context, slug string) (*catalog.Tour, error) {
	if m.GetTourBySlugFn != nil {
		return m.GetTourBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) UpdateTour(ctx context.Context, id uuid.UUID, req *catalog.UpdateTourRequest) (*catalog.Tour, error) {
	if m.UpdateTourFn != nil {
		return m.UpdateTourFn(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) DeleteTour(ctx context.Context, id uuid.UUID) (*catalog.Tour, error) {
	if m.DeleteTourFn != nil {
		return m.DeleteTourFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *CatalogServiceMock) ListTours(ctx context.Context, params domain.ListParams) ([]*catalog.Tour, error) {
	if m.ListToursFn != nil {
		return m.ListToursFn(ctx, params)
	}
	return []*catalog.Tour{}, nil
}

// BookingServiceMock is a lightweight mock for BookingService
type BookingServiceMock struct {
	CreateBookingFn         func(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error)
	GetBookingFn            func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	GetBookingByReferenceFn func(ctx context.Context, referenceNo string) (*booking.Booking, error)
	UpdateStatusFn          func(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error)
	DeleteBookingFn         func(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	ListBookingsFn          func(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error)
}

func (m *BookingServiceMock) CreateBooking(ctx context.Context, req *booking.CreateBookingRequest) (*booking.Booking, error) {
	if m.CreateBookingFn != nil {
		return m.CreateBookingFn(ctx, req)
	}
	return &booking.Booking{ID: uuid.New(), TourID: req.TourID, Status: booking.StatusPending}, nil
}
func (m *BookingServiceMock) GetBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if m.GetBookingFn != nil {
		return m.GetBookingFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingServiceMock) GetBookingByReference(ctx context.Context, referenceNo string) (*booking.Booking, error) {
	if m.GetBookingByReferenceFn != nil {
		return m.GetBookingByReferenceFn(ctx, referenceNo)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingServiceMock) UpdateStatus(ctx context.Context, id uuid.UUID, status booking.Status) (*booking.Booking, error) {
	if m.UpdateStatusFn != nil {
		return m.UpdateStatusFn(ctx, id, status)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingServiceMock) DeleteBooking(ctx context.Context, id uuid.UUID) (*booking.Booking, error) {
	if m.DeleteBookingFn != nil {
		return m.DeleteBookingFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BookingServiceMock) ListBookings(ctx context.Context, params domain.ListParams) ([]*booking.Booking, error) {
	if m.ListBookingsFn != nil {
		return m.ListBookingsFn(ctx, params)
	}
	return []*booking.Booking{}, nil
}

// BlogServiceMock is a lightweight mock for BlogService
type BlogServiceMock struct {
	CreatePostFn    func(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error)
	GetPostFn       func(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	GetPostBySlugFn func(ctx context.Context, slug string) (*blog.Post, error)
	UpdatePostFn    func(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error)
	DeletePostFn    func(ctx context.Context, id uuid.UUID) (*blog.Post, error)
	ListPublishedFn func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
	ListAllFn       func(ctx context.Context, params domain.ListParams) ([]*blog.Post, error)
}

func (m *BlogServiceMock) CreatePost(ctx context.Context, req *blog.CreatePostRequest) (*blog.Post, error) {
	if m.CreatePostFn != nil {
		return m.CreatePostFn(ctx, req)
	}
	return &blog.Post{ID: uuid.New(), Title: req.Title}, nil
}
func (m *BlogServiceMock) GetPost(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	if m.GetPostFn != nil {
		return m.GetPostFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogServiceMock) GetPostBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	if m.GetPostBySlugFn != nil {
		return m.GetPostBySlugFn(ctx, slug)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogServiceMock) UpdatePost(ctx context.Context, id uuid.UUID, req *blog.UpdatePostRequest) (*blog.Post, error) {
	if m.UpdatePostFn != nil {
		return m.UpdatePostFn(ctx, id, req)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogServiceMock) DeletePost(ctx context.Context, id uuid.UUID) (*blog.Post, error) {
	if m.DeletePostFn != nil {
		return m.DeletePostFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *BlogServiceMock) ListPublished(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	if m.ListPublishedFn != nil {
		return m.ListPublishedFn(ctx, params)
	}
	return []*blog.Post{}, nil
}
func (m *BlogServiceMock) ListAll(ctx context.Context, params domain.ListParams) ([]*blog.Post, error) {
	if m.ListAllFn != nil {
		return m.ListAllFn(ctx, params)
	}
	return []*blog.Post{}, nil
}

// ContactServiceMock is a lightweight mock for ContactService
type ContactServiceMock struct {
	CreateMessageFn func(ctx context.Context, req *contact.CreateMessageRequest) (*contact.Message, error)
	GetMessageFn    func(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	MarkAsReadFn    func(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	RespondFn       func(ctx context.Context, id uuid.UUID, response string) (*contact.Message, error)
	DeleteMessageFn func(ctx context.Context, id uuid.UUID) (*contact.Message, error)
	ListMessagesFn  func(ctx context.Context, params domain.ListParams) ([]*contact.Message, error)
}

func (m *ContactServiceMock) CreateMessage(ctx context.Context, req *contact.CreateMessageRequest) (*contact.Message, error) {
	if m.CreateMessageFn != nil {
		return m.CreateMessageFn(ctx, req)
	}
	return &contact.Message{ID: uuid.New(), Email: req.Email, Status: contact.StatusNew}, nil
}
func (m *ContactServiceMock) GetMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if m.GetMessageFn != nil {
		return m.GetMessageFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactServiceMock) MarkAsRead(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if m.MarkAsReadFn != nil {
		return m.MarkAsReadFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactServiceMock) Respond(ctx context.Context, id uuid.UUID, response string) (*contact.Message, error) {
	if m.RespondFn != nil {
		return m.RespondFn(ctx, id, response)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactServiceMock) DeleteMessage(ctx context.Context, id uuid.UUID) (*contact.Message, error) {
	if m.DeleteMessageFn != nil {
		return m.DeleteMessageFn(ctx, id)
	}
	return nil, domain.ErrNotFound
}
func (m *ContactServiceMock) ListMessages(ctx context.Context, params domain.ListParams) ([]*contact.Message, error) {
	if m.ListMessagesFn != nil {
		return m.ListMessagesFn(ctx, params)
	}
	return []*contact.Message{}, nil
}

// StatsServiceMock is a lightweight mock for StatsService
type StatsServiceMock struct {
	GetStatsFn func(ctx context.Context) (*admin.Stats, error)
}

func (m *StatsServiceMock) GetStats(ctx context.Context) (*admin.Stats, error) {
	if m.GetStatsFn != nil {
		return m.GetStatsFn(ctx)
	}
	return &admin.Stats{}, nil
}

// UploadServiceMock is a lightweight mock for UploadService
type UploadServiceMock struct {
	UploadImageFn func(ctx context.Context, kind media.Kind, filename, contentType string, data []byte) (*media.Image, error)
	DeleteImageFn func(ctx context.Context, publicID string) error
}

func (m *UploadServiceMock) UploadImage(ctx context.Context, kind media.Kind, filename, contentType string, data []byte) (*media.Image, error) {
	if m.UploadImageFn != nil {
		return m.UploadImageFn(ctx, kind, filename, contentType, data)
	}
	return &media.Image{PublicID: "lexluc/" + kind.Folder() + "/" + filename, Size: int64(len(data))}, nil
}
func (m *UploadServiceMock) DeleteImage(ctx context.Context, publicID string) error {
	if m.DeleteImageFn != nil {
		return m.DeleteImageFn(ctx, publicID)
	}
	return nil
}

// RateLimiterServiceMock is a lightweight mock for RateLimiterService
type RateLimiterServiceMock struct {
	AllowFn func(ctx context.Context, client string) (ports.RateLimitDecision, error)
}

func (m *RateLimiterServiceMock) Allow(ctx context.Context, client string) (ports.RateLimitDecision, error) {
	if m.AllowFn != nil {
		return m.AllowFn(ctx, client)
	}
	return ports.RateLimitDecision{Allowed: true, Limit: 100, Remaining: 99, Reset: time.Now().Add(15 * time.Minute)}, nil
}
