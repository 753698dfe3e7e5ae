package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/utils"
)

type UserService struct {
	repo   ports.UserRepository
	logger *logrus.Logger
}

func NewUserService(repo ports.UserRepository, logger *logrus.Logger) ports.UserService {
	return &UserService{repo: repo, logger: logger}
}

// CreateUser is the admin path; the role defaults to USER.
func (s *UserService) CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	role := user.RoleUser
	if req.Role != nil {
		role = *req.Role
	}
	return s.create(ctx, req, role)
}

// Register is the public path and ignores any requested role.
func (s *UserService) Register(ctx context.Context, req *user.CreateUserRequest) (*user.User, error) {
	return s.create(ctx, req, user.RoleUser)
}

func (s *UserService) create(ctx context.Context, req *user.CreateUserRequest, role user.Role) (*user.User, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))

	// Validate email uniqueness
	if existing, err := s.repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, domain.Errorf(domain.ErrConflict, "Email '%s' is already registered", email)
	} else if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, utils.ErrPasswordTooShort) {
			return nil, domain.Errorf(domain.ErrInvalidInput, "%s", err.Error())
		}
		return nil, err
	}

	now := time.Now()
	newUser := &user.User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Role:         role,
		IsActive:     true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(ctx, newUser); err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": newUser.ID, "role": role}).Info("user created")
	return newUser, nil
}

func (s *UserService) GetUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error) {
	u, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		u.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		u.LastName = *req.LastName
	}
	if req.Phone != nil {
		u.Phone = req.Phone
	}
	if req.Role != nil {
		u.Role = *req.Role
	}
	if req.IsActive != nil {
		u.IsActive = *req.IsActive
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			return nil, domain.Errorf(domain.ErrInvalidInput, "%s", err.Error())
		}
		u.PasswordHash = hash
	}
	u.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) DeleteUser(ctx context.Context, id uuid.UUID) (*user.User, error) {
	return s.repo.SoftDelete(ctx, id)
}

func (s *UserService) ListUsers(ctx context.Context, params domain.ListParams) ([]*user.User, error) {
	return s.repo.List(ctx, params)
}

// EnsureSuperAdmin creates the first SUPER_ADMIN account unless email is
// already registered.
func (s *UserService) EnsureSuperAdmin(ctx context.Context, email, password string) error {
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, domain.ErrNotFound) {
		return err
	}

	role := user.RoleSuperAdmin
	_, err := s.create(ctx, &user.CreateUserRequest{
		Email:     email,
		Password:  password,
		FirstName: "Site",
		LastName:  "Administrator",
		Role:      &role,
	}, role)
	if err != nil {
		return fmt.Errorf("failed to seed super admin: %w", err)
	}
	s.logger.WithField("email", email).Info("seeded super admin account")
	return nil
}
