package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

// UserRepository defines the interface for user data operations
type UserRepository interface {
	Create(ctx context.Context, user *user.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*user.User, error)
	GetByEmail(ctx context.Context, email string) (*user.User, error)
	Update(ctx context.Context, user *user.User) error
	SoftDelete(ctx context.Context, id uuid.UUID) (*user.User, error)
	List(ctx context.Context, params domain.ListParams) ([]*user.User, error)
	Count(ctx context.Context) (int, error)
}

// UserService defines the interface for user business logic
type UserService interface {
	CreateUser(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
	Register(ctx context.Context, req *user.CreateUserRequest) (*user.User, error)
	GetUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	UpdateUser(ctx context.Context, id uuid.UUID, req *user.UpdateUserRequest) (*user.User, error)
	DeleteUser(ctx context.Context, id uuid.UUID) (*user.User, error)
	ListUsers(ctx context.Context, params domain.ListParams) ([]*user.User, error)
	// EnsureSuperAdmin seeds the first administrator on an empty install.
	EnsureSuperAdmin(ctx context.Context, email, password string) error
}
