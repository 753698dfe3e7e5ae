package ports

import (
	"context"
	"time"

	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

// AuthService defines the interface for authentication operations
type AuthService interface {
	Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error)
	ValidateToken(ctx context.Context, token string) (*auth.Claims, error)
	Logout(ctx context.Context, token string, claims *auth.Claims) error
	GenerateToken(user *user.User) (string, error)
}

// TokenBlacklist remembers revoked tokens until they would have expired anyway.
type TokenBlacklist interface {
	Blacklist(ctx context.Context, token string, ttl time.Duration) error
	IsBlacklisted(ctx context.Context, token string) (bool, error)
}
