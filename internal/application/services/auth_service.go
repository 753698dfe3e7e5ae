package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"

	config "github.com/lexluc/lexluc-platform/configs"
	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/utils"
)

var errInvalidCredentials = domain.Errorf(domain.ErrUnauthorized, "Invalid credentials")

type AuthService struct {
	userRepo  ports.UserRepository
	blacklist ports.TokenBlacklist
	jwtConfig *config.JWTConfig
	logger    *logrus.Logger
	now       func() time.Time
}

// NewAuthService wires token issuing and verification. blacklist may be nil,
// in which case logout is a no-op on the server side.
func NewAuthService(userRepo ports.UserRepository, blacklist ports.TokenBlacklist, jwtConfig *config.JWTConfig, logger *logrus.Logger) ports.AuthService {
	return &AuthService{
		userRepo:  userRepo,
		blacklist: blacklist,
		jwtConfig: jwtConfig,
		logger:    logger,
		now:       time.Now,
	}
}

func (s *AuthService) Login(ctx context.Context, req *auth.LoginRequest) (*auth.LoginResponse, error) {
	foundUser, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, errInvalidCredentials
		}
		return nil, err
	}

	ok, err := utils.CheckPassword(foundUser.PasswordHash, req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to verify password: %w", err)
	}
	if !ok {
		s.logger.WithField("user_id", foundUser.ID).Info("auth: login rejected, wrong password")
		return nil, errInvalidCredentials
	}

	if !foundUser.IsActive {
		return nil, domain.Errorf(domain.ErrUnauthorized, "User account is disabled")
	}

	token, err := s.GenerateToken(foundUser)
	if err != nil {
		return nil, err
	}

	s.logger.WithFields(logrus.Fields{"user_id": foundUser.ID, "role": foundUser.Role}).Info("auth: user logged in")
	return &auth.LoginResponse{AccessToken: token, User: foundUser}, nil
}

func (s *AuthService) GenerateToken(u *user.User) (string, error) {
	now := s.now()
	claims := &auth.Claims{
		UserID: u.ID,
		Email:  u.Email,
		Role:   u.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   u.ID.String(),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.jwtConfig.AccessTokenTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtConfig.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to generate access token: %w", err)
	}
	return token, nil
}

func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &auth.Claims{}, func(token *jwt.Token) (interface{}, error) {
		// Ensure the token's signing method is HMAC (prevent alg confusion)
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.jwtConfig.Secret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.Errorf(domain.ErrUnauthorized, "Token has expired")
		}
		return nil, domain.Errorf(domain.ErrUnauthorized, "Invalid token")
	}

	claims, ok := token.Claims.(*auth.Claims)
	if !ok || !token.Valid {
		return nil, domain.Errorf(domain.ErrUnauthorized, "Invalid token")
	}

	if s.blacklist != nil {
		revoked, err := s.blacklist.IsBlacklisted(ctx, tokenString)
		if err != nil {
			return nil, err
		}
		if revoked {
			return nil, domain.Errorf(domain.ErrUnauthorized, "Token has been revoked")
		}
	}

	return claims, nil
}

// Logout revokes token for the rest of its lifetime.
func (s *AuthService) Logout(ctx context.Context, token string, claims *auth.Claims) error {
	if s.blacklist == nil {
		return nil
	}
	ttl := s.jwtConfig.AccessTokenTTL
	if claims != nil && claims.ExpiresAt != nil {
		ttl = claims.ExpiresAt.Sub(s.now())
	}
	if err := s.blacklist.Blacklist(ctx, token, ttl); err != nil {
		return err
	}
	if claims != nil {
		s.logger.WithField("user_id", claims.UserID).Info("auth: user logged out")
	}
	return nil
}
