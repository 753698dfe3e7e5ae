package services_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	config "github.com/lexluc/lexluc-platform/configs"
	impl "github.com/lexluc/lexluc-platform/internal/application/services"
	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/utils"
	"github.com/lexluc/lexluc-platform/test/mocks"
)

func quietLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func activeUser(t *testing.T, password string) *user.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	return &user.User{ID: uuid.New(), Email: "ada@lexlucglobal.ng", PasswordHash: hash, Role: user.RoleContentManager, IsActive: true}
}

func requireKind(t *testing.T, err error, kind error, msg string) {
	t.Helper()
	require.Error(t, err)
	require.ErrorIs(t, err, kind)
	if msg != "" {
		assert.Equal(t, msg, err.Error())
	}
}

func TestLogin_IssuesTokenThatValidates(t *testing.T) {
	u := activeUser(t, "secret1")
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		if email == u.Email {
			return u, nil
		}
		return nil, domain.ErrNotFound
	}}
	svc := impl.NewAuthService(repo, &mocks.TokenBlacklistMock{}, &config.JWTConfig{Secret: "s3cret", AccessTokenTTL: time.Hour}, quietLogger())

	res, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "secret1"})
	require.NoError(t, err)
	require.NotEmpty(t, res.AccessToken)
	assert.Equal(t, u.ID, res.User.ID)

	claims, err := svc.ValidateToken(context.Background(), res.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, u.ID, claims.UserID)
	assert.Equal(t, user.RoleContentManager, claims.Role)
	assert.Equal(t, u.ID.String(), claims.Subject)
}

func TestLogin_RejectsBadCredentials(t *testing.T) {
	u := activeUser(t, "secret1")
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) {
		if email == u.Email {
			return u, nil
		}
		return nil, domain.ErrNotFound
	}}
	svc := impl.NewAuthService(repo, nil, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Hour}, quietLogger())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "wrong-pass"})
	requireKind(t, err, domain.ErrUnauthorized, "Invalid credentials")

	_, err = svc.Login(context.Background(), &auth.LoginRequest{Email: "nobody@x.io", Password: "secret1"})
	requireKind(t, err, domain.ErrUnauthorized, "Invalid credentials")

	u.IsActive = false
	_, err = svc.Login(context.Background(), &auth.LoginRequest{Email: u.Email, Password: "secret1"})
	requireKind(t, err, domain.ErrUnauthorized, "User account is disabled")
}

func TestLogin_RepositoryFailurePassesThrough(t *testing.T) {
	boom := errors.New("db down")
	repo := &mocks.UserRepositoryMock{GetByEmailFn: func(ctx context.Context, email string) (*user.User, error) { return nil, boom }}
	svc := impl.NewAuthService(repo, nil, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Hour}, quietLogger())

	_, err := svc.Login(context.Background(), &auth.LoginRequest{Email: "a@b.co", Password: "secret1"})
	require.ErrorIs(t, err, boom)
}

func TestValidateToken_Failures(t *testing.T) {
	u := activeUser(t, "secret1")
	cfg := &config.JWTConfig{Secret: "s3cret", AccessTokenTTL: time.Hour}
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, nil, cfg, quietLogger())

	_, err := svc.ValidateToken(context.Background(), "not-a-jwt")
	requireKind(t, err, domain.ErrUnauthorized, "Invalid token")

	other := impl.NewAuthService(&mocks.UserRepositoryMock{}, nil, &config.JWTConfig{Secret: "other", AccessTokenTTL: time.Hour}, quietLogger())
	foreign, err := other.GenerateToken(u)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), foreign)
	requireKind(t, err, domain.ErrUnauthorized, "Invalid token")

	expiredSvc := impl.NewAuthService(&mocks.UserRepositoryMock{}, nil, &config.JWTConfig{Secret: "s3cret", AccessTokenTTL: -time.Minute}, quietLogger())
	expired, err := expiredSvc.GenerateToken(u)
	require.NoError(t, err)
	_, err = svc.ValidateToken(context.Background(), expired)
	requireKind(t, err, domain.ErrUnauthorized, "Token has expired")
}

func TestLogout_RevokesForRemainingLifetime(t *testing.T) {
	u := activeUser(t, "secret1")
	blacklist := &mocks.TokenBlacklistMock{}
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, blacklist, &config.JWTConfig{Secret: "s3cret", AccessTokenTTL: time.Hour}, quietLogger())

	token, err := svc.GenerateToken(u)
	require.NoError(t, err)
	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), token, claims))
	ttl, ok := blacklist.Revoked[token]
	require.True(t, ok)
	assert.Greater(t, ttl, 59*time.Minute)
	assert.LessOrEqual(t, ttl, time.Hour)

	_, err = svc.ValidateToken(context.Background(), token)
	requireKind(t, err, domain.ErrUnauthorized, "Token has been revoked")
}

func TestLogout_WithoutBlacklistIsNoop(t *testing.T) {
	svc := impl.NewAuthService(&mocks.UserRepositoryMock{}, nil, &config.JWTConfig{Secret: "s", AccessTokenTTL: time.Hour}, quietLogger())
	require.NoError(t, svc.Logout(context.Background(), "tok", nil))
}
