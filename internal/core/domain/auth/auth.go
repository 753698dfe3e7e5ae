package auth

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	return validation.ValidateStruct(r,
		validation.Field(&r.Email, validation.Required, is.EmailFormat),
		validation.Field(&r.Password, validation.Required),
	)
}

// LoginResponse is what the site and admin console store after login.
type LoginResponse struct {
	AccessToken string     `json:"access_token"`
	User        *user.User `json:"user"`
}

// Claims carried by access tokens. The subject is the user id.
type Claims struct {
	UserID uuid.UUID `json:"uid"`
	Email  string    `json:"email"`
	Role   user.Role `json:"role"`

	jwt.RegisteredClaims
}
