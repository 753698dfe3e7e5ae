package helpers

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

type ctxKey string

const (
	keyUserID    ctxKey = "user_id"
	keyUserRole  ctxKey = "user_role"
	keyUserEmail ctxKey = "user_email"
	keyClaims    ctxKey = "claims"
	keyToken     ctxKey = "token"
)

func SetUserID(c echo.Context, id uuid.UUID) { c.Set(string(keyUserID), id) }
func GetUserIDRaw(c echo.Context) (uuid.UUID, bool) {
	v := c.Get(string(keyUserID))
	id, ok := v.(uuid.UUID)
	return id, ok
}

func SetUserRole(c echo.Context, r user.Role) { c.Set(string(keyUserRole), r) }
func GetUserRoleRaw(c echo.Context) (user.Role, bool) {
	v := c.Get(string(keyUserRole))
	r, ok := v.(user.Role)
	return r, ok
}

func SetUserEmail(c echo.Context, email string) { c.Set(string(keyUserEmail), email) }
func GetUserEmailRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyUserEmail))
	s, ok := v.(string)
	return s, ok
}

func SetClaims(c echo.Context, claims *auth.Claims) { c.Set(string(keyClaims), claims) }
func GetClaimsRaw(c echo.Context) (*auth.Claims, bool) {
	v := c.Get(string(keyClaims))
	cl, ok := v.(*auth.Claims)
	return cl, ok
}

func SetToken(c echo.Context, token string) { c.Set(string(keyToken), token) }
func GetTokenRaw(c echo.Context) (string, bool) {
	v := c.Get(string(keyToken))
	s, ok := v.(string)
	return s, ok && s != ""
}
