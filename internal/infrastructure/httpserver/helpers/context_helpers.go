package helpers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

func GetUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	id, ok := GetUserIDRaw(c)
	if !ok {
		return uuid.Nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid user context")
	}
	return id, nil
}

func GetUserRoleFromContext(c echo.Context) (user.Role, error) {
	r, ok := GetUserRoleRaw(c)
	if !ok {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid role context")
	}
	return r, nil
}

func GetClaimsFromContext(c echo.Context) (*auth.Claims, error) {
	cl, ok := GetClaimsRaw(c)
	if !ok || cl == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token context")
	}
	return cl, nil
}

func GetJWTTokenFromContext(c echo.Context) (string, error) {
	if token, ok := GetTokenRaw(c); ok {
		return token, nil
	}
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}
	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header format")
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "empty token")
	}
	return token, nil
}

// ParseID reads a UUID path parameter.
func ParseID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// ListParamsFromQuery reads the optional page and limit query parameters.
// Neither given means the whole list.
func ListParamsFromQuery(c echo.Context) (domain.ListParams, error) {
	var params domain.ListParams
	for name, dst := range map[string]*int{"page": &params.Page, "limit": &params.Limit} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			return params, echo.NewHTTPError(http.StatusBadRequest, name+" must be a positive integer")
		}
		*dst = n
	}
	return params, nil
}
