package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

// RoleMiddleware gates routes on the role carried in the access token.
// It must run after RequireJWT.
type RoleMiddleware struct {
	logger *logrus.Logger
}

func NewRoleMiddleware(logger *logrus.Logger) *RoleMiddleware {
	return &RoleMiddleware{logger: logger}
}

func (m *RoleMiddleware) RequireRoles(roles ...user.Role) echo.MiddlewareFunc {
	allowed := make(map[user.Role]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, err := helpers.GetUserRoleFromContext(c)
			if err != nil {
				return err
			}
			if _, ok := allowed[role]; !ok {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"role": role, "path": c.Path()}).Debug("role not allowed")
				}
				return echo.NewHTTPError(http.StatusForbidden, "Forbidden resource")
			}
			return next(c)
		}
	}
}
