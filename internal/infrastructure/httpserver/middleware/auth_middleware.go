package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/domain"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

type JWTMiddleware struct {
	authService ports.AuthService
	logger      *logrus.Logger
}

func NewJWTMiddleware(authService ports.AuthService, logger *logrus.Logger) *JWTMiddleware {
	return &JWTMiddleware{authService: authService, logger: logger}
}

// RequireJWT creates middleware that validates JWT tokens and sets user context
func (m *JWTMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString, err := helpers.GetJWTTokenFromContext(c)
			if err != nil {
				return err
			}

			claims, err := m.authService.ValidateToken(c.Request().Context(), tokenString)
			if err != nil {
				if m.logger != nil {
					m.logger.WithFields(logrus.Fields{"ip": c.RealIP(), "path": c.Request().URL.Path, "error": err.Error()}).Warn("JWT validation failed")
				}
				if errors.Is(err, domain.ErrUnauthorized) {
					return echo.NewHTTPError(http.StatusUnauthorized, err.Error())
				}
				return err
			}

			helpers.SetToken(c, tokenString)
			helpers.SetClaims(c, claims)
			helpers.SetUserID(c, claims.UserID)
			helpers.SetUserRole(c, claims.Role)
			helpers.SetUserEmail(c, claims.Email)

			if m.logger != nil {
				m.logger.WithFields(logrus.Fields{"user_id": claims.UserID, "role": claims.Role}).Debug("jwt validated and user context set")
			}
			return next(c)
		}
	}
}
