package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/auth"
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

// bind decodes the body and runs the DTO's validation rules.
func bind(c echo.Context, dst any) error {
	if err := c.Bind(dst); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.Validate(dst)
}

// Auth handlers
func (s *Server) login(c echo.Context) error {
	var req auth.LoginRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	resp, err := s.authSvc.Login(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, resp)
}

func (s *Server) register(c echo.Context) error {
	var req user.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := s.userService.Register(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) me(c echo.Context) error {
	userID, err := helpers.GetUserIDFromContext(c)
	if err != nil {
		return err
	}

	u, err := s.userService.GetUser(c.Request().Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) logout(c echo.Context) error {
	token, err := helpers.GetJWTTokenFromContext(c)
	if err != nil {
		return err
	}
	claims, err := helpers.GetClaimsFromContext(c)
	if err != nil {
		return err
	}

	if err := s.authSvc.Logout(c.Request().Context(), token, claims); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, map[string]string{"message": "Logged out successfully"})
}
