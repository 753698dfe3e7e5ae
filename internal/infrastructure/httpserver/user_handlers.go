package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

// User handlers
func (s *Server) createUser(c echo.Context) error {
	var req user.CreateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	created, err := s.userService.CreateUser(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, created)
}

func (s *Server) listUsers(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	users, err := s.userService.ListUsers(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

func (s *Server) getUser(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	u, err := s.userService.GetUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) updateUser(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req user.UpdateUserRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	u, err := s.userService.UpdateUser(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

func (s *Server) deleteUser(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	u, err := s.userService.DeleteUser(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}
