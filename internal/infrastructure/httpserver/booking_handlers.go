package httpserver

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/booking"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createBooking(c echo.Context) error {
	var req booking.CreateBookingRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	b, err := s.bookingSvc.CreateBooking(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, b)
}

func (s *Server) listBookings(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	list, err := s.bookingSvc.ListBookings(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getBookingByReference(c echo.Context) error {
	b, err := s.bookingSvc.GetBookingByReference(c.Request().Context(), c.Param("referenceNo"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) getBooking(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	b, err := s.bookingSvc.GetBooking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

// updateBookingStatus takes the new status from the "status" query parameter.
func (s *Server) updateBookingStatus(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	status := booking.Status(strings.ToUpper(strings.TrimSpace(c.QueryParam("status"))))
	b, err := s.bookingSvc.UpdateStatus(c.Request().Context(), id, status)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}

func (s *Server) deleteBooking(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	b, err := s.bookingSvc.DeleteBooking(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, b)
}
