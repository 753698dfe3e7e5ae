package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/contact"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createContact(c echo.Context) error {
	var req contact.CreateMessageRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	m, err := s.contactSvc.CreateMessage(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, m)
}

func (s *Server) listContacts(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	list, err := s.contactSvc.ListMessages(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getContact(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	m, err := s.contactSvc.GetMessage(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) markContactRead(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	m, err := s.contactSvc.MarkAsRead(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) respondToContact(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req contact.RespondRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	m, err := s.contactSvc.Respond(c.Request().Context(), id, req.Response)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}

func (s *Server) deleteContact(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	m, err := s.contactSvc.DeleteMessage(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, m)
}
