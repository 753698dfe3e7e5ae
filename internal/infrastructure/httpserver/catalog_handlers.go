package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/lexluc/lexluc-platform/internal/core/domain/catalog"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
)

func (s *Server) createService(c echo.Context) error {
	var req catalog.CreateServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	svc, err := s.catalogSvc.CreateService(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, svc)
}

func (s *Server) listServices(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	list, err := s.catalogSvc.ListServices(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getService(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	svc, err := s.catalogSvc.GetService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) getServiceBySlug(c echo.Context) error {
	svc, err := s.catalogSvc.GetServiceBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) updateService(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req catalog.UpdateServiceRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	svc, err := s.catalogSvc.UpdateService(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) deleteService(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	svc, err := s.catalogSvc.DeleteService(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, svc)
}

func (s *Server) createTour(c echo.Context) error {
	var req catalog.CreateTourRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tour, err := s.catalogSvc.CreateTour(c.Request().Context(), &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, tour)
}

func (s *Server) listTours(c echo.Context) error {
	params, err := helpers.ListParamsFromQuery(c)
	if err != nil {
		return err
	}

	list, err := s.catalogSvc.ListTours(c.Request().Context(), params)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, list)
}

func (s *Server) getTour(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	tour, err := s.catalogSvc.GetTour(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

func (s *Server) getTourBySlug(c echo.Context) error {
	tour, err := s.catalogSvc.GetTourBySlug(c.Request().Context(), c.Param("slug"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

func (s *Server) updateTour(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	var req catalog.UpdateTourRequest
	if err := bind(c, &req); err != nil {
		return err
	}

	tour, err := s.catalogSvc.UpdateTour(c.Request().Context(), id, &req)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}

func (s *Server) deleteTour(c echo.Context) error {
	id, err := helpers.ParseID(c, "id")
	if err != nil {
		return err
	}

	tour, err := s.catalogSvc.DeleteTour(c.Request().Context(), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tour)
}
