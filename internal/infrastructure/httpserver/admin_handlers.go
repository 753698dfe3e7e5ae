package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func (s *Server) getStats(c echo.Context) error {
	stats, err := s.statsSvc.GetStats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}
