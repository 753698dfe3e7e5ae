package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4/middleware"
)

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestID())
	s.echo.Use(middleware.Secure())
	s.echo.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     s.allowedOrigins(),
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders:     []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))
	if s.config.BodyLimit != "" {
		s.echo.Use(middleware.BodyLimit(s.config.BodyLimit))
	}

	s.echo.Use(s.middleware.Metrics.CollectHTTPMetrics())
	s.echo.Use(s.middleware.Logging.RequestLogging())
}

func (s *Server) allowedOrigins() []string {
	if len(s.config.AllowedOrigins) == 0 {
		return []string{"http://localhost:3000"}
	}
	return s.config.AllowedOrigins
}
