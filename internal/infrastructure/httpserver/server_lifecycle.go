package httpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Start blocks until the server stops. A graceful Shutdown is not an error.
func (s *Server) Start() error {
	s.LogMetricsInitialization()

	addr := fmt.Sprintf("%s:%s", s.config.Host, s.config.Port)

	server := &http.Server{
		Addr:         addr,
		ReadTimeout:  s.config.ReadTimeout,
		WriteTimeout: s.config.WriteTimeout,
		IdleTimeout:  s.config.IdleTimeout,
	}

	var err error
	if s.config.TLSCertFile != "" && s.config.TLSKeyFile != "" {
		s.logger.Infof("Starting HTTPS server on %s", addr)
		err = s.echo.StartTLS(addr, s.config.TLSCertFile, s.config.TLSKeyFile)
	} else {
		s.logger.Infof("Starting HTTP server on %s", addr)
		if s.config.Environment == "production" {
			s.logger.Warn("Running in HTTP mode - TLS certificates not configured")
		}
		err = s.echo.StartServer(server)
	}
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) Echo() *echo.Echo {
	return s.echo
}
