package httpserver

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"

	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/helpers"
	customMiddleware "github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver/middleware"
)

type ServerConfig struct {
	Host           string
	Port           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	TLSCertFile    string
	TLSKeyFile     string
	AllowedOrigins []string
	Environment    string
	// BodyLimit caps request bodies, e.g. "6M". Empty disables the limit.
	BodyLimit string
}

type ServerDeps struct {
	UserService        ports.UserService
	AuthService        ports.AuthService
	CatalogService     ports.CatalogService
	BookingService     ports.BookingService
	BlogService        ports.BlogService
	ContactService     ports.ContactService
	StatsService       ports.StatsService
	UploadService      ports.UploadService
	RateLimiterService ports.RateLimiterService
	HealthCheckers     []ports.HealthChecker
}

type Server struct {
	echo           *echo.Echo
	config         *ServerConfig
	logger         *logrus.Logger
	userService    ports.UserService
	authSvc        ports.AuthService
	catalogSvc     ports.CatalogService
	bookingSvc     ports.BookingService
	blogSvc        ports.BlogService
	contactSvc     ports.ContactService
	statsSvc       ports.StatsService
	uploadSvc      ports.UploadService
	middleware     *customMiddleware.MiddlewareCollection
	healthCheckers []ports.HealthChecker
}

func NewServer(serverConfig *ServerConfig, logger *logrus.Logger, deps ServerDeps) *Server {
	e := echo.New()
	e.HideBanner = true
	e.Validator = helpers.Validator{}
	e.HTTPErrorHandler = helpers.ErrorHandler(logger)

	server := &Server{
		echo:           e,
		config:         serverConfig,
		logger:         logger,
		userService:    deps.UserService,
		authSvc:        deps.AuthService,
		catalogSvc:     deps.CatalogService,
		bookingSvc:     deps.BookingService,
		blogSvc:        deps.BlogService,
		contactSvc:     deps.ContactService,
		statsSvc:       deps.StatsService,
		uploadSvc:      deps.UploadService,
		healthCheckers: deps.HealthCheckers,
		middleware: customMiddleware.NewMiddlewareCollection(
			deps.AuthService,
			deps.RateLimiterService,
			logger,
			GetRequestsTotal(),
			GetRequestDuration(),
		),
	}

	server.setupMiddleware()
	server.setupRoutes()

	return server
}
