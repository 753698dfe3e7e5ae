package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"

	config "github.com/lexluc/lexluc-platform/configs"
	"github.com/lexluc/lexluc-platform/internal/application/services"
	"github.com/lexluc/lexluc-platform/internal/core/ports"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/db"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/email"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/health"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/httpserver"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/redis"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/repositories"
	"github.com/lexluc/lexluc-platform/internal/infrastructure/storage"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.WithField("environment", cfg.Server.Environment).Info("Starting Lexluc API...")

	// Initialize database (apply pool settings from config)
	database, err := db.NewDatabaseWithConfig(&cfg.Database)
	if err != nil {
		logger.Fatal("Failed to connect to database:", err)
	}
	logger.Info("Connected to database successfully")

	if err := database.Migrate(cfg.Server.MigrationsPath); err != nil {
		logger.Fatal("Failed to run migrations:", err)
	}

	// Initialize Redis client
	redisClient, err := redis.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Fatal("Failed to connect to Redis:", err)
	}
	logger.Info("Connected to Redis successfully")

	redisCache := redis.NewRedisCache(redisClient, cfg.Cache.Prefix)
	blacklist := repositories.NewTokenBlacklistRepository(redisClient, logger)
	rateLimitRepo := repositories.NewRateLimitRedisRepository(redisClient)

	// Database repositories; public catalog and blog reads go through the cache.
	userRepo := repositories.NewUserRepository(database, logger)
	serviceRepo := repositories.NewCachingServiceRepository(repositories.NewServiceRepository(database, logger), redisCache, cfg.Cache.CatalogTTL)
	tourRepo := repositories.NewCachingTourRepository(repositories.NewTourRepository(database, logger), redisCache, cfg.Cache.CatalogTTL)
	blogRepo := repositories.NewCachingBlogRepository(repositories.NewBlogRepository(database, logger), redisCache, cfg.Cache.BlogTTL)
	bookingRepo := repositories.NewBookingRepository(database, logger)
	contactRepo := repositories.NewContactRepository(database, logger)

	var emailService ports.EmailService
	if cfg.Email.Enabled {
		emailService, err = email.NewEmailService(&email.EmailConfig{
			SendGridAPIKey: cfg.Email.SendGridAPIKey,
			FromEmail:      cfg.Email.FromEmail,
			FromName:       cfg.Email.FromName,
			AdminEmail:     cfg.Email.AdminEmail,
			CompanyName:    cfg.Email.CompanyName,
			SiteURL:        cfg.Email.SiteURL,
		}, logger)
		if err != nil {
			logger.Fatal("Failed to initialize email service:", err)
		}
	} else {
		logger.Warn("Email delivery disabled; notifications will only be logged")
		emailService = email.NewNoopEmailService(logger)
	}

	s3Client, err := storage.NewS3Client(context.Background(), &cfg.Storage)
	if err != nil {
		logger.Fatal("Failed to initialize object storage:", err)
	}
	imageStore := storage.NewS3ImageStore(s3Client, &cfg.Storage, logger)

	userService := services.NewUserService(userRepo, logger)
	authService := services.NewAuthService(userRepo, blacklist, &cfg.JWT, logger)
	catalogService := services.NewCatalogService(serviceRepo, tourRepo, logger)
	bookingService := services.NewBookingService(bookingRepo, tourRepo, emailService, logger)
	blogService := services.NewBlogService(blogRepo, logger)
	contactService := services.NewContactService(contactRepo, emailService, logger)
	statsService := services.NewStatsService(userRepo, serviceRepo, tourRepo, bookingRepo, blogRepo, contactRepo)
	uploadService := services.NewUploadService(imageStore, cfg.Storage.Folder, cfg.Storage.MaxUploadBytes, logger)
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, &services.RateLimiterConfig{
		Requests:  cfg.RateLimit.Requests,
		Window:    cfg.RateLimit.Window,
		KeyPrefix: cfg.RateLimit.KeyPrefix,
	}, logger)

	if cfg.Seed.AdminPassword != "" {
		seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := userService.EnsureSuperAdmin(seedCtx, cfg.Seed.AdminEmail, cfg.Seed.AdminPassword); err != nil {
			logger.WithError(err).Error("Failed to seed super admin")
		}
		cancel()
	}

	hcSlice := []ports.HealthChecker{
		health.NewDBHealthChecker(database),
		health.NewRedisHealthChecker(redisClient),
		health.NewStorageHealthChecker(imageStore),
	}

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
		Environment:    cfg.Server.Environment,
		BodyLimit:      "6M",
	}

	server := httpserver.NewServer(serverConfig, logger, httpserver.ServerDeps{
		UserService:        userService,
		AuthService:        authService,
		CatalogService:     catalogService,
		BookingService:     bookingService,
		BlogService:        blogService,
		ContactService:     contactService,
		StatsService:       statsService,
		UploadService:      uploadService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
	})

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var result *multierror.Error
	if err := server.Shutdown(ctx); err != nil {
		result = multierror.Append(result, err)
	}
	if err := redisClient.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := database.Close(); err != nil {
		result = multierror.Append(result, err)
	}
	if err := result.ErrorOrNil(); err != nil {
		logger.WithError(err).Error("Unclean shutdown")
		os.Exit(1)
	}

	logger.Info("Server exited")
}
