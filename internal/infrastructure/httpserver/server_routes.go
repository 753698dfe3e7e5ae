package httpserver

import (
	"github.com/lexluc/lexluc-platform/internal/core/domain/user"
)

var (
	superAdmin     = []user.Role{user.RoleSuperAdmin}
	contentStaff   = []user.Role{user.RoleContentManager, user.RoleSuperAdmin}
	bookingStaff   = []user.Role{user.RoleBookingManager, user.RoleSuperAdmin}
	dashboardStaff = []user.Role{user.RoleSuperAdmin, user.RoleContentManager, user.RoleBookingManager}
)

func (s *Server) setupRoutes() {
	s.echo.GET("/health", s.healthCheck)
	s.echo.GET("/metrics", s.metricsEndpoint)

	api := s.echo.Group("/api")
	api.Use(s.middleware.RateLimit.Handler())
	v1 := api.Group("/v1")

	jwt := s.middleware.JWT.RequireJWT()
	roles := s.middleware.Roles.RequireRoles

	auth := v1.Group("/auth")
	auth.POST("/login", s.login)
	auth.POST("/register", s.register)
	auth.GET("/me", s.me, jwt)
	auth.POST("/logout", s.logout, jwt)

	users := v1.Group("/users", jwt, roles(superAdmin...))
	users.POST("", s.createUser)
	users.GET("", s.listUsers)
	users.GET("/:id", s.getUser)
	users.PATCH("/:id", s.updateUser)
	users.DELETE("/:id", s.deleteUser)

	services := v1.Group("/services")
	services.POST("", s.createService, jwt, roles(contentStaff...))
	services.GET("", s.listServices)
	services.GET("/slug/:slug", s.getServiceBySlug)
	services.GET("/:id", s.getService)
	services.PATCH("/:id", s.updateService, jwt, roles(contentStaff...))
	services.DELETE("/:id", s.deleteService, jwt, roles(contentStaff...))

	tours := v1.Group("/tours")
	tours.POST("", s.createTour, jwt, roles(contentStaff...))
	tours.GET("", s.listTours)
	tours.GET("/slug/:slug", s.getTourBySlug)
	tours.GET("/:id", s.getTour)
	tours.PATCH("/:id", s.updateTour, jwt, roles(contentStaff...))
	tours.DELETE("/:id", s.deleteTour, jwt, roles(contentStaff...))

	bookings := v1.Group("/bookings")
	bookings.POST("", s.createBooking)
	bookings.GET("", s.listBookings, jwt, roles(bookingStaff...))
	bookings.GET("/reference/:referenceNo", s.getBookingByReference)
	bookings.GET("/:id", s.getBooking, jwt, roles(bookingStaff...))
	bookings.PATCH("/:id/status", s.updateBookingStatus, jwt, roles(bookingStaff...))
	bookings.DELETE("/:id", s.deleteBooking, jwt, roles(bookingStaff...))

	blog := v1.Group("/blog")
	blog.POST("", s.createPost, jwt, roles(contentStaff...))
	blog.GET("/public", s.listPublishedPosts)
	blog.GET("/admin", s.listAllPosts, jwt, roles(contentStaff...))
	blog.GET("", s.listPublishedPosts)
	blog.GET("/slug/:slug", s.getPostBySlug)
	blog.GET("/:id", s.getPost)
	blog.PATCH("/:id", s.updatePost, jwt, roles(contentStaff...))
	blog.DELETE("/:id", s.deletePost, jwt, roles(contentStaff...))

	contacts := v1.Group("/contacts")
	contacts.POST("", s.createContact)
	contacts.GET("", s.listContacts, jwt, roles(bookingStaff...))
	contacts.GET("/:id", s.getContact, jwt, roles(bookingStaff...))
	contacts.PATCH("/:id/read", s.markContactRead, jwt, roles(bookingStaff...))
	contacts.PATCH("/:id/respond", s.respondToContact, jwt, roles(bookingStaff...))
	contacts.DELETE("/:id", s.deleteContact, jwt, roles(superAdmin...))

	v1.GET("/admin/stats", s.getStats, jwt, roles(dashboardStaff...))

	uploads := v1.Group("/uploads", jwt, roles(dashboardStaff...))
	uploads.POST("/:kind", s.uploadImage)
	uploads.DELETE("/image/*", s.deleteImage)
}
