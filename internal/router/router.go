package router

import (
	"context"
	"net/http"

	"laundry_service/internal/handler"
	"laundry_service/internal/middleware"
	"laundry_service/internal/service"
	"laundry_service/internal/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Deps is everything the HTTP layer needs from the rest of the application.
type Deps struct {
	AuthService    service.AuthService
	BookingService service.BookingService
	CatalogService service.CatalogService
	Sessions       *session.Store
	Logger         *zap.Logger
	CORSOrigin     string
	// HealthCheck reports storage health for /health; nil means always healthy.
	HealthCheck func(ctx context.Context) error
}

// New builds the gin engine with middleware and all routes registered.
func New(d Deps) *gin.Engine {
	router := gin.New()
	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestLogger(d.Logger),
	)
	if d.CORSOrigin != "" {
		router.Use(middleware.CORS(d.CORSOrigin))
	}
	router.Use(middleware.SessionMiddleware(d.Sessions))

	authHandler := handler.NewAuthHandler(d.AuthService)
	bookingHandler := handler.NewBookingHandler(d.BookingService)
	catalogHandler := handler.NewCatalogHandler(d.CatalogService)

	apiGroup := router.Group("/api")
	authHandler.RegisterAuthRoutes(apiGroup)
	bookingHandler.RegisterBookingRoutes(apiGroup, middleware.RequireCustomer())
	catalogHandler.RegisterCatalogRoutes(apiGroup)

	router.GET("/health", func(c *gin.Context) {
		if d.HealthCheck != nil {
			if err := d.HealthCheck(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "error", "db": "unhealthy"})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "db": "healthy"})
	})

	return router
}
