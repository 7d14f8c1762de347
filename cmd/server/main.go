package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"laundry_service/internal/config"
	"laundry_service/internal/repository"
	"laundry_service/internal/router"
	"laundry_service/internal/service"
	"laundry_service/internal/session"
	"laundry_service/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading, relying on environment variables")
	}

	// --- Configuration ---
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogDev)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Database Connection ---
	dbPool, err := config.ConnectDB(ctx, cfg.DSN(), logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer dbPool.Close()

	// --- Auto Migration ---
	if err := config.AutoMigrate(ctx, dbPool, logger); err != nil {
		logger.Fatal("failed to auto-migrate database", zap.Error(err))
	}

	// --- Initialize Repositories ---
	customerRepo := repository.NewCustomerRepository(dbPool)
	bookingRepo := repository.NewBookingRepository(dbPool)
	catalogRepo := repository.NewCatalogRepository(dbPool)

	// --- Initialize Services ---
	authService := service.NewAuthService(customerRepo, logger)
	bookingService := service.NewBookingService(bookingRepo)
	catalogService := service.NewCatalogService(catalogRepo, logger)

	if err := catalogService.SeedDefaults(ctx); err != nil {
		logger.Fatal("failed to seed catalog", zap.Error(err))
	}

	// --- Sessions ---
	sessions := session.NewStore(
		session.NewCodec(cfg.SessionSecret, cfg.SessionTTL()),
		session.CookieOptions{Name: cfg.SessionCookieName, Secure: cfg.SessionCookieSecure},
	)

	// --- Setup Gin Router ---
	gin.SetMode(cfg.GinMode)
	engine := router.New(router.Deps{
		AuthService:    authService,
		BookingService: bookingService,
		CatalogService: catalogService,
		Sessions:       sessions,
		Logger:         logger,
		CORSOrigin:     cfg.CORSOrigin,
		HealthCheck:    dbPool.Ping,
	})

	// --- Start Server ---
	srv := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: engine,
	}

	go func() {
		logger.Info("server starting", zap.String("port", cfg.ServerPort))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("listen", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	<-ctx.Done()
	logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exiting")
}
