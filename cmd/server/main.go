package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	httpapi "car-rental-backend/internal/api/http"
	"car-rental-backend/internal/cache"
	"car-rental-backend/internal/config"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository/postgres"
	"car-rental-backend/internal/security"
	"car-rental-backend/internal/service"
	"car-rental-backend/internal/session"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Local development convenience; a missing .env is fine.
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)
	sessions := session.NewMemoryStore()

	// Optional vehicle-listing cache
	var listingCache cache.Cache
	if cfg.Redis.Addr != "" {
		listingCache = cache.NewRedisCache(cfg.Redis.Addr, "car-rental")
		logger.Info("Vehicle listing cache enabled", "addr", cfg.Redis.Addr, "ttl_seconds", cfg.Redis.TTLSeconds)
	} else {
		logger.Info("Vehicle listing cache disabled")
	}

	// Optional delivery channels
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	} else {
		logger.Info("Email delivery disabled: no SendGrid API key configured")
	}

	var pushSvc service.PushService
	if cfg.Push.CredentialsFile != "" {
		pushSvc, err = service.NewPushService(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize push notifications", "error", err)
			log.Fatalf("Failed to initialize push notifications: %v", err)
		}
	} else {
		logger.Info("Push notifications disabled: no Firebase credentials configured")
	}

	// Initialize Services
	notificationSvc := service.NewNotificationService(store.DeviceTokenRepository, store.DriverRepository, emailSvc, pushSvc)
	vehicleSvc := service.NewVehicleService(store.VehicleRepository, listingCache, time.Duration(cfg.Redis.TTLSeconds)*time.Second)
	citySvc := service.NewCityService(store.CityRepository)
	bookingSvc := service.NewBookingService(store.BookingRepository, store.VehicleRepository, store.DriverRepository, notificationSvc, cfg.Pricing.TaxRate, cfg.Pricing.DeliveryFee)
	driverSvc := service.NewDriverService(store.DriverRepository, tokenManager, sessions)

	// Set up HTTP server
	router := httpapi.NewRouter(httpapi.Services{
		Vehicles:      vehicleSvc,
		Cities:        citySvc,
		Bookings:      bookingSvc,
		Drivers:       driverSvc,
		Notifications: notificationSvc,
		Tokens:        tokenManager,
		Sessions:      sessions,
	})

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
