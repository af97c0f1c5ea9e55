package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"car-rental-backend/internal/config"
	"car-rental-backend/internal/jobs"
	"car-rental-backend/internal/logger"
	"car-rental-backend/internal/repository/postgres"
	"car-rental-backend/internal/scheduler"
	"car-rental-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'mark-completed-bookings', 'all-nightly')")
	flag.Parse()

	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Car Rental Cronjob Runner...", "log_level", cfg.Log.Level)

	// Initialize Database
	logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
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

	// Delivery channels are optional here too; reminders simply skip a
	// channel that is not configured.
	var emailSvc service.EmailService
	if cfg.Email.APIKey != "" {
		emailSvc = service.NewEmailService(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	}

	var pushSvc service.PushService
	if cfg.Push.CredentialsFile != "" {
		pushSvc, err = service.NewPushService(context.Background(), cfg.Push.CredentialsFile)
		if err != nil {
			logger.Error("Failed to initialize push notifications", "error", err)
			log.Fatalf("Failed to initialize push notifications: %v", err)
		}
	}

	notificationSvc := service.NewNotificationService(store.DeviceTokenRepository, store.DriverRepository, emailSvc, pushSvc)

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(store, notificationSvc, cfg)

	// Check if running a single job
	if *runOnce != "" {
		logger.Info("Running job once", "job", *runOnce)
		runJobOnce(jobRunner, *runOnce)
		logger.Info("Job execution completed", "job", *runOnce)
		return
	}

	// Initialize Scheduler
	cronScheduler := scheduler.NewScheduler(jobRunner)

	// Start scheduler
	cronScheduler.Start()
	logger.Info("Cronjob scheduler is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down cronjob scheduler...")
	cronScheduler.Stop()
	logger.Info("Cronjob scheduler stopped. Goodbye!")
}

// runJobOnce runs a specific job once and exits
func runJobOnce(jobRunner *jobs.JobRunner, jobName string) {
	switch jobName {
	case "mark-completed-bookings":
		jobRunner.MarkCompletedBookings()
	case "send-trip-reminders":
		jobRunner.SendTripReminders()
	case "all-nightly":
		jobRunner.RunAllNightlyJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - mark-completed-bookings\n")
		fmt.Printf("  - send-trip-reminders\n")
		fmt.Printf("  - all-nightly\n")
	}
}
