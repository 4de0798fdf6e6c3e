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

	httpapi "motorent-backend/internal/api/http"
	"motorent-backend/internal/config"
	"motorent-backend/internal/logger"
	"motorent-backend/internal/repository/postgres"
	"motorent-backend/internal/security"
	"motorent-backend/internal/service"
	"motorent-backend/internal/storage"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env for local development; ignore when absent
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting MotoRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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

	// Initialize Identity Verification
	verifier, err := security.NewFirebaseVerifier(context.Background(), cfg.Auth.FirebaseProjectID, cfg.Auth.CredentialsFile)
	if err != nil {
		logger.Error("Failed to initialize identity verifier", "error", err)
		log.Fatalf("Failed to initialize identity verifier: %v", err)
	}
	authenticator := httpapi.NewAuthenticator(verifier)

	// Initialize Image Storage
	var imageStore storage.ImageStore
	if cfg.Storage.Type == "" || cfg.Storage.Type == "local" {
		logger.Info("Using local image storage", "upload_dir", cfg.Storage.UploadDir)
		localStore, err := storage.NewLocalImageStore(cfg.Storage.BaseURL, cfg.Storage.UploadDir)
		if err != nil {
			logger.Error("Failed to initialize image storage", "error", err)
			log.Fatalf("Failed to initialize image storage: %v", err)
		}
		imageStore = localStore
	} else {
		logger.Error("Unsupported storage type", "type", cfg.Storage.Type)
		log.Fatalf("Storage type '%s' not yet implemented", cfg.Storage.Type)
	}

	// Initialize Services
	timeout := cfg.QueryTimeout()
	emailSvc := service.NewEmailService(cfg.Email.SendGridAPIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	profileSvc := service.NewProfileService(store.ProfileRepository, timeout)
	motoSvc := service.NewMotorcycleService(store.MotorcycleRepository, store.ProfileRepository, timeout)
	availabilitySvc := service.NewAvailabilityService(store.RentalRepository, timeout)
	rentalSvc := service.NewRentalService(
		store.RentalRepository,
		store.MotorcycleRepository,
		store.ProfileRepository,
		store.ContractRepository,
		store.PaymentRepository,
		store.NotificationRepository,
		availabilitySvc,
		emailSvc,
		cfg.Rental.MinDurationDays,
		timeout,
	)
	contractSvc := service.NewContractService(
		store.ContractRepository,
		store.RentalRepository,
		store.MotorcycleRepository,
		store.ProfileRepository,
		store.NotificationRepository,
		emailSvc,
		timeout,
	)
	paymentSvc := service.NewPaymentService(store.PaymentRepository, timeout)
	noteSvc := service.NewNotificationService(store.NotificationRepository, timeout)

	// Initialize HTTP server
	apiServer := httpapi.NewServer(profileSvc, motoSvc, availabilitySvc, rentalSvc, contractSvc, paymentSvc, noteSvc, imageStore)
	srv := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      apiServer.Router(authenticator, cfg.Server.AllowedOrigins),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
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
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Forced shutdown", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
