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

	_ "github.com/lib/pq"

	httpapi "agrirent-backend/internal/api/http"
	"agrirent-backend/internal/config"
	"agrirent-backend/internal/logger"
	"agrirent-backend/internal/repository/postgres"
	"agrirent-backend/internal/security"
	"agrirent-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting AgriRent Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
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
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.ActivationTokenExpiry,
		cfg.JWT.ResetTokenExpiryMinutes,
	)

	// Initialize Services
	emailSvc := service.NewEmailService(cfg.Email, cfg.JWT.ResetTokenExpiryMinutes)
	authSvc := service.NewAuthService(
		store.CustomerRepository,
		store.ProviderRepository,
		tokenManager,
		emailSvc,
		cfg.JWT.ResetTokenExpiryMinutes,
	)
	accountSvc := service.NewAccountService(
		store.CustomerRepository,
		store.ProviderRepository,
		store.EquipmentRepository,
	)
	equipmentSvc := service.NewEquipmentService(
		store.EquipmentRepository,
		store.ProviderRepository,
	)
	requestSvc := service.NewRequestService(
		store.RequestRepository,
		store.EquipmentRepository,
		store.CustomerRepository,
		store.ProviderRepository,
		emailSvc,
		cfg.Rental.DefaultTermDays,
	)

	// Set up HTTP server
	router := httpapi.NewRouter(cfg, tokenManager, authSvc, accountSvc, equipmentSvc, requestSvc)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Failed to shut down cleanly", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
