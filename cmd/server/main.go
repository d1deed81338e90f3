package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	httpapi "naturexpress-cargo-backend/internal/api/http"
	"naturexpress-cargo-backend/internal/auth"
	"naturexpress-cargo-backend/internal/config"
	"naturexpress-cargo-backend/internal/events"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository/realtimedb"
	"naturexpress-cargo-backend/internal/service"
	"naturexpress-cargo-backend/internal/store/firebasedb"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load .env for local development; missing file is fine
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting NaturExpress Cargo Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Firebase configuration", "project_id", cfg.Firebase.ProjectID, "database_url", cfg.Firebase.DatabaseURL)

	ctx := context.Background()

	// Initialize Firebase
	var opts []option.ClientOption
	if cfg.Firebase.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.Firebase.CredentialsFile))
	}
	app, err := firebase.NewApp(ctx, &firebase.Config{
		ProjectID:   cfg.Firebase.ProjectID,
		DatabaseURL: cfg.Firebase.DatabaseURL,
	}, opts...)
	if err != nil {
		logger.Error("Failed to initialize Firebase app", "error", err)
		log.Fatalf("Failed to initialize Firebase app: %v", err)
	}

	dbClient, err := app.Database(ctx)
	if err != nil {
		logger.Error("Failed to initialize Realtime Database client", "error", err)
		log.Fatalf("Failed to initialize Realtime Database client: %v", err)
	}
	authClient, err := app.Auth(ctx)
	if err != nil {
		logger.Error("Failed to initialize Firebase auth client", "error", err)
		log.Fatalf("Failed to initialize Firebase auth client: %v", err)
	}
	logger.Info("Firebase connection established")

	// Initialize Repositories
	st := firebasedb.New(dbClient, cfg.Firebase.PollInterval)
	serviceRepo := realtimedb.NewServiceRepository(st)
	requestRepo := realtimedb.NewRequestRepository(st)
	enquiryRepo := realtimedb.NewEnquiryRepository(st)
	userRepo := realtimedb.NewUserRepository(st)

	// Initialize Notifier
	var notifier service.Notifier
	if cfg.Email.SendGridAPIKey != "" {
		notifier = service.NewEmailNotifier(
			cfg.Email.SendGridAPIKey,
			cfg.Email.From,
			cfg.Email.FromName,
			cfg.Email.AdminEmail,
		)
		logger.Info("Email notifications enabled", "admin_email", cfg.Email.AdminEmail)
	} else {
		logger.Info("Email not configured, notifications disabled")
	}

	// Initialize Event Publisher
	var publisher events.Publisher = events.NopPublisher{}
	if cfg.Events.Broker != "" {
		kafkaPublisher := events.NewKafkaPublisher(cfg.Events.Broker, cfg.Events.Topic)
		defer kafkaPublisher.Close()
		publisher = kafkaPublisher
		logger.Info("Event publishing enabled", "broker", cfg.Events.Broker, "topic", cfg.Events.Topic)
	}

	// Initialize Services
	catalogSvc := service.NewCatalogService(serviceRepo)
	requestSvc := service.NewRequestService(requestRepo, userRepo, notifier, publisher)
	enquirySvc := service.NewEnquiryService(enquiryRepo, userRepo, notifier)
	accountSvc := service.NewAccountService(auth.NewIdentityClient(cfg.Firebase.WebAPIKey), userRepo)

	// Initialize HTTP API
	handlers := httpapi.NewHandlers(accountSvc, catalogSvc, requestSvc, enquirySvc)
	guard := httpapi.NewAuthMiddleware(auth.NewFirebaseVerifier(authClient), userRepo)
	router := httpapi.NewRouter(handlers, guard)

	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
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
	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Shutdown error", "error", err)
	}
	logger.Info("HTTP server stopped. Goodbye!")
}
