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

	firebase "firebase.google.com/go/v4"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"

	_ "github.com/lib/pq"

	"naturexpress-cargo-backend/internal/config"
	"naturexpress-cargo-backend/internal/jobs"
	"naturexpress-cargo-backend/internal/logger"
	"naturexpress-cargo-backend/internal/repository"
	"naturexpress-cargo-backend/internal/repository/postgres"
	"naturexpress-cargo-backend/internal/repository/realtimedb"
	"naturexpress-cargo-backend/internal/scheduler"
	"naturexpress-cargo-backend/internal/service"
	"naturexpress-cargo-backend/internal/store/firebasedb"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	runOnce := flag.String("run-once", "", "Run a specific job once and exit (e.g., 'digest-pending-requests', 'all')")
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
	logger.Info("Starting NaturExpress Cronjob Runner...", "log_level", cfg.Log.Level)

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
	logger.Info("Firebase connection established")

	st := firebasedb.New(dbClient, cfg.Firebase.PollInterval)
	requestRepo := realtimedb.NewRequestRepository(st)

	// Optional relational archive
	var archiveRepo repository.ArchiveRepository
	if cfg.ArchiveEnabled() {
		logger.Info("Connecting to archive database...", "host", cfg.Database.Host, "port", cfg.Database.Port)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to archive database", "error", err)
			log.Fatalf("Failed to connect to archive database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping archive database", "error", err)
			log.Fatalf("Failed to ping archive database: %v", err)
		}
		logger.Info("Archive database connection established")
		archiveRepo = postgres.NewArchiveRepository(db)
	} else {
		logger.Info("Archive database not configured, archival jobs will be skipped")
	}

	// Optional email notifier
	var notifier service.Notifier
	if cfg.Email.SendGridAPIKey != "" {
		notifier = service.NewEmailNotifier(
			cfg.Email.SendGridAPIKey,
			cfg.Email.From,
			cfg.Email.FromName,
			cfg.Email.AdminEmail,
		)
	}

	// Initialize Job Runner
	jobRunner := jobs.NewJobRunner(requestRepo, archiveRepo, notifier, cfg)

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
	case "digest-pending-requests":
		jobRunner.DigestPendingRequests()
	case "archive-completed-requests":
		jobRunner.ArchiveCompletedRequests()
	case "all":
		jobRunner.RunAllJobs()
	default:
		logger.Error("Unknown job name", "job", jobName)
		fmt.Printf("Available jobs:\n")
		fmt.Printf("  - digest-pending-requests\n")
		fmt.Printf("  - archive-completed-requests\n")
		fmt.Printf("  - all\n")
		os.Exit(1)
	}
}
