package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/storage/redis/v3"

	"leadline/internal/config"
	"leadline/internal/crm"
	"leadline/internal/db"
	"leadline/internal/handlers"
	"leadline/internal/jobs"
	"leadline/internal/metrics"
	"leadline/internal/notify"
	"leadline/internal/reason"
	"leadline/internal/server"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Load()

	// Initialize database
	database, err := db.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	// Run migrations
	if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Migrations completed successfully")

	// Register qualification outcome metrics
	metrics.Init(database)

	// Optional Redis cache for CRM lookups
	var cache crm.Cache
	if cfg.RedisURL != "" {
		store := redis.New(redis.Config{URL: cfg.RedisURL})
		defer store.Close()
		cache = store
		log.Println("CRM lookup cache enabled")
	} else {
		log.Println("CRM lookup cache disabled (REDIS_URL not configured)")
	}

	// CRM directory - only initialize if configured
	var directory handlers.Directory
	if cfg.IsCRMEnabled() {
		directory = crm.NewClient(cfg, cache)
		log.Println("CRM directory lookups enabled")
	} else {
		log.Println("CRM directory lookups disabled (CRM_BASE_URL not configured); callers resolve as unknown")
	}

	// Chat notifier (no-op when unconfigured)
	notifier := notify.New(cfg)

	// Optional reasoning service
	var reasoner handlers.Reasoner
	if cfg.IsReasoningEnabled() {
		reasoner = reason.New(cfg.OpenAIAPIKey, cfg.OpenAIModel)
		log.Printf("Reasoning service enabled (model: %s)", cfg.OpenAIModel)
	} else {
		log.Println("Reasoning service disabled; using deterministic reasoning")
	}

	// Activity log retention
	pruner := jobs.NewRetentionPruner(database, 12*time.Hour,
		time.Duration(cfg.ActivityRetentionDays)*24*time.Hour)
	go pruner.Start(ctx)

	// Initialize server and routes
	srv := server.New(cfg)
	srv.RegisterRoutes(database, directory, notifier, reasoner)

	// Graceful shutdown
	go func() {
		if err := srv.Start(); err != nil {
			log.Printf("Server error: %v", err)
		}
	}()

	log.Printf("Server started on %s", cfg.ServerAddr)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cancel()
	if err := srv.Shutdown(); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
