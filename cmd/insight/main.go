package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/pysugar/usage-insight/internal/analytics"
	"github.com/pysugar/usage-insight/internal/api"
	"github.com/pysugar/usage-insight/internal/config"
	"github.com/pysugar/usage-insight/internal/db"
	"github.com/pysugar/usage-insight/internal/version"
)

func main() {
	// A missing .env is fine; real deployments set the environment directly.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("⚠️ Failed to load .env: %v", err)
	}

	cfg, err := config.Load(os.Getenv("INSIGHT_CONFIG"))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize database
	database, err := db.Open(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	querier := db.NewGormQuerier(database, cfg.Database.QueryTimeout)
	svc := analytics.NewService(querier)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      api.NewRouter(svc, querier),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("🚀 usage-insight %s starting on http://%s", version.Version, srv.Addr)
	log.Printf("📊 Logs:     http://%s/api/logs?apiKey=...", srv.Addr)
	log.Printf("📊 Stats:    http://%s/api/stats/{channels,models,overview}?apiKey=...", srv.Addr)
	log.Printf("📈 Metrics:  http://%s/metrics", srv.Addr)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Graceful shutdown failed: %v", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		sqlDB.Close()
	}
	log.Printf("👋 usage-insight stopped")
}
