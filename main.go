package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/thunderfc/clubsync/internal/changefeed"
	"github.com/thunderfc/clubsync/internal/config"
	"github.com/thunderfc/clubsync/internal/database"
	server "github.com/thunderfc/clubsync/internal/http"
	"github.com/thunderfc/clubsync/internal/logostore"
	"github.com/thunderfc/clubsync/internal/metrics"
	"github.com/thunderfc/clubsync/internal/notifier/slack"
	"github.com/thunderfc/clubsync/internal/syncer"
	"github.com/thunderfc/clubsync/internal/team"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	feed := changefeed.New(cfg.ProjectID)
	defer feed.Close()
	teamStore := team.New(db, feed)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	logos, err := logostore.NewLocal(cfg.Logo.Dir, cfg.BaseURL)
	if err != nil {
		log.Fatalf("Failed to initialize logo store: %s", err)
	}

	sync := syncer.New(teamStore, feed, notifier, metricsSvc, logos, cfg.Logo.MaxBytes)
	if err := sync.Activate(context.Background()); err != nil {
		// The syncer stays usable on a stale/empty snapshot; don't exit.
		log.Error("Initial load incomplete", "error", err)
	}
	defer sync.Deactivate()

	s := server.NewServer(sync, metricsSvc, metricsHandler, cfg)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	// Start the server in a goroutine
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-shutdown:
		log.Info("Shutdown signal received", "signal", sig)

		// Create a context with a timeout for the shutdown.
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Attempt to gracefully shut down the server.
		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
