package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/x1-ranking/internal/champions"
	"github.com/mauv0809/x1-ranking/internal/config"
	"github.com/mauv0809/x1-ranking/internal/database"
	server "github.com/mauv0809/x1-ranking/internal/http"
	"github.com/mauv0809/x1-ranking/internal/league"
	"github.com/mauv0809/x1-ranking/internal/metrics"
	"github.com/mauv0809/x1-ranking/internal/notifier/slack"
	"github.com/mauv0809/x1-ranking/internal/processor"
	"github.com/mauv0809/x1-ranking/internal/pubsub"
)

func main() {
	// Start profiling timer
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.Warn("Unknown log level, keeping default", "level", cfg.LogLevel)
	}

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	log.Info("Database initialization time recorded", "duration_ms", time.Since(startTime).Milliseconds())
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	var publisher pubsub.PubSubClient
	if cfg.ProjectID != "" {
		client, teardown, err := pubsub.New(context.Background(), cfg.ProjectID)
		if err != nil {
			log.Fatalf("Failed to initialize pubsub: %s", err)
		}
		defer teardown()
		publisher = client
	} else {
		log.Warn("GCP_PROJECT not set, match events are only logged")
		publisher = pubsub.NewLogOnly()
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	championClient := champions.NewClient(cfg.Champions.BaseURL, cfg.Champions.Locale)

	store := league.New(db)
	opts := []league.Option{league.WithPublisher(publisher, cfg.PubSub.MatchRecordedTopic)}
	if cfg.Champions.Validate {
		log.Info("Champion validation enabled", "source", cfg.Champions.BaseURL)
		opts = append(opts, league.WithChampionValidation(championClient))
	}
	leagueSvc := league.NewService(store, metricsSvc, opts...)

	if !cfg.SlackEnabled() {
		log.Warn("Slack is not configured, match notifications will fail")
	}
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	processor := processor.New(store, leagueSvc, notifier, metricsSvc, publisher)

	s := server.NewServer(
		store,
		leagueSvc,
		metricsSvc,
		metricsHandler,
		cfg,
		championClient,
		notifier,
		processor,
	)

	// --- Record startup time ---
	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	// --- Graceful shutdown setup ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
	}

	// Channel to listen for errors coming from the server
	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

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

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		if err := srv.Shutdown(ctx); err != nil {
			log.Error("Server shutdown failed", "error", err)
		} else {
			log.Info("Server gracefully stopped")
		}
	}

	log.Info("Server process shutting down")
}
