package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/inngest/inngestgo"
	"github.com/mauv0809/court-planner/internal/club"
	"github.com/mauv0809/court-planner/internal/config"
	"github.com/mauv0809/court-planner/internal/database"
	server "github.com/mauv0809/court-planner/internal/http"
	"github.com/mauv0809/court-planner/internal/inbox"
	"github.com/mauv0809/court-planner/internal/inngest"
	"github.com/mauv0809/court-planner/internal/matchmaking"
	"github.com/mauv0809/court-planner/internal/metrics"
	"github.com/mauv0809/court-planner/internal/notifier/slack"
	"github.com/mauv0809/court-planner/internal/processor"
	"github.com/mauv0809/court-planner/internal/pubsub"
	"github.com/mauv0809/court-planner/internal/reservation"
)

func main() {
	startTime := time.Now()
	log.SetFormatter(log.JSONFormatter)
	cfg := config.Load()

	clubCfg, err := config.LoadClub(cfg.ClubFile)
	if err != nil {
		log.Fatalf("Failed to load club file: %s", err)
	}
	log.Info("Loaded club", "players", clubCfg.Roster.Len(), "dates", len(clubCfg.Season.Dates()), "courts", clubCfg.Season.Courts())

	db, dbTeardown, err := database.InitDB(cfg.DBName, cfg.Turso.PrimaryURL, cfg.Turso.AuthToken)
	dbInitDuration := time.Since(startTime)
	log.Info("Database initialization time recorded", "duration_ms", dbInitDuration.Milliseconds())
	if err != nil {
		log.Fatalf("Failed to initialize database: %s", err)
	}
	defer func() {
		log.Info("Closing database connection")
		dbTeardown()
	}()

	clubStore := club.New(db)
	if err := clubStore.SyncRoster(clubCfg.Roster); err != nil {
		log.Fatalf("Failed to sync roster: %s", err)
	}

	metricsSvc := metrics.NewService()
	metricsHandler := metrics.NewMetricsHandler()
	counters := metrics.New(db)
	reservationStore := reservation.New(db)
	messages := inbox.New(db)
	notifier := slack.NewNotifier(cfg.Slack.Token, cfg.Slack.ChannelID, metricsSvc)
	pubsub := pubsub.New(cfg.ProjectID)
	defer pubsub.Close()
	planner := matchmaking.NewPlanner(clubCfg.Roster, clubCfg.Season)
	processor := processor.New(reservationStore, planner, clubCfg.Season, messages, notifier, metricsSvc, counters, pubsub)

	var inngestClient inngest.InngestClient
	if cfg.Inngest.Enabled() {
		options := inngestgo.ClientOpts{
			AppID:      cfg.Inngest.AppID,
			SigningKey: &cfg.Inngest.SigningKey,
			EventKey:   &cfg.Inngest.EventKey,
		}
		inngestProvider, err := inngestgo.NewClient(options)
		if err != nil {
			log.Fatalf("Failed to initialize inngest: %s", err)
		}
		inngestClient, err = inngest.New(inngestProvider, processor)
		if err != nil {
			log.Fatalf("Failed to register inngest functions: %s", err)
		}
		log.Info("Inngest functions registered", "app_id", cfg.Inngest.AppID)
	}

	s := server.NewServer(
		reservationStore,
		clubStore,
		messages,
		clubCfg,
		metricsSvc,
		counters,
		metricsHandler,
		cfg,
		notifier,
		processor,
		pubsub,
		inngestClient,
	)

	startupDuration := time.Since(startTime)
	metricsSvc.SetStartupTime(startupDuration.Seconds())
	log.Info("Startup time recorded", "duration_ms", startupDuration.Milliseconds())

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: s,
	}

	serverErrors := make(chan error, 1)
	go func() {
		log.Info("Server started", "port", cfg.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

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
