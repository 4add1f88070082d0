package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/Sahillather002/challenge-fun-app/internal/activity"
	"github.com/Sahillather002/challenge-fun-app/internal/bootstrap"
	"github.com/Sahillather002/challenge-fun-app/internal/config"
	"github.com/Sahillather002/challenge-fun-app/internal/fitness"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/notify"
	"github.com/Sahillather002/challenge-fun-app/internal/realtime"
	"github.com/Sahillather002/challenge-fun-app/internal/server"
)

// @title challenge-fun-app leaderboard API
// @version 1.0
// @description Fitness sync, live competition leaderboards and prize calculation.
// @BasePath /api/v1
func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		slog.Error("Failed to set up logging", "error", err)
		os.Exit(1)
	}
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		slog.Error("Server failed", "error", err)
		if logFile != nil {
			_ = logFile.Close()
		}
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, store, err := bootstrap.InitializeStore(ctx, cfg.Redis)
	if err != nil {
		return err
	}

	fitnessSvc := fitness.NewService(store)
	leaderboardSvc := leaderboard.NewService(store, notify.NewStorePublisher(store))
	activitySvc := activity.NewService(fitnessSvc, leaderboardSvc)

	hub := realtime.NewHub()
	hub.Start()
	snapshots := realtime.NewSnapshotCache(leaderboardSvc, cfg.SnapshotCache.Size, cfg.SnapshotCache.TTL)

	events := bootstrap.InitializeEventSystem(store)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:  events.Bus,
		Hub:       hub,
		Snapshots: snapshots,
	}); err != nil {
		hub.Stop()
		_ = client.Close()
		return err
	}
	if err := events.Start(ctx); err != nil {
		hub.Stop()
		_ = client.Close()
		return err
	}

	srv := server.NewServer(server.Options{
		Addr:           cfg.Addr(),
		Version:        cfg.Version,
		RateLimitRPS:   cfg.RateLimit.RPS,
		RateLimitBurst: cfg.RateLimit.Burst,
		TrustedProxies: cfg.RateLimit.TrustedProxies,
		AllowedOrigins: cfg.AllowedOrigins,
	}, server.Services{
		Fitness:     fitnessSvc,
		Leaderboard: leaderboardSvc,
		Activity:    activitySvc,
		Pinger:      store,
		Hub:         hub,
		Snapshots:   snapshots,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case <-ctx.Done():
		err = nil
	case err = <-serveErr:
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server: srv,
		Hub:    hub,
		Events: events,
		Store:  client,
	})

	return err
}
