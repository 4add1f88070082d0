package bootstrap

import (
	"context"
	"io"
	"log/slog"

	"github.com/Sahillather002/challenge-fun-app/internal/realtime"
	"github.com/Sahillather002/challenge-fun-app/internal/server"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Any nil field is skipped.
type ShutdownComponents struct {
	Server *server.Server
	Hub    *realtime.Hub
	Events *EventSystem
	Store  io.Closer
}

// GracefulShutdown stops the application in dependency order:
// 1. Realtime hub (closes client channels so streaming handlers return)
// 2. HTTP server (drains remaining requests)
// 3. Leaderboard listener
// 4. Store connection
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	if components.Hub != nil {
		slog.Info(LogMsgStoppingHub, "clients", components.Hub.ClientCount())
		components.Hub.Stop()
	}

	if components.Server != nil {
		slog.Info(LogMsgShuttingDownServer)
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.Events != nil {
		slog.Info(LogMsgStoppingEvents)
		components.Events.Stop(ctx)
	}

	if components.Store != nil {
		slog.Info(LogMsgClosingStore)
		if err := components.Store.Close(); err != nil {
			slog.Error(LogMsgStoreCloseFailed, "error", err)
		}
	}

	slog.Info(LogMsgServerStopped)
}
