package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
	"github.com/Sahillather002/challenge-fun-app/internal/realtime"
)

// EventHandlerDependencies holds the dependencies needed for event handler registration.
type EventHandlerDependencies struct {
	EventBus  event.Bus
	Hub       *realtime.Hub
	Snapshots *realtime.SnapshotCache
}

// RegisterEventHandlers sets up all bus subscribers:
// - Realtime relay (hub broadcast and snapshot invalidation)
// - Metrics collector (relayed event counters)
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	realtime.NewSubscriber(deps.Hub, deps.EventBus, deps.Snapshots).Subscribe()
	slog.Info(LogMsgRealtimeRelayRegistered)

	metricsCollector := metrics.NewEventMetricsCollector()
	if err := metricsCollector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	return nil
}
