package metrics

import (
	"context"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// EventMetricsCollector subscribes to bus events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to the leaderboard events relayed from the store
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	bus.Subscribe(event.LeaderboardScoreUpdated, e.HandleEvent)
	return nil
}

// HandleEvent counts a relayed event under its payload type
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	payload, err := event.DecodePayload[domain.LeaderboardEvent](evt.Payload)
	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgEventPayloadInvalid, "type", evt.Type, "error", err)
		return nil
	}

	EventsRelayed.WithLabelValues(payload.Type).Inc()
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type, "competition_id", payload.CompetitionID)
	return nil
}
