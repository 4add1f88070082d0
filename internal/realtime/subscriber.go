package realtime

import (
	"context"
	"log/slog"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
)

// Subscriber bridges the in-process event bus to the hub.
type Subscriber struct {
	hub       *Hub
	bus       event.Bus
	snapshots *SnapshotCache
}

// NewSubscriber creates a new subscriber. snapshots may be nil.
func NewSubscriber(hub *Hub, bus event.Bus, snapshots *SnapshotCache) *Subscriber {
	return &Subscriber{
		hub:       hub,
		bus:       bus,
		snapshots: snapshots,
	}
}

// Subscribe registers the bus handlers.
func (s *Subscriber) Subscribe() {
	s.bus.Subscribe(event.LeaderboardScoreUpdated, s.handleScoreUpdated)
	slog.Info(LogMsgSubscriberRegistered, "types", []string{string(event.LeaderboardScoreUpdated)})
}

func (s *Subscriber) handleScoreUpdated(_ context.Context, evt event.Event) error {
	payload, err := event.DecodePayload[domain.LeaderboardEvent](evt.Payload)
	if err != nil {
		slog.Warn(LogMsgInvalidEventPayload, "error", err)
		return nil
	}

	if s.snapshots != nil {
		s.snapshots.Invalidate(payload.CompetitionID)
	}
	s.hub.Broadcast(payload.CompetitionID, MessageTypeScoreUpdate, payload)

	slog.Debug(LogMsgMessageBroadcast,
		"type", MessageTypeScoreUpdate,
		"competition_id", payload.CompetitionID,
		"user_id", payload.UserID,
		"score", payload.Score)
	return nil
}
