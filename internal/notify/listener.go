package notify

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
)

// Listener is the subscribing half of the fan-out. It receives every
// competition channel and republishes each event on the in-process bus, where
// the realtime relay and metrics pick it up. Events published before Run has
// subscribed are not seen.
type Listener struct {
	subscriber cache.Subscriber
	bus        event.Bus
}

// NewListener creates a listener
func NewListener(subscriber cache.Subscriber, bus event.Bus) *Listener {
	return &Listener{subscriber: subscriber, bus: bus}
}

// Subscribe opens the pattern subscription. It returns once the store has
// confirmed it, so the caller knows from which point on events are delivered.
func (l *Listener) Subscribe(ctx context.Context) (*cache.Subscription, error) {
	sub, err := l.subscriber.PSubscribe(ctx, cache.LeaderboardChannelPattern)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSubscribeFailed, err)
	}
	return sub, nil
}

// Run subscribes and relays until ctx is cancelled or the subscription ends.
func (l *Listener) Run(ctx context.Context) error {
	sub, err := l.Subscribe(ctx)
	if err != nil {
		return err
	}
	return l.Relay(ctx, sub)
}

// Relay consumes an open subscription and closes it on return.
func (l *Listener) Relay(ctx context.Context, sub *cache.Subscription) error {
	defer sub.Close()

	slog.Info(LogMsgListenerStarted, "pattern", cache.LeaderboardChannelPattern)
	for {
		select {
		case <-ctx.Done():
			slog.Info(LogMsgListenerStopped)
			return nil
		case msg, ok := <-sub.Messages():
			if !ok {
				slog.Warn(LogMsgListenerLost)
				return nil
			}
			l.handle(ctx, msg)
		}
	}
}

func (l *Listener) handle(ctx context.Context, msg cache.Message) {
	competitionID, ok := cache.CompetitionFromChannel(msg.Channel)
	if !ok {
		slog.Warn(LogMsgUnknownChannel, "channel", msg.Channel)
		return
	}

	var evt domain.LeaderboardEvent
	if err := json.Unmarshal(msg.Payload, &evt); err != nil || evt.Type != domain.LeaderboardEventScoreUpdate {
		slog.Warn(LogMsgMalformedMessage, "channel", msg.Channel, "error", err)
		return
	}
	if evt.CompetitionID == "" {
		evt.CompetitionID = competitionID
	}

	if err := l.bus.Publish(ctx, event.NewScoreUpdatedEvent(evt, msg.Channel)); err != nil {
		metrics.EventHandlerErrors.WithLabelValues(string(event.LeaderboardScoreUpdated)).Inc()
		slog.Warn(LogMsgRelayHandlerFailed, "channel", msg.Channel, "error", err)
	}
}
