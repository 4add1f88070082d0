package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/notify"
)

// EventSystem owns the in-process bus and the store listener feeding it.
type EventSystem struct {
	Bus      *event.MemoryBus
	listener *notify.Listener
	cancel   context.CancelFunc
	done     chan struct{}
}

// InitializeEventSystem creates the bus and a listener on the store's
// competition channels. Nothing is received until Start.
func InitializeEventSystem(subscriber cache.Subscriber) *EventSystem {
	bus := event.NewMemoryBus()
	return &EventSystem{
		Bus:      bus,
		listener: notify.NewListener(subscriber, bus),
	}
}

// Start opens the pattern subscription and relays in the background. It
// returns after the store has confirmed the subscription, so score updates
// published from then on reach the bus.
func (e *EventSystem) Start(ctx context.Context) error {
	runCtx, cancel := context.WithCancel(context.WithoutCancel(ctx))

	sub, err := e.listener.Subscribe(ctx)
	if err != nil {
		cancel()
		return fmt.Errorf("%s: %w", ErrMsgEventSystemStart, err)
	}

	e.cancel = cancel
	e.done = make(chan struct{})
	go func() {
		defer close(e.done)
		_ = e.listener.Relay(runCtx, sub)
	}()

	slog.Info(LogMsgEventSystemInitialized, "pattern", cache.LeaderboardChannelPattern)
	return nil
}

// Stop cancels the listener and waits for it to exit or ctx to expire.
func (e *EventSystem) Stop(ctx context.Context) {
	if e.cancel == nil {
		return
	}
	e.cancel()

	select {
	case <-e.done:
		slog.Info(LogMsgEventSystemStopped)
	case <-ctx.Done():
	}
}
