package notify

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/cache/cachetest"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/testing/leaktest"
)

var eventTime = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func TestStorePublisher_PublishesOnCompetitionChannel(t *testing.T) {
	store, _ := cachetest.New(t)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	sub, err := store.PSubscribe(ctx, cache.LeaderboardChannelPattern)
	require.NoError(t, err)
	defer sub.Close()

	pub := NewStorePublisher(store)
	require.NoError(t, pub.PublishScoreUpdate(ctx, domain.NewScoreUpdateEvent("c1", "u1", 5000, eventTime)))

	select {
	case msg := <-sub.Messages():
		assert.Equal(t, "leaderboard:c1", msg.Channel)
		assert.JSONEq(t, `{
			"type": "score_update",
			"competition_id": "c1",
			"user_id": "u1",
			"score": 5000,
			"timestamp": "2026-03-10T18:00:00Z"
		}`, string(msg.Payload))
	case <-ctx.Done():
		t.Fatal("timed out waiting for published event")
	}
}

func TestStorePublisher_NoSubscriberIsNotAnError(t *testing.T) {
	store, _ := cachetest.New(t)
	pub := NewStorePublisher(store)

	err := pub.PublishScoreUpdate(context.Background(), domain.NewScoreUpdateEvent("c1", "u1", 1, eventTime))
	assert.NoError(t, err)
}

func TestStorePublisher_StoreDown(t *testing.T) {
	store, mr := cachetest.New(t)
	mr.Close()

	err := NewStorePublisher(store).PublishScoreUpdate(context.Background(), domain.NewScoreUpdateEvent("c1", "u1", 1, eventTime))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestListener_RelaysToBus(t *testing.T) {
	store, _ := cachetest.New(t)
	require.NoError(t, store.Ping(context.Background()))
	checker := leaktest.NewGoroutineChecker(t)
	bus := event.NewMemoryBus()

	received := make(chan domain.LeaderboardEvent, 4)
	bus.Subscribe(event.LeaderboardScoreUpdated, func(ctx context.Context, evt event.Event) error {
		payload, err := event.DecodePayload[domain.LeaderboardEvent](evt.Payload)
		if err != nil {
			return err
		}
		received <- payload
		return nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	listener := NewListener(store, bus)
	sub, err := listener.Subscribe(ctx)
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- listener.Relay(ctx, sub) }()

	// malformed payloads are skipped without stopping the relay
	require.NoError(t, store.Publish(ctx, cache.LeaderboardChannel("c1"), "{not json"))
	require.NoError(t, store.Publish(ctx, cache.LeaderboardChannel("c1"), map[string]string{"type": "something_else"}))

	pub := NewStorePublisher(store)
	require.NoError(t, pub.PublishScoreUpdate(ctx, domain.NewScoreUpdateEvent("c1", "u1", 5000, eventTime)))
	require.NoError(t, pub.PublishScoreUpdate(ctx, domain.NewScoreUpdateEvent("c2", "u2", 7000, eventTime)))

	for _, want := range []struct {
		competition, user string
		score             int64
	}{{"c1", "u1", 5000}, {"c2", "u2", 7000}} {
		select {
		case got := <-received:
			assert.Equal(t, want.competition, got.CompetitionID)
			assert.Equal(t, want.user, got.UserID)
			assert.Equal(t, want.score, got.Score)
			assert.True(t, eventTime.Equal(got.Timestamp))
		case <-time.After(5 * time.Second):
			t.Fatal("timed out waiting for relayed event")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("listener did not stop")
	}

	checker.Check(3)
}

func TestListener_FillsCompetitionFromChannel(t *testing.T) {
	bus := event.NewMemoryBus()
	var got domain.LeaderboardEvent
	bus.Subscribe(event.LeaderboardScoreUpdated, func(ctx context.Context, evt event.Event) error {
		got = evt.Payload.(domain.LeaderboardEvent)
		return nil
	})

	payload, err := json.Marshal(map[string]any{"type": "score_update", "user_id": "u9", "score": 12})
	require.NoError(t, err)

	l := NewListener(nil, bus)
	l.handle(context.Background(), cache.Message{Channel: "leaderboard:c7", Payload: payload})

	assert.Equal(t, "c7", got.CompetitionID)
	assert.Equal(t, "u9", got.UserID)
	assert.Equal(t, int64(12), got.Score)
}

func TestListener_RunFailsWhenStoreDown(t *testing.T) {
	store, mr := cachetest.New(t)
	mr.Close()

	err := NewListener(store, event.NewMemoryBus()).Run(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}
