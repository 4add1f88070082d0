package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahillather002/challenge-fun-app/internal/activity"
	"github.com/Sahillather002/challenge-fun-app/internal/cache/cachetest"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/event"
	"github.com/Sahillather002/challenge-fun-app/internal/fitness"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/notify"
	"github.com/Sahillather002/challenge-fun-app/internal/realtime"
)

// newTestServer wires the real services over miniredis, including the
// pub/sub relay into the websocket hub.
func newTestServer(t *testing.T, opts Options) *httptest.Server {
	t.Helper()

	store, _ := cachetest.New(t)
	fitnessSvc := fitness.NewService(store)
	leaderboardSvc := leaderboard.NewService(store, notify.NewStorePublisher(store))

	hub := realtime.NewHub()
	hub.Start()
	snapshots := realtime.NewSnapshotCache(leaderboardSvc, 0, 0)
	bus := event.NewMemoryBus()
	realtime.NewSubscriber(hub, bus, snapshots).Subscribe()

	ctx, cancel := context.WithCancel(context.Background())
	listener := notify.NewListener(store, bus)
	sub, err := listener.Subscribe(ctx)
	require.NoError(t, err)
	relayDone := make(chan struct{})
	go func() {
		defer close(relayDone)
		_ = listener.Relay(ctx, sub)
	}()

	if opts.RateLimitRPS == 0 {
		opts.RateLimitRPS, opts.RateLimitBurst = 1000, 1000
	}
	srv := httptest.NewServer(NewRouter(opts, Services{
		Fitness:     fitnessSvc,
		Leaderboard: leaderboardSvc,
		Activity:    activity.NewService(fitnessSvc, leaderboardSvc),
		Pinger:      store,
		Hub:         hub,
		Snapshots:   snapshots,
	}))

	t.Cleanup(func() {
		hub.Stop()
		srv.Close()
		cancel()
		<-relayDone
	})
	return srv
}

func post(t *testing.T, url, body string) *http.Response {
	t.Helper()
	resp, err := http.Post(url, "application/json", strings.NewReader(body))
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func get(t *testing.T, url string) *http.Response {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestServer_ActivityToLeaderboard(t *testing.T) {
	srv := newTestServer(t, Options{Version: "test"})

	resp := post(t, srv.URL+"/api/v1/activity",
		`{"user_id":"u1","user_name":"Ana","competition_id":"c1","steps":5000,"date":"2026-03-10T08:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, srv.URL+"/api/v1/activity",
		`{"user_id":"u2","user_name":"Bo","competition_id":"c1","steps":8000,"date":"2026-03-10T09:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = post(t, srv.URL+"/api/v1/activity",
		`{"user_id":"u1","competition_id":"c1","steps":4000,"date":"2026-03-11T08:00:00Z"}`)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = get(t, srv.URL+"/api/v1/leaderboard/c1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var board domain.Leaderboard
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&board))

	require.Len(t, board.Entries, 2)
	assert.Equal(t, int64(2), board.TotalCount)
	assert.Equal(t, "u1", board.Entries[0].UserID, "cumulative 9000 beats 8000")
	assert.Equal(t, int64(9000), board.Entries[0].Score)
	assert.Equal(t, 1, board.Entries[0].Rank)
	assert.Equal(t, "Bo", board.Entries[1].UserName)

	resp = get(t, srv.URL+"/api/v1/leaderboard/c1/rank/u2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var rank domain.UserRank
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&rank))
	assert.Equal(t, int64(2), rank.Rank)

	resp = get(t, srv.URL+"/api/v1/fitness/stats/u1?competition_id=c1")
	var stats domain.AggregatedFitnessStats
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	assert.Equal(t, int64(9000), stats.TotalSteps)

	resp = get(t, srv.URL+"/api/v1/fitness/daily/u1?competition_id=c1&date=2026-03-11")
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestServer_Prizes(t *testing.T) {
	srv := newTestServer(t, Options{})

	resp := post(t, srv.URL+"/api/v1/prizes/calculate/c1", `{"prize_pool":1000}`)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)

	resp = get(t, srv.URL+"/api/v1/prizes/c1")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	post(t, srv.URL+"/api/v1/leaderboard/update", `{"user_id":"u1","competition_id":"c1","steps":10}`)
	resp = post(t, srv.URL+"/api/v1/prizes/calculate/c1", `{"prize_pool":1000}`)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = get(t, srv.URL+"/api/v1/prizes/c1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var prizes []domain.Prize
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&prizes))
	require.Len(t, prizes, 1)
	assert.InDelta(t, 600.0, prizes[0].Amount, 1e-9)
}

func TestServer_WebSocketReceivesScoreUpdates(t *testing.T) {
	srv := newTestServer(t, Options{})

	url := "ws" + strings.TrimPrefix(srv.URL, "http") + "/ws/leaderboard/c1"
	conn, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	_ = resp.Body.Close()
	defer conn.Close()

	read := func() realtime.Message {
		require.NoError(t, conn.SetReadDeadline(time.Now().Add(3*time.Second)))
		var msg realtime.Message
		require.NoError(t, conn.ReadJSON(&msg))
		return msg
	}

	assert.Equal(t, realtime.MessageTypeConnected, read().Type)
	assert.Equal(t, realtime.MessageTypeLeaderboardUpdate, read().Type)

	post(t, srv.URL+"/api/v1/leaderboard/update", `{"user_id":"u7","competition_id":"c1","steps":4200}`)

	msg := read()
	assert.Equal(t, realtime.MessageTypeScoreUpdate, msg.Type)
	data, ok := msg.Data.(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "u7", data["user_id"])
	assert.Equal(t, float64(4200), data["score"])
}

func TestServer_OpsEndpoints(t *testing.T) {
	srv := newTestServer(t, Options{Version: "9.9.9"})

	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/healthz").StatusCode)
	assert.Equal(t, http.StatusOK, get(t, srv.URL+"/readyz").StatusCode)

	resp := get(t, srv.URL+"/version")
	var info map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	assert.Equal(t, "9.9.9", info["version"])

	resp = get(t, srv.URL+"/metrics")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, HeaderValueNoSniff, resp.Header.Get(HeaderContentType))
}

func TestServer_RateLimit(t *testing.T) {
	srv := newTestServer(t, Options{RateLimitRPS: 0.001, RateLimitBurst: 3})

	codes := make([]int, 0, 5)
	for i := 0; i < 5; i++ {
		codes = append(codes, get(t, srv.URL+"/healthz").StatusCode)
	}
	assert.Equal(t, []int{200, 200, 200, 429, 429}, codes)
}
