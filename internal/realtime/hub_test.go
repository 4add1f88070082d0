package realtime

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahillather002/challenge-fun-app/internal/testing/leaktest"
)

func receive(t *testing.T, c *Client) Message {
	t.Helper()
	select {
	case msg, ok := <-c.Messages:
		require.True(t, ok, "client channel closed")
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return Message{}
	}
}

func assertNothing(t *testing.T, c *Client) {
	t.Helper()
	select {
	case msg := <-c.Messages:
		t.Fatalf("unexpected message %+v", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestHub_BroadcastOnlyReachesRoom(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c1 := hub.Register("c1", TransportWebSocket)
	c2 := hub.Register("c2", TransportSSE)
	assert.Equal(t, 2, hub.ClientCount())
	assert.Equal(t, 1, hub.RoomSize("c1"))

	hub.Broadcast("c1", MessageTypeScoreUpdate, map[string]int{"score": 1})

	msg := receive(t, c1)
	assert.Equal(t, MessageTypeScoreUpdate, msg.Type)
	assert.Equal(t, "c1", msg.CompetitionID)
	assert.NotEmpty(t, msg.ID)
	assertNothing(t, c2)
}

func TestHub_JoinLeave(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register("c1", TransportWebSocket)
	require.True(t, hub.Join(c.ID, "c2"))
	assert.False(t, hub.Join("unknown-client", "c2"))

	hub.Broadcast("c2", MessageTypeScoreUpdate, nil)
	assert.Equal(t, "c2", receive(t, c).CompetitionID)

	hub.Leave(c.ID, "c2")
	assert.Zero(t, hub.RoomSize("c2"))
	hub.Broadcast("c2", MessageTypeScoreUpdate, nil)
	assertNothing(t, c)

	hub.Broadcast("c1", MessageTypeScoreUpdate, nil)
	assert.Equal(t, "c1", receive(t, c).CompetitionID)
}

func TestHub_SlowClientDropsInsteadOfBlocking(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	slow := hub.Register("c1", TransportWebSocket)
	fast := hub.Register("c1", TransportWebSocket)

	total := ClientMessageBuffer + 10
	received := 0
	for i := 0; i < total; i++ {
		hub.Broadcast("c1", MessageTypeScoreUpdate, i)
		receive(t, fast)
		received++
	}
	assert.Equal(t, total, received)
	assert.Len(t, slow.Messages, ClientMessageBuffer)
}

func TestHub_UnregisterClosesChannel(t *testing.T) {
	hub := NewHub()
	hub.Start()
	defer hub.Stop()

	c := hub.Register("c1", TransportSSE)
	hub.Unregister(c.ID)

	select {
	case _, ok := <-c.Messages:
		assert.False(t, ok)
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed")
	}
	assert.Zero(t, hub.ClientCount())
	assert.Zero(t, hub.RoomSize("c1"))
}

func TestHub_StopClosesClients(t *testing.T) {
	checker := leaktest.NewGoroutineChecker(t)

	hub := NewHub()
	hub.Start()
	c := hub.Register("c1", TransportWebSocket)
	hub.Stop()
	hub.Stop()

	_, ok := <-c.Messages
	assert.False(t, ok)

	late := hub.Register("c1", TransportWebSocket)
	_, ok = <-late.Messages
	assert.False(t, ok, "registering after stop yields a closed client")

	// must not block after stop
	hub.Unregister(c.ID)

	checker.Check(0)
}

func TestFormatSSEMessage(t *testing.T) {
	data, err := FormatSSEMessage(Message{ID: "abc", Type: MessageTypeScoreUpdate, CompetitionID: "c1", Timestamp: 1})
	require.NoError(t, err)

	lines := strings.Split(string(data), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "id: abc", lines[0])
	assert.Equal(t, "event: score_update", lines[1])
	assert.JSONEq(t, `{"id":"abc","type":"score_update","competition_id":"c1","timestamp":1}`, strings.TrimPrefix(lines[2], "data: "))
	assert.Empty(t, lines[3])
	assert.Empty(t, lines[4])
}
