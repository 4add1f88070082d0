package realtime

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
)

// Message is what clients receive on either transport.
type Message struct {
	ID            string      `json:"id,omitempty"`
	Type          string      `json:"type"`
	CompetitionID string      `json:"competition_id,omitempty"`
	Timestamp     int64       `json:"timestamp"`
	Data          interface{} `json:"data,omitempty"`
}

// Client is one live connection. It receives messages for every competition
// room it has joined.
type Client struct {
	ID        string
	Transport string
	Messages  chan Message
}

// Hub tracks connections per competition and fans messages out to them. A
// client that is not keeping up loses messages rather than blocking others.
type Hub struct {
	clients    map[string]*Client
	rooms      map[string]map[string]*Client
	broadcast  chan Message
	unregister chan string
	mu         sync.RWMutex
	shutdown   chan struct{}
	wg         sync.WaitGroup
	stopOnce   sync.Once
}

// NewHub creates a new Hub
func NewHub() *Hub {
	return &Hub{
		clients:    make(map[string]*Client),
		rooms:      make(map[string]map[string]*Client),
		broadcast:  make(chan Message, BroadcastBufferSize),
		unregister: make(chan string, ClientChannelBuffer),
		shutdown:   make(chan struct{}),
	}
}

// Start starts the hub's broadcast loop
func (h *Hub) Start() {
	h.wg.Add(1)
	go h.run()
}

// Stop shuts the loop down and closes every client channel.
func (h *Hub) Stop() {
	h.stopOnce.Do(func() {
		close(h.shutdown)
		h.wg.Wait()

		h.mu.Lock()
		for _, client := range h.clients {
			close(client.Messages)
			metrics.RealtimeClients.WithLabelValues(client.Transport).Dec()
		}
		h.clients = make(map[string]*Client)
		h.rooms = make(map[string]map[string]*Client)
		h.mu.Unlock()
	})
}

func (h *Hub) run() {
	defer h.wg.Done()

	for {
		select {
		case clientID := <-h.unregister:
			h.mu.Lock()
			if client, ok := h.clients[clientID]; ok {
				for competitionID, members := range h.rooms {
					delete(members, clientID)
					if len(members) == 0 {
						delete(h.rooms, competitionID)
					}
				}
				close(client.Messages)
				delete(h.clients, clientID)
				metrics.RealtimeClients.WithLabelValues(client.Transport).Dec()
			}
			h.mu.Unlock()

		case msg := <-h.broadcast:
			h.mu.RLock()
			for _, client := range h.rooms[msg.CompetitionID] {
				select {
				case client.Messages <- msg:
				default:
					metrics.RealtimeDropped.Inc()
				}
			}
			h.mu.RUnlock()

		case <-h.shutdown:
			return
		}
	}
}

// Register adds a client and joins it to competitionID (if not empty). The
// client is in the room when Register returns. After Stop the returned
// client's channel is already closed.
func (h *Hub) Register(competitionID, transport string) *Client {
	client := &Client{
		ID:        uuid.New().String(),
		Transport: transport,
		Messages:  make(chan Message, ClientMessageBuffer),
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	select {
	case <-h.shutdown:
		close(client.Messages)
		return client
	default:
	}

	h.clients[client.ID] = client
	if competitionID != "" {
		h.joinLocked(client, competitionID)
	}
	metrics.RealtimeClients.WithLabelValues(transport).Inc()
	return client
}

// Unregister removes a client from the hub and closes its channel.
func (h *Hub) Unregister(clientID string) {
	select {
	case h.unregister <- clientID:
	case <-h.shutdown:
	}
}

// Join adds a registered client to a competition room.
func (h *Hub) Join(clientID, competitionID string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	client, ok := h.clients[clientID]
	if !ok {
		return false
	}
	h.joinLocked(client, competitionID)
	return true
}

// Leave removes a client from a competition room.
func (h *Hub) Leave(clientID, competitionID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if members, ok := h.rooms[competitionID]; ok {
		delete(members, clientID)
		if len(members) == 0 {
			delete(h.rooms, competitionID)
		}
	}
}

func (h *Hub) joinLocked(client *Client, competitionID string) {
	members, ok := h.rooms[competitionID]
	if !ok {
		members = make(map[string]*Client)
		h.rooms[competitionID] = members
	}
	members[client.ID] = client
}

// Broadcast queues a message for every client in the competition's room.
func (h *Hub) Broadcast(competitionID, msgType string, data interface{}) {
	msg := Message{
		ID:            uuid.New().String(),
		Type:          msgType,
		CompetitionID: competitionID,
		Timestamp:     time.Now().Unix(),
		Data:          data,
	}

	select {
	case h.broadcast <- msg:
	default:
		metrics.RealtimeDropped.Inc()
		slog.Warn(LogMsgBroadcastDropped, "competition_id", competitionID, "type", msgType)
	}
}

// ClientCount returns the number of connected clients
func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// RoomSize returns how many clients follow a competition.
func (h *Hub) RoomSize(competitionID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[competitionID])
}

// FormatSSEMessage formats a message for an event stream.
func FormatSSEMessage(msg Message) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, err
	}

	// "id: <id>\nevent: <type>\ndata: <json>\n\n"
	out := "id: " + msg.ID + "\n"
	out += "event: " + msg.Type + "\n"
	out += "data: " + string(data) + "\n\n"

	return []byte(out), nil
}
