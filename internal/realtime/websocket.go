package realtime

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

// NewUpgrader builds the websocket upgrader. An empty list or "*" accepts any origin.
func NewUpgrader(allowedOrigins []string) *websocket.Upgrader {
	return &websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
		CheckOrigin: func(r *http.Request) bool {
			origin := r.Header.Get("Origin")
			if origin == "" || len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
				return true
			}
			return slices.Contains(allowedOrigins, origin)
		},
	}
}

// WebSocketHandler relays a competition's score updates over a websocket. On
// connect the client gets a "connected" message and the current leaderboard;
// it may then subscribe to or unsubscribe from other competitions. Updates
// published before the connection joined a room are not replayed.
func WebSocketHandler(hub *Hub, snapshots *SnapshotCache, upgrader *websocket.Upgrader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		competitionID := chi.URLParam(r, "competitionId")
		if competitionID == "" {
			http.Error(w, ErrMsgMissingCompetitionID, http.StatusBadRequest)
			return
		}
		if err := domain.ValidateIdentifier(competitionID); err != nil {
			http.Error(w, ErrMsgInvalidCompetitionID, http.StatusBadRequest)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			// Upgrade already replied to the client
			slog.Warn(LogMsgUpgradeFailed, "error", err)
			return
		}

		client := hub.Register(competitionID, TransportWebSocket)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportWebSocket,
			"competition_id", competitionID,
			"total_clients", hub.ClientCount())

		s := &wsSession{
			conn:      conn,
			hub:       hub,
			snapshots: snapshots,
			client:    client,
			replies:   make(chan Message, ClientMessageBuffer),
			stop:      make(chan struct{}),
			done:      make(chan struct{}),
		}
		defer s.close()

		if err := s.write(connectedMessage(client.ID, competitionID)); err != nil {
			return
		}
		if board, ok := s.snapshot(r, competitionID); ok {
			if err := s.write(board); err != nil {
				return
			}
		}

		s.started = true
		go s.writePump()
		s.readPump(r)
	}
}

type wsSession struct {
	conn      *websocket.Conn
	hub       *Hub
	snapshots *SnapshotCache
	client    *Client
	replies   chan Message
	stop      chan struct{}
	done      chan struct{}
	started   bool
}

func (s *wsSession) write(msg Message) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(WriteWait))
	if err := s.conn.WriteJSON(msg); err != nil {
		slog.Warn(LogMsgWriteError, "error", err, "client_id", s.client.ID)
		return err
	}
	return nil
}

func (s *wsSession) snapshot(r *http.Request, competitionID string) (Message, bool) {
	if s.snapshots == nil {
		return Message{}, false
	}
	board, err := s.snapshots.Get(r.Context(), competitionID)
	if err != nil {
		slog.Warn(LogMsgSnapshotFailed, "error", err, "competition_id", competitionID)
		return Message{}, false
	}
	return leaderboardMessage(board), true
}

// writePump is the only writer once the session is running.
func (s *wsSession) writePump() {
	ticker := time.NewTicker(PingPeriod)
	defer func() {
		ticker.Stop()
		close(s.done)
	}()

	for {
		select {
		case msg, ok := <-s.client.Messages:
			if !ok {
				_ = s.conn.SetWriteDeadline(time.Now().Add(WriteWait))
				_ = s.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseGoingAway, ""))
				_ = s.conn.Close()
				return
			}
			if err := s.write(msg); err != nil {
				_ = s.conn.Close()
				return
			}

		case msg := <-s.replies:
			if err := s.write(msg); err != nil {
				_ = s.conn.Close()
				return
			}

		case <-ticker.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(WriteWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				_ = s.conn.Close()
				return
			}

		case <-s.stop:
			return
		}
	}
}

func (s *wsSession) readPump(r *http.Request) {
	s.conn.SetReadLimit(MaxClientMessageSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(PongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(PongWait))
	})

	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Warn(LogMsgReadError, "error", err, "client_id", s.client.ID)
			}
			return
		}

		var req clientRequest
		if err := json.Unmarshal(data, &req); err != nil {
			s.reply(errorMessage(ErrMsgMalformedMessage))
			continue
		}
		s.handleRequest(r, req)
	}
}

func (s *wsSession) handleRequest(r *http.Request, req clientRequest) {
	switch req.Type {
	case ClientActionSubscribe:
		if !s.checkCompetitionID(req.CompetitionID) {
			return
		}
		s.hub.Join(s.client.ID, req.CompetitionID)
		s.reply(ackMessage(MessageTypeSubscribed, req.CompetitionID))
		if board, ok := s.snapshot(r, req.CompetitionID); ok {
			s.reply(board)
		}

	case ClientActionUnsubscribe:
		if !s.checkCompetitionID(req.CompetitionID) {
			return
		}
		s.hub.Leave(s.client.ID, req.CompetitionID)
		s.reply(ackMessage(MessageTypeUnsubscribed, req.CompetitionID))

	default:
		s.reply(errorMessage(ErrMsgUnknownAction))
	}
}

// checkCompetitionID replies with an error and reports false for a missing or
// unsafe competition ID.
func (s *wsSession) checkCompetitionID(competitionID string) bool {
	if competitionID == "" {
		s.reply(errorMessage(ErrMsgMissingCompetitionID))
		return false
	}
	if err := domain.ValidateIdentifier(competitionID); err != nil {
		s.reply(errorMessage(ErrMsgInvalidCompetitionID))
		return false
	}
	return true
}

func (s *wsSession) reply(msg Message) {
	select {
	case s.replies <- msg:
	case <-s.done:
	}
}

// close is called once the read side has ended.
func (s *wsSession) close() {
	s.hub.Unregister(s.client.ID)
	if s.started {
		select {
		case <-s.done:
		default:
			close(s.stop)
			<-s.done
		}
	}
	_ = s.conn.Close()
	slog.Info(LogMsgClientDisconnected, "client_id", s.client.ID, "transport", TransportWebSocket)
}
