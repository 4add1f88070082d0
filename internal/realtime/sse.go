package realtime

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

// SSEHandler streams a competition's score updates as server-sent events.
func SSEHandler(hub *Hub, snapshots *SnapshotCache) http.HandlerFunc {
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

		flusher, ok := w.(http.Flusher)
		if !ok {
			http.Error(w, ErrMsgStreamingUnsupported, http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "text/event-stream")
		w.Header().Set("Cache-Control", "no-cache")
		w.Header().Set("Connection", "keep-alive")

		client := hub.Register(competitionID, TransportSSE)
		slog.Info(LogMsgClientConnected,
			"client_id", client.ID,
			"transport", TransportSSE,
			"competition_id", competitionID,
			"total_clients", hub.ClientCount())

		defer func() {
			hub.Unregister(client.ID)
			slog.Info(LogMsgClientDisconnected, "client_id", client.ID, "transport", TransportSSE)
		}()

		write := func(msg Message) bool {
			data, err := FormatSSEMessage(msg)
			if err != nil {
				slog.Error(LogMsgWriteError, "error", err)
				return true
			}
			if _, err := w.Write(data); err != nil {
				slog.Warn(LogMsgWriteError, "error", err)
				return false
			}
			flusher.Flush()
			return true
		}

		if !write(connectedMessage(client.ID, competitionID)) {
			return
		}
		if snapshots != nil {
			board, err := snapshots.Get(r.Context(), competitionID)
			if err != nil {
				slog.Warn(LogMsgSnapshotFailed, "error", err, "competition_id", competitionID)
			} else if !write(leaderboardMessage(board)) {
				return
			}
		}

		ticker := time.NewTicker(KeepaliveInterval)
		defer ticker.Stop()

		ctx := r.Context()
		for {
			select {
			case <-ctx.Done():
				return

			case msg, ok := <-client.Messages:
				if !ok {
					return
				}
				if !write(msg) {
					return
				}

			case <-ticker.C:
				if !write(Message{Type: MessageTypeKeepalive, Timestamp: time.Now().Unix()}) {
					return
				}
			}
		}
	}
}
