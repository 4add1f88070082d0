package realtime

import (
	"time"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

// clientRequest is a control message sent by a websocket client.
type clientRequest struct {
	Type          string `json:"type"`
	CompetitionID string `json:"competition_id"`
}

func connectedMessage(clientID, competitionID string) Message {
	return Message{
		ID:            clientID,
		Type:          MessageTypeConnected,
		CompetitionID: competitionID,
		Timestamp:     time.Now().Unix(),
		Data:          map[string]string{"client_id": clientID},
	}
}

func leaderboardMessage(board *domain.Leaderboard) Message {
	return Message{
		Type:          MessageTypeLeaderboardUpdate,
		CompetitionID: board.CompetitionID,
		Timestamp:     time.Now().Unix(),
		Data:          board,
	}
}

func ackMessage(msgType, competitionID string) Message {
	return Message{
		Type:          msgType,
		CompetitionID: competitionID,
		Timestamp:     time.Now().Unix(),
	}
}

func errorMessage(reason string) Message {
	return Message{
		Type:      MessageTypeError,
		Timestamp: time.Now().Unix(),
		Data:      map[string]string{"error": reason},
	}
}
