package domain

import "time"

// LeaderboardEventScoreUpdate tags a score change notification.
const LeaderboardEventScoreUpdate = "score_update"

// LeaderboardEvent is the pub/sub payload sent after every accepted score update.
// It is never persisted.
type LeaderboardEvent struct {
	Type          string    `json:"type"`
	CompetitionID string    `json:"competition_id"`
	UserID        string    `json:"user_id"`
	Score         int64     `json:"score"`
	Timestamp     time.Time `json:"timestamp"`
}

// NewScoreUpdateEvent builds the event for a score change.
func NewScoreUpdateEvent(competitionID, userID string, score int64, at time.Time) LeaderboardEvent {
	return LeaderboardEvent{
		Type:          LeaderboardEventScoreUpdate,
		CompetitionID: competitionID,
		UserID:        userID,
		Score:         score,
		Timestamp:     at,
	}
}
