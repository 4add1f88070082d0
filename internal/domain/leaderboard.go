package domain

import "time"

// ScoreUpdateRequest sets a user's ranking score for a competition.
// The score is the submitted step count.
type ScoreUpdateRequest struct {
	UserID        string  `json:"user_id" validate:"required,max=128,keysafe"`
	CompetitionID string  `json:"competition_id" validate:"required,max=128,keysafe"`
	UserName      string  `json:"user_name,omitempty" validate:"omitempty,max=128"`
	Steps         int64   `json:"steps" validate:"gte=0"`
	Distance      float64 `json:"distance" validate:"gte=0"`
	Calories      float64 `json:"calories" validate:"gte=0"`
}

// UserDetailSnapshot is the denormalized view rendered next to a ranking entry.
type UserDetailSnapshot struct {
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Score     int64     `json:"score"`
	Steps     int64     `json:"steps"`
	Distance  float64   `json:"distance"`
	Calories  float64   `json:"calories"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeaderboardEntry is one ranked row.
type LeaderboardEntry struct {
	UserID      string    `json:"user_id"`
	UserName    string    `json:"user_name"`
	Rank        int       `json:"rank"`
	Score       int64     `json:"score"`
	Steps       int64     `json:"steps"`
	Distance    float64   `json:"distance"`
	Calories    float64   `json:"calories"`
	LastUpdated time.Time `json:"last_updated"`
}

// Leaderboard is an ordered page of standings. TotalCount is the size of the
// whole ranking set, independent of how many entries were returned.
type Leaderboard struct {
	CompetitionID string             `json:"competition_id"`
	Entries       []LeaderboardEntry `json:"entries"`
	TotalCount    int64              `json:"total_count"`
	Timestamp     time.Time          `json:"timestamp"`
}

// UserRank is a single member's standing.
type UserRank struct {
	CompetitionID string `json:"competition_id"`
	UserID        string `json:"user_id"`
	Rank          int64  `json:"rank"`
	Score         int64  `json:"score"`
}

// Prize is the computed award for one of the top ranks.
type Prize struct {
	ID            string     `json:"id"`
	CompetitionID string     `json:"competition_id"`
	UserID        string     `json:"user_id"`
	Rank          int        `json:"rank"`
	Amount        float64    `json:"amount"`
	Status        string     `json:"status"`
	CreatedAt     time.Time  `json:"created_at"`
	DistributedAt *time.Time `json:"distributed_at,omitempty"`
}

// PrizeCalculationRequest is the body of a prize calculation call.
type PrizeCalculationRequest struct {
	PrizePool float64 `json:"prize_pool" validate:"gte=0"`
}
