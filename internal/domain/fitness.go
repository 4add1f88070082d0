package domain

import "time"

// FitnessSyncRequest is one activity submission from a client device.
type FitnessSyncRequest struct {
	UserID        string    `json:"user_id" validate:"required,max=128,keysafe"`
	CompetitionID string    `json:"competition_id" validate:"required,max=128,keysafe"`
	Steps         int64     `json:"steps" validate:"gte=0"`
	Distance      float64   `json:"distance" validate:"gte=0"`
	Calories      float64   `json:"calories" validate:"gte=0"`
	ActiveMinutes int64     `json:"active_minutes" validate:"gte=0"`
	Source        string    `json:"source,omitempty" validate:"omitempty,max=64"`
	Date          time.Time `json:"date" validate:"required"`
}

// FitnessSample is the stored record for one (user, competition, calendar day).
// A second submission for the same day replaces it.
type FitnessSample struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	CompetitionID string    `json:"competition_id"`
	Steps         int64     `json:"steps"`
	Distance      float64   `json:"distance"`
	Calories      float64   `json:"calories"`
	ActiveMinutes int64     `json:"active_minutes"`
	Source        string    `json:"source"`
	Date          time.Time `json:"date"`
	SyncedAt      time.Time `json:"synced_at"`
}

// AggregatedFitnessStats holds running totals for a user within a competition.
type AggregatedFitnessStats struct {
	UserID             string    `json:"user_id"`
	CompetitionID      string    `json:"competition_id"`
	TotalSteps         int64     `json:"total_steps"`
	TotalDistance      float64   `json:"total_distance"`
	TotalCalories      float64   `json:"total_calories"`
	TotalActiveMinutes int64     `json:"total_active_minutes"`
	LastSyncedAt       time.Time `json:"last_synced_at"`
	Source             string    `json:"source"`
}

// SampleDay returns the UTC calendar day a sample date falls on.
func SampleDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
