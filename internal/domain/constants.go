package domain

import "time"

// Expiry of each cached entity
const (
	FitnessSampleTTL  = 30 * 24 * time.Hour
	FitnessStatsTTL   = 30 * 24 * time.Hour
	UserDetailsTTL    = 24 * time.Hour
	PrizesTTL         = 7 * 24 * time.Hour
	LeaderboardSetTTL = time.Duration(0) // ranking sets persist until removed
)

// Fitness defaults
const (
	DefaultFitnessSource = "google_fit"
	SampleDateLayout     = "2006-01-02"
)

// Leaderboard defaults
const (
	DefaultLeaderboardLimit = 100
	MaxLeaderboardLimit     = 1000
	PrizeRankCount          = 3
	UnknownUserName         = "Unknown"
)

// PrizeSplit is the share of the pool for ranks 1, 2 and 3.
var PrizeSplit = [PrizeRankCount]float64{0.60, 0.30, 0.10}

// Prize statuses
const (
	PrizeStatusPending     = "pending"
	PrizeStatusDistributed = "distributed"
)
