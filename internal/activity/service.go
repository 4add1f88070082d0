// Package activity offers the combined write path: one submission updates both
// the fitness totals and the ranking score. The two underlying writes stay
// independently callable and are not transactional; if the score update fails
// after the sample was accepted, the totals already include the sample.
package activity

import (
	"context"
	"fmt"

	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/fitness"
	"github.com/Sahillather002/challenge-fun-app/internal/leaderboard"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
)

// Error message format strings
const (
	ErrMsgSyncFailed        = "activity sync failed: %w"
	ErrMsgReadTotalsFailed  = "activity totals unavailable: %w"
	ErrMsgScoreUpdateFailed = "activity score update failed: %w"
)

const LogMsgActivityRecorded = "Activity recorded"

// Submission is a fitness sample plus the display name to show on the board.
type Submission struct {
	domain.FitnessSyncRequest
	UserName string `json:"user_name,omitempty" validate:"omitempty,max=128"`
}

// Result reports what the combined write produced.
type Result struct {
	Sample *domain.FitnessSample          `json:"sample"`
	Stats  *domain.AggregatedFitnessStats `json:"stats"`
}

// Service defines the combined write
type Service interface {
	Submit(ctx context.Context, sub *Submission) (*Result, error)
}

type service struct {
	fitness     fitness.Service
	leaderboard leaderboard.Service
}

// NewService creates a new activity service
func NewService(fitnessSvc fitness.Service, leaderboardSvc leaderboard.Service) Service {
	return &service{fitness: fitnessSvc, leaderboard: leaderboardSvc}
}

// Submit syncs the sample, then ranks the user by their cumulative totals.
func (s *service) Submit(ctx context.Context, sub *Submission) (*Result, error) {
	sample, err := s.fitness.SyncFitnessData(ctx, &sub.FitnessSyncRequest)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgSyncFailed, err)
	}

	stats, err := s.fitness.GetUserStats(ctx, sub.UserID, sub.CompetitionID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadTotalsFailed, err)
	}

	err = s.leaderboard.UpdateScore(ctx, &domain.ScoreUpdateRequest{
		UserID:        sub.UserID,
		CompetitionID: sub.CompetitionID,
		UserName:      sub.UserName,
		Steps:         stats.TotalSteps,
		Distance:      stats.TotalDistance,
		Calories:      stats.TotalCalories,
	})
	if err != nil {
		return nil, fmt.Errorf(ErrMsgScoreUpdateFailed, err)
	}

	logger.FromContext(ctx).Info(LogMsgActivityRecorded, "user_id", sub.UserID,
		"competition_id", sub.CompetitionID, "total_steps", stats.TotalSteps)
	return &Result{Sample: sample, Stats: stats}, nil
}
