package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/mock"

	"github.com/Sahillather002/challenge-fun-app/internal/activity"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

type MockFitnessService struct {
	mock.Mock
}

func (m *MockFitnessService) SyncFitnessData(ctx context.Context, req *domain.FitnessSyncRequest) (*domain.FitnessSample, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FitnessSample), args.Error(1)
}

func (m *MockFitnessService) GetUserStats(ctx context.Context, userID, competitionID string) (*domain.AggregatedFitnessStats, error) {
	args := m.Called(ctx, userID, competitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AggregatedFitnessStats), args.Error(1)
}

func (m *MockFitnessService) GetDailySample(ctx context.Context, userID, competitionID string, date time.Time) (*domain.FitnessSample, error) {
	args := m.Called(ctx, userID, competitionID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FitnessSample), args.Error(1)
}

type MockLeaderboardService struct {
	mock.Mock
}

func (m *MockLeaderboardService) UpdateScore(ctx context.Context, req *domain.ScoreUpdateRequest) error {
	return m.Called(ctx, req).Error(0)
}

func (m *MockLeaderboardService) GetLeaderboard(ctx context.Context, competitionID string, limit int) (*domain.Leaderboard, error) {
	args := m.Called(ctx, competitionID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Leaderboard), args.Error(1)
}

func (m *MockLeaderboardService) GetUserRank(ctx context.Context, competitionID, userID string) (*domain.UserRank, error) {
	args := m.Called(ctx, competitionID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.UserRank), args.Error(1)
}

func (m *MockLeaderboardService) CalculatePrizes(ctx context.Context, competitionID string, prizePool float64) ([]domain.Prize, error) {
	args := m.Called(ctx, competitionID, prizePool)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prize), args.Error(1)
}

func (m *MockLeaderboardService) GetPrizes(ctx context.Context, competitionID string) ([]domain.Prize, error) {
	args := m.Called(ctx, competitionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Prize), args.Error(1)
}

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Submit(ctx context.Context, sub *activity.Submission) (*activity.Result, error) {
	args := m.Called(ctx, sub)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activity.Result), args.Error(1)
}

type MockPinger struct {
	mock.Mock
}

func (m *MockPinger) Ping(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

// withURLParams attaches chi route params to a request built with httptest.
func withURLParams(r *http.Request, params map[string]string) *http.Request {
	rctx := chi.NewRouteContext()
	for k, v := range params {
		rctx.URLParams.Add(k, v)
	}
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
