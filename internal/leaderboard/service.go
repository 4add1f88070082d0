package leaderboard

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
	"github.com/Sahillather002/challenge-fun-app/internal/notify"
)

// Service defines the interface for leaderboard operations
type Service interface {
	// UpdateScore sets the user's score to the submitted step count, replacing
	// any previous score, and notifies subscribers. It does not touch the
	// fitness totals.
	UpdateScore(ctx context.Context, req *domain.ScoreUpdateRequest) error
	// GetLeaderboard returns the top limit entries ranked by position in the
	// response. limit <= 0 means domain.DefaultLeaderboardLimit.
	GetLeaderboard(ctx context.Context, competitionID string, limit int) (*domain.Leaderboard, error)
	GetUserRank(ctx context.Context, competitionID, userID string) (*domain.UserRank, error)
	// CalculatePrizes splits prizePool 60/30/10 over the current top three and
	// caches the result, replacing any earlier calculation.
	CalculatePrizes(ctx context.Context, competitionID string, prizePool float64) ([]domain.Prize, error)
	GetPrizes(ctx context.Context, competitionID string) ([]domain.Prize, error)
}

// Option customises a service
type Option func(*service)

// WithClock overrides the time source
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	store     cache.Store
	publisher notify.Publisher
	now       func() time.Time
}

// NewService creates a new leaderboard service
func NewService(store cache.Store, publisher notify.Publisher, opts ...Option) Service {
	s := &service{
		store:     store,
		publisher: publisher,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) UpdateScore(ctx context.Context, req *domain.ScoreUpdateRequest) error {
	log := logger.FromContext(ctx)

	if err := validateIDs(req.UserID, req.CompetitionID); err != nil {
		return err
	}

	score := req.Steps
	now := s.now().UTC()

	if err := s.store.ZAdd(ctx, cache.LeaderboardKey(req.CompetitionID), float64(score), req.UserID); err != nil {
		log.Error(LogMsgScoreUpdateFailed, "error", err, "user_id", req.UserID, "competition_id", req.CompetitionID)
		return fmt.Errorf(ErrMsgUpdateRankingFailed, err)
	}

	snapshot := domain.UserDetailSnapshot{
		UserID:    req.UserID,
		UserName:  req.UserName,
		Score:     score,
		Steps:     req.Steps,
		Distance:  req.Distance,
		Calories:  req.Calories,
		UpdatedAt: now,
	}
	if err := s.store.Set(ctx, cache.UserDetailsKey(req.CompetitionID, req.UserID), snapshot, domain.UserDetailsTTL); err != nil {
		log.Error(LogMsgScoreUpdateFailed, "error", err, "user_id", req.UserID, "competition_id", req.CompetitionID)
		return fmt.Errorf(ErrMsgWriteSnapshotFailed, err)
	}

	metrics.ScoreUpdates.Inc()

	// The ranking and snapshot writes above stay in place when publishing fails.
	evt := domain.NewScoreUpdateEvent(req.CompetitionID, req.UserID, score, now)
	if err := s.publisher.PublishScoreUpdate(ctx, evt); err != nil {
		log.Error(LogMsgPublishFailed, "error", err, "user_id", req.UserID, "competition_id", req.CompetitionID)
		return fmt.Errorf(ErrMsgPublishFailed, err)
	}

	log.Info(LogMsgScoreUpdated, "user_id", req.UserID, "competition_id", req.CompetitionID, "score", score)
	return nil
}

func (s *service) GetLeaderboard(ctx context.Context, competitionID string, limit int) (*domain.Leaderboard, error) {
	if competitionID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCompetitionIDRequired)
	}
	if limit <= 0 {
		limit = domain.DefaultLeaderboardLimit
	}

	key := cache.LeaderboardKey(competitionID)
	members, err := s.store.ZRevRangeWithScores(ctx, key, 0, int64(limit-1))
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRankingFailed, err)
	}

	entries := make([]domain.LeaderboardEntry, 0, len(members))
	for i, m := range members {
		entry, err := s.entryFor(ctx, competitionID, m, i+1)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	total, err := s.store.ZCard(ctx, key)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgCountRankingFailed, err)
	}

	metrics.LeaderboardReads.Inc()
	logger.FromContext(ctx).Debug(LogMsgLeaderboardRead, "competition_id", competitionID,
		"entries", len(entries), "total_count", total)

	return &domain.Leaderboard{
		CompetitionID: competitionID,
		Entries:       entries,
		TotalCount:    total,
		Timestamp:     s.now().UTC(),
	}, nil
}

// entryFor merges the ranking score with the user's detail snapshot. An
// expired snapshot yields a placeholder built from the ranking alone.
func (s *service) entryFor(ctx context.Context, competitionID string, m cache.ScoredMember, rank int) (domain.LeaderboardEntry, error) {
	score := scoreFromFloat(m.Score)

	var snapshot domain.UserDetailSnapshot
	err := s.store.Get(ctx, cache.UserDetailsKey(competitionID, m.Member), &snapshot)
	if err != nil {
		if !cache.IsNotFound(err) {
			return domain.LeaderboardEntry{}, fmt.Errorf(ErrMsgReadSnapshotFailed, m.Member, err)
		}
		logger.FromContext(ctx).Debug(LogMsgSnapshotMiss, "competition_id", competitionID, "user_id", m.Member)
		return domain.LeaderboardEntry{
			UserID:   m.Member,
			UserName: domain.UnknownUserName,
			Rank:     rank,
			Score:    score,
		}, nil
	}

	return domain.LeaderboardEntry{
		UserID:      m.Member,
		UserName:    snapshot.UserName,
		Rank:        rank,
		Score:       score,
		Steps:       snapshot.Steps,
		Distance:    snapshot.Distance,
		Calories:    snapshot.Calories,
		LastUpdated: snapshot.UpdatedAt,
	}, nil
}

func (s *service) GetUserRank(ctx context.Context, competitionID, userID string) (*domain.UserRank, error) {
	if err := validateIDs(userID, competitionID); err != nil {
		return nil, err
	}

	key := cache.LeaderboardKey(competitionID)
	rank, found, err := s.store.ZRevRank(ctx, key, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRankFailed, err)
	}
	if !found {
		return nil, fmt.Errorf(ErrMsgUserNotRanked, userID, competitionID, domain.ErrNotFound)
	}

	score, found, err := s.store.ZScore(ctx, key, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadRankFailed, err)
	}
	if !found {
		// removed between the two reads
		return nil, fmt.Errorf(ErrMsgUserNotRanked, userID, competitionID, domain.ErrNotFound)
	}

	return &domain.UserRank{
		CompetitionID: competitionID,
		UserID:        userID,
		Rank:          rank + 1,
		Score:         scoreFromFloat(score),
	}, nil
}

func (s *service) CalculatePrizes(ctx context.Context, competitionID string, prizePool float64) ([]domain.Prize, error) {
	log := logger.FromContext(ctx)

	if prizePool < 0 || math.IsNaN(prizePool) || math.IsInf(prizePool, 0) {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgNegativePrizePool)
	}

	board, err := s.GetLeaderboard(ctx, competitionID, domain.PrizeRankCount)
	if err != nil {
		metrics.PrizeCalculations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, err
	}
	if len(board.Entries) == 0 {
		metrics.PrizeCalculations.WithLabelValues(metrics.ResultFailure).Inc()
		log.Info(LogMsgPrizesNoParticipant, "competition_id", competitionID)
		return nil, domain.ErrNoParticipants
	}

	now := s.now().UTC()
	prizes := make([]domain.Prize, 0, len(board.Entries))
	for i, entry := range board.Entries {
		prizes = append(prizes, domain.Prize{
			ID:            PrizeID(competitionID, entry.Rank),
			CompetitionID: competitionID,
			UserID:        entry.UserID,
			Rank:          entry.Rank,
			Amount:        prizePool * domain.PrizeSplit[i],
			Status:        domain.PrizeStatusPending,
			CreatedAt:     now,
		})
	}

	if err := s.store.Set(ctx, cache.PrizesKey(competitionID), prizes, domain.PrizesTTL); err != nil {
		metrics.PrizeCalculations.WithLabelValues(metrics.ResultFailure).Inc()
		return nil, fmt.Errorf(ErrMsgCachePrizesFailed, err)
	}

	metrics.PrizeCalculations.WithLabelValues(metrics.ResultSuccess).Inc()
	log.Info(LogMsgPrizesCalculated, "competition_id", competitionID, "prize_pool", prizePool, "winners", len(prizes))
	return prizes, nil
}

func (s *service) GetPrizes(ctx context.Context, competitionID string) ([]domain.Prize, error) {
	if competitionID == "" {
		return nil, fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCompetitionIDRequired)
	}

	var prizes []domain.Prize
	if err := s.store.Get(ctx, cache.PrizesKey(competitionID), &prizes); err != nil {
		return nil, fmt.Errorf(ErrMsgReadPrizesFailed, err)
	}
	return prizes, nil
}

// PrizeID is deterministic so recalculation overwrites the same prizes.
func PrizeID(competitionID string, rank int) string {
	return fmt.Sprintf(PrizeIDFormat, competitionID, rank)
}

// scoreFromFloat converts a sorted-set score back to the integer step count.
func scoreFromFloat(f float64) int64 {
	return int64(math.Round(f))
}

func validateIDs(userID, competitionID string) error {
	if userID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgUserIDRequired)
	}
	if competitionID == "" {
		return fmt.Errorf("%w: %s", domain.ErrInvalidInput, ErrMsgCompetitionIDRequired)
	}
	return nil
}
