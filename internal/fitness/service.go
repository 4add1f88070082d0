package fitness

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
	"github.com/Sahillather002/challenge-fun-app/internal/logger"
	"github.com/Sahillather002/challenge-fun-app/internal/metrics"
)

// Service defines the interface for fitness aggregation
type Service interface {
	// SyncFitnessData stores the day's sample and adds it onto the running totals.
	// Submitting the same day twice replaces the sample but counts it twice in
	// the totals.
	SyncFitnessData(ctx context.Context, req *domain.FitnessSyncRequest) (*domain.FitnessSample, error)
	// GetUserStats returns zero-valued totals for a user with no submissions.
	GetUserStats(ctx context.Context, userID, competitionID string) (*domain.AggregatedFitnessStats, error)
	GetDailySample(ctx context.Context, userID, competitionID string, date time.Time) (*domain.FitnessSample, error)
}

// Option customises a service
type Option func(*service)

// WithClock overrides the time source used for sync timestamps
func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

type service struct {
	store cache.Store
	now   func() time.Time
}

// NewService creates a new fitness service backed by store
func NewService(store cache.Store, opts ...Option) Service {
	s := &service{
		store: store,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *service) SyncFitnessData(ctx context.Context, req *domain.FitnessSyncRequest) (*domain.FitnessSample, error) {
	log := logger.FromContext(ctx)

	if err := validateIDs(req.UserID, req.CompetitionID); err != nil {
		return nil, err
	}

	day := domain.SampleDay(req.Date)
	sample := &domain.FitnessSample{
		ID:            SampleID(req.UserID, req.CompetitionID, day),
		UserID:        req.UserID,
		CompetitionID: req.CompetitionID,
		Steps:         req.Steps,
		Distance:      req.Distance,
		Calories:      req.Calories,
		ActiveMinutes: req.ActiveMinutes,
		Source:        normalizeSource(req.Source),
		Date:          req.Date,
		SyncedAt:      s.now().UTC(),
	}

	sampleKey := cache.FitnessSampleKey(req.UserID, req.CompetitionID, day)
	if err := s.store.Set(ctx, sampleKey, sample, domain.FitnessSampleTTL); err != nil {
		log.Error(LogMsgSyncFailed, "error", err, "user_id", req.UserID, "competition_id", req.CompetitionID)
		return nil, fmt.Errorf(ErrMsgWriteSampleFailed, err)
	}

	delta := cache.FieldDelta{
		Ints: map[string]int64{
			fieldTotalSteps:         sample.Steps,
			fieldTotalActiveMinutes: sample.ActiveMinutes,
		},
		Floats: map[string]float64{
			fieldTotalDistance: sample.Distance,
			fieldTotalCalories: sample.Calories,
		},
		Set: map[string]string{
			fieldUserID:        sample.UserID,
			fieldCompetitionID: sample.CompetitionID,
			fieldLastSyncedAt:  sample.SyncedAt.Format(time.RFC3339Nano),
			fieldSource:        sample.Source,
		},
	}
	statsKey := cache.FitnessStatsKey(req.UserID, req.CompetitionID)
	if err := s.store.IncrementFields(ctx, statsKey, delta, domain.FitnessStatsTTL); err != nil {
		log.Error(LogMsgSyncFailed, "error", err, "user_id", req.UserID, "competition_id", req.CompetitionID)
		return nil, fmt.Errorf(ErrMsgUpdateStatsFailed, err)
	}

	metrics.FitnessSyncs.Inc()
	metrics.StepsSynced.Add(float64(sample.Steps))
	log.Info(LogMsgSampleSynced, "user_id", sample.UserID, "competition_id", sample.CompetitionID,
		"sample_id", sample.ID, "steps", sample.Steps)

	return sample, nil
}

func (s *service) GetUserStats(ctx context.Context, userID, competitionID string) (*domain.AggregatedFitnessStats, error) {
	log := logger.FromContext(ctx)

	if err := validateIDs(userID, competitionID); err != nil {
		return nil, err
	}

	fields, err := s.store.GetFields(ctx, cache.FitnessStatsKey(userID, competitionID))
	if err != nil {
		if cache.IsNotFound(err) {
			log.Debug(LogMsgStatsMiss, "user_id", userID, "competition_id", competitionID)
			return &domain.AggregatedFitnessStats{UserID: userID, CompetitionID: competitionID}, nil
		}
		log.Error(LogMsgStatsReadFailed, "error", err, "user_id", userID, "competition_id", competitionID)
		return nil, fmt.Errorf(ErrMsgReadStatsFailed, err)
	}

	stats, err := parseStats(fields)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgReadStatsFailed, err)
	}
	stats.UserID = userID
	stats.CompetitionID = competitionID
	return stats, nil
}

func (s *service) GetDailySample(ctx context.Context, userID, competitionID string, date time.Time) (*domain.FitnessSample, error) {
	if err := validateIDs(userID, competitionID); err != nil {
		return nil, err
	}

	var sample domain.FitnessSample
	if err := s.store.Get(ctx, cache.FitnessSampleKey(userID, competitionID, date), &sample); err != nil {
		if !cache.IsNotFound(err) {
			logger.FromContext(ctx).Error(LogMsgSampleReadFailed, "error", err, "user_id", userID)
		}
		return nil, fmt.Errorf(ErrMsgReadSampleFailed, err)
	}
	return &sample, nil
}

// SampleID is stable for a (user, competition, UTC day), so a resubmission
// for the same day overwrites rather than duplicates.
func SampleID(userID, competitionID string, date time.Time) string {
	return fmt.Sprintf("%s-%s-%d", userID, competitionID, domain.SampleDay(date).Unix())
}

func normalizeSource(source string) string {
	source = strings.TrimSpace(source)
	if source == "" {
		return domain.DefaultFitnessSource
	}
	return cases.Lower(language.Und).String(source)
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

func parseStats(fields map[string]string) (*domain.AggregatedFitnessStats, error) {
	stats := &domain.AggregatedFitnessStats{Source: fields[fieldSource]}

	var err error
	if stats.TotalSteps, err = parseInt(fields, fieldTotalSteps); err != nil {
		return nil, err
	}
	if stats.TotalActiveMinutes, err = parseInt(fields, fieldTotalActiveMinutes); err != nil {
		return nil, err
	}
	if stats.TotalDistance, err = parseFloat(fields, fieldTotalDistance); err != nil {
		return nil, err
	}
	if stats.TotalCalories, err = parseFloat(fields, fieldTotalCalories); err != nil {
		return nil, err
	}
	if v, ok := fields[fieldLastSyncedAt]; ok && v != "" {
		if stats.LastSyncedAt, err = time.Parse(time.RFC3339Nano, v); err != nil {
			return nil, deserializationError(fieldLastSyncedAt, err)
		}
	}
	return stats, nil
}

func parseInt(fields map[string]string, name string) (int64, error) {
	v, ok := fields[name]
	if !ok || v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, deserializationError(name, err)
	}
	return n, nil
}

func parseFloat(fields map[string]string, name string) (float64, error) {
	v, ok := fields[name]
	if !ok || v == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, deserializationError(name, err)
	}
	return f, nil
}

func deserializationError(field string, err error) error {
	return fmt.Errorf(ErrMsgParseStatsField, field, errors.Join(domain.ErrDeserialization, err))
}
