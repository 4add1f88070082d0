package fitness

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sahillather002/challenge-fun-app/internal/cache"
	"github.com/Sahillather002/challenge-fun-app/internal/cache/cachetest"
	"github.com/Sahillather002/challenge-fun-app/internal/domain"
)

var fixedNow = time.Date(2026, 3, 10, 18, 0, 0, 0, time.UTC)

func newTestService(t *testing.T) (Service, *miniredis.Miniredis) {
	t.Helper()
	store, mr := cachetest.New(t)
	return NewService(store, WithClock(func() time.Time { return fixedNow })), mr
}

func syncRequest(steps int64) *domain.FitnessSyncRequest {
	return &domain.FitnessSyncRequest{
		UserID:        "u1",
		CompetitionID: "c1",
		Steps:         steps,
		Distance:      3.2,
		Calories:      210.5,
		ActiveMinutes: 45,
		Date:          time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC),
	}
}

func TestSyncFitnessData_WritesSample(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	sample, err := svc.SyncFitnessData(ctx, syncRequest(5000))
	require.NoError(t, err)

	assert.Equal(t, "u1-c1-1773100800", sample.ID)
	assert.Equal(t, domain.DefaultFitnessSource, sample.Source)
	assert.Equal(t, fixedNow, sample.SyncedAt)

	key := "fitness:u1:c1:2026-03-10"
	assert.True(t, mr.Exists(key))
	assert.Equal(t, domain.FitnessSampleTTL, mr.TTL(key))
	assert.Equal(t, domain.FitnessStatsTTL, mr.TTL("fitness_stats:u1:c1"))

	stored, err := svc.GetDailySample(ctx, "u1", "c1", sample.Date)
	require.NoError(t, err)
	assert.Equal(t, sample.ID, stored.ID)
	assert.Equal(t, int64(5000), stored.Steps)
}

func TestSyncFitnessData_SameDaySameID(t *testing.T) {
	morning := time.Date(2026, 3, 10, 6, 0, 0, 0, time.UTC)
	evening := time.Date(2026, 3, 10, 22, 0, 0, 0, time.UTC)
	nextDay := time.Date(2026, 3, 11, 0, 0, 1, 0, time.UTC)

	assert.Equal(t, SampleID("u1", "c1", morning), SampleID("u1", "c1", evening))
	assert.NotEqual(t, SampleID("u1", "c1", morning), SampleID("u1", "c1", nextDay))
}

func TestSyncFitnessData_Totals(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	first := syncRequest(4000)
	second := syncRequest(6000)
	second.Date = first.Date.AddDate(0, 0, 1)
	second.Source = "Apple_Health"

	_, err := svc.SyncFitnessData(ctx, first)
	require.NoError(t, err)
	_, err = svc.SyncFitnessData(ctx, second)
	require.NoError(t, err)

	stats, err := svc.GetUserStats(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), stats.TotalSteps)
	assert.InDelta(t, 6.4, stats.TotalDistance, 1e-9)
	assert.InDelta(t, 421.0, stats.TotalCalories, 1e-9)
	assert.Equal(t, int64(90), stats.TotalActiveMinutes)
	assert.Equal(t, "apple_health", stats.Source)
	assert.True(t, fixedNow.Equal(stats.LastSyncedAt))
	assert.Equal(t, "u1", stats.UserID)
	assert.Equal(t, "c1", stats.CompetitionID)
}

// Resubmitting a day replaces the sample but is counted again in the totals.
func TestSyncFitnessData_DuplicateSubmission(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := syncRequest(5000)
	_, err := svc.SyncFitnessData(ctx, req)
	require.NoError(t, err)

	again := syncRequest(5000)
	again.Calories = 999
	_, err = svc.SyncFitnessData(ctx, again)
	require.NoError(t, err)

	sample, err := svc.GetDailySample(ctx, "u1", "c1", req.Date)
	require.NoError(t, err)
	assert.Equal(t, int64(5000), sample.Steps)
	assert.InDelta(t, 999.0, sample.Calories, 1e-9)

	stats, err := svc.GetUserStats(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(10000), stats.TotalSteps)
}

func TestSyncFitnessData_ConcurrentNoLostUpdates(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	const writers = 40
	var wg sync.WaitGroup
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.SyncFitnessData(ctx, syncRequest(250))
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stats, err := svc.GetUserStats(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, int64(writers*250), stats.TotalSteps)
	assert.Equal(t, int64(writers*45), stats.TotalActiveMinutes)
}

func TestGetUserStats_NoSubmissions(t *testing.T) {
	svc, _ := newTestService(t)

	stats, err := svc.GetUserStats(context.Background(), "nobody", "c1")
	require.NoError(t, err)
	assert.Equal(t, &domain.AggregatedFitnessStats{UserID: "nobody", CompetitionID: "c1"}, stats)
}

func TestGetUserStats_Expired(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()

	_, err := svc.SyncFitnessData(ctx, syncRequest(5000))
	require.NoError(t, err)

	mr.FastForward(domain.FitnessStatsTTL + time.Second)

	stats, err := svc.GetUserStats(ctx, "u1", "c1")
	require.NoError(t, err)
	assert.Zero(t, stats.TotalSteps)
}

func TestGetUserStats_CorruptTotals(t *testing.T) {
	svc, mr := newTestService(t)

	mr.HSet(cache.FitnessStatsKey("u1", "c1"), fieldTotalSteps, "lots")

	_, err := svc.GetUserStats(context.Background(), "u1", "c1")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrDeserialization)
}

func TestGetDailySample_Miss(t *testing.T) {
	svc, _ := newTestService(t)

	_, err := svc.GetDailySample(context.Background(), "u1", "c1", fixedNow)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestService_InvalidInput(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()

	req := syncRequest(10)
	req.UserID = ""
	_, err := svc.SyncFitnessData(ctx, req)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = svc.GetUserStats(ctx, "u1", "")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_StoreUnavailable(t *testing.T) {
	svc, mr := newTestService(t)
	ctx := context.Background()
	mr.Close()

	_, err := svc.SyncFitnessData(ctx, syncRequest(10))
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	_, err = svc.GetUserStats(ctx, "u1", "c1")
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestNormalizeSource(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", "google_fit"},
		{"   ", "google_fit"},
		{"Fitbit", "fitbit"},
		{" APPLE_HEALTH ", "apple_health"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeSource(tt.in), "input %q", tt.in)
	}
}
