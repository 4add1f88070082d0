package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestKeys(t *testing.T) {
	date := time.Date(2026, 2, 14, 23, 30, 0, 0, time.FixedZone("UTC-5", -5*60*60))

	assert.Equal(t, "fitness:u1:c1:2026-02-15", FitnessSampleKey("u1", "c1", date))
	assert.Equal(t, "fitness_stats:u1:c1", FitnessStatsKey("u1", "c1"))
	assert.Equal(t, "leaderboard:c1", LeaderboardKey("c1"))
	assert.Equal(t, "user_details:c1:u1", UserDetailsKey("c1", "u1"))
	assert.Equal(t, "prizes:c1", PrizesKey("c1"))
	assert.Equal(t, "leaderboard:c1", LeaderboardChannel("c1"))
}

func TestCompetitionFromChannel(t *testing.T) {
	tests := []struct {
		channel string
		want    string
		ok      bool
	}{
		{"leaderboard:c1", "c1", true},
		{"leaderboard:with:colon", "with:colon", true},
		{"leaderboard:", "", false},
		{"prizes:c1", "", false},
		{"", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.channel, func(t *testing.T) {
			got, ok := CompetitionFromChannel(tt.channel)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
