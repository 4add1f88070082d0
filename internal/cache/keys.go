package cache

import (
	"fmt"
	"time"
)

// FitnessSampleKey is fitness:{user}:{competition}:{YYYY-MM-DD}, using the UTC calendar day.
func FitnessSampleKey(userID, competitionID string, date time.Time) string {
	return fmt.Sprintf("%s:%s:%s:%s", prefixFitness, userID, competitionID, date.UTC().Format("2006-01-02"))
}

// FitnessStatsKey is fitness_stats:{user}:{competition}.
func FitnessStatsKey(userID, competitionID string) string {
	return fmt.Sprintf("%s:%s:%s", prefixStats, userID, competitionID)
}

// LeaderboardKey is the ranking set for a competition.
func LeaderboardKey(competitionID string) string {
	return fmt.Sprintf("%s:%s", prefixLeaderboard, competitionID)
}

// UserDetailsKey is user_details:{competition}:{user}.
func UserDetailsKey(competitionID, userID string) string {
	return fmt.Sprintf("%s:%s:%s", prefixUserDetails, competitionID, userID)
}

// PrizesKey is prizes:{competition}.
func PrizesKey(competitionID string) string {
	return fmt.Sprintf("%s:%s", prefixPrizes, competitionID)
}

// LeaderboardChannel is the pub/sub channel for a competition. It shares its name
// with the ranking set key; Redis keeps channels and keys in separate namespaces.
func LeaderboardChannel(competitionID string) string {
	return fmt.Sprintf("%s:%s", prefixLeaderboard, competitionID)
}

// LeaderboardChannelPattern matches every competition channel.
const LeaderboardChannelPattern = prefixLeaderboard + ":*"

// CompetitionFromChannel strips the channel prefix. ok is false for channels
// outside the leaderboard namespace.
func CompetitionFromChannel(channel string) (string, bool) {
	prefix := prefixLeaderboard + ":"
	if len(channel) <= len(prefix) || channel[:len(prefix)] != prefix {
		return "", false
	}
	return channel[len(prefix):], true
}
