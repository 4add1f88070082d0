package leaderboard

// Error message format strings
const (
	ErrMsgUserIDRequired        = "user_id is required"
	ErrMsgCompetitionIDRequired = "competition_id is required"
	ErrMsgNegativePrizePool     = "prize_pool must not be negative"
	ErrMsgUpdateRankingFailed   = "failed to update ranking: %w"
	ErrMsgWriteSnapshotFailed   = "failed to write user details: %w"
	ErrMsgReadRankingFailed     = "failed to read ranking: %w"
	ErrMsgReadSnapshotFailed    = "failed to read user details for %s: %w"
	ErrMsgCountRankingFailed    = "failed to count ranking members: %w"
	ErrMsgReadRankFailed        = "failed to read rank: %w"
	ErrMsgUserNotRanked         = "user %s is not ranked in competition %s: %w"
	ErrMsgCachePrizesFailed     = "failed to cache prizes: %w"
	ErrMsgReadPrizesFailed      = "failed to read prizes: %w"
	ErrMsgPublishFailed         = "failed to publish score update: %w"
)

// Log messages
const (
	LogMsgScoreUpdated        = "Leaderboard score updated"
	LogMsgScoreUpdateFailed   = "Leaderboard score update failed"
	LogMsgPublishFailed       = "Score notification not published"
	LogMsgLeaderboardRead     = "Leaderboard read"
	LogMsgSnapshotMiss        = "User details expired, rendering placeholder"
	LogMsgPrizesCalculated    = "Prizes calculated"
	LogMsgPrizesNoParticipant = "Prize calculation on empty leaderboard"
)

// PrizeIDFormat builds a deterministic prize ID from competition and rank.
const PrizeIDFormat = "prize-%s-%d"
