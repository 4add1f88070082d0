package fitness

// Aggregate hash field names
const (
	fieldUserID             = "user_id"
	fieldCompetitionID      = "competition_id"
	fieldTotalSteps         = "total_steps"
	fieldTotalDistance      = "total_distance"
	fieldTotalCalories      = "total_calories"
	fieldTotalActiveMinutes = "total_active_minutes"
	fieldLastSyncedAt       = "last_synced_at"
	fieldSource             = "source"
)

// Error message format strings
const (
	ErrMsgUserIDRequired        = "user_id is required"
	ErrMsgCompetitionIDRequired = "competition_id is required"
	ErrMsgWriteSampleFailed     = "failed to write fitness sample: %w"
	ErrMsgUpdateStatsFailed     = "failed to update fitness totals: %w"
	ErrMsgReadStatsFailed       = "failed to read fitness totals: %w"
	ErrMsgReadSampleFailed      = "failed to read fitness sample: %w"
	ErrMsgParseStatsField       = "field %s: %w"
)

// Log messages
const (
	LogMsgSampleSynced     = "Fitness sample synced"
	LogMsgSyncFailed       = "Fitness sync failed"
	LogMsgStatsMiss        = "No fitness totals yet, returning zero stats"
	LogMsgStatsReadFailed  = "Failed to read fitness totals"
	LogMsgSampleReadFailed = "Failed to read fitness sample"
)
