package handler

// Generic HTTP error messages for client responses.
// Internal error details are never echoed back; handlers and tests share these.
const (
	// HTTP status messages
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query and path parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgMissingPathParam  = "Missing %s path parameter"
	ErrMsgInvalidQueryParam = "Invalid %s query parameter"
	ErrMsgInvalidPathParam  = "Invalid %s path parameter"
	ErrMsgInvalidDate       = "Invalid date, expected YYYY-MM-DD"

	// Fitness error messages
	ErrMsgSyncFitnessFailed    = "Failed to sync fitness data"
	ErrMsgGetStatsFailed       = "Failed to retrieve fitness stats"
	ErrMsgGetDailySampleFailed = "Failed to retrieve daily sample"

	// Leaderboard error messages
	ErrMsgUpdateScoreFailed    = "Failed to update score"
	ErrMsgGetLeaderboardFailed = "Failed to retrieve leaderboard"
	ErrMsgGetUserRankFailed    = "Failed to retrieve user rank"

	// Prize error messages
	ErrMsgCalculatePrizesFailed = "Failed to calculate prizes"
	ErrMsgGetPrizesFailed       = "Failed to retrieve prizes"

	// Activity error messages
	ErrMsgSubmitActivityFailed = "Failed to submit activity"
)

// User-facing messages derived from domain errors
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidInputError  = "Invalid request. Please check your inputs."
	ErrMsgNotFoundError      = "Resource not found."
	ErrMsgNoParticipantsErr  = "Competition has no participants yet"
	ErrMsgUnavailableError   = "Server is temporarily unavailable. Please try again later."
	ErrMsgStoreUnavailable   = "cache unavailable"
)

// Success messages for API responses
const (
	MsgScoreUpdatedSuccess  = "Score updated successfully"
	MsgFitnessSyncedSuccess = "Fitness data synced successfully"
	MsgPrizesCalculated     = "Prizes calculated successfully"
)

// Health statuses
const (
	HealthStatusOK          = "ok"
	HealthStatusUnavailable = "unavailable"
)
