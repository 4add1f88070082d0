package cache

// Operation names used in errors and metrics
const (
	OpSet             = "set"
	OpGet             = "get"
	OpDelete          = "delete"
	OpExists          = "exists"
	OpZAdd            = "zadd"
	OpZRevRange       = "zrevrange"
	OpZRevRank        = "zrevrank"
	OpZScore          = "zscore"
	OpZCard           = "zcard"
	OpPublish         = "publish"
	OpPSubscribe      = "psubscribe"
	OpIncrementFields = "increment_fields"
	OpGetFields       = "get_fields"
	OpPing            = "ping"
)

// Key prefixes
const (
	prefixFitness     = "fitness"
	prefixStats       = "fitness_stats"
	prefixLeaderboard = "leaderboard"
	prefixUserDetails = "user_details"
	prefixPrizes      = "prizes"
)

// SubscriptionBufferSize is how many messages a pattern subscription buffers
// before the relay starts falling behind.
const SubscriptionBufferSize = 256

// Error message constants
const (
	ErrMsgParseRedisURL    = "failed to parse redis url"
	ErrMsgPingRedis        = "failed to reach redis"
	ErrMsgUnsupportedValue = "unsupported message type"
)

// Log message constants
const (
	LogMsgCacheOpFailed       = "Cache operation failed"
	LogMsgSubscriptionStarted = "Pattern subscription started"
	LogMsgSubscriptionClosed  = "Pattern subscription closed"
)
