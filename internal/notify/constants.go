package notify

// Error message format strings
const (
	ErrMsgPublishFailed   = "failed to publish leaderboard event: %w"
	ErrMsgSubscribeFailed = "failed to subscribe to leaderboard channels: %w"
)

// Log messages
const (
	LogMsgEventPublished     = "Leaderboard event published"
	LogMsgListenerStarted    = "Leaderboard listener started"
	LogMsgListenerStopped    = "Leaderboard listener stopped"
	LogMsgListenerLost       = "Leaderboard subscription closed by the store"
	LogMsgMalformedMessage   = "Dropping malformed leaderboard message"
	LogMsgUnknownChannel     = "Dropping message from unexpected channel"
	LogMsgRelayHandlerFailed = "Leaderboard event handler failed"
)
