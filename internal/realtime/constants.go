package realtime

import "time"

// Buffer sizes
const (
	// BroadcastBufferSize is the buffer size for the broadcast channel
	BroadcastBufferSize = 256

	// ClientMessageBuffer is the buffer size for each client's message channel
	ClientMessageBuffer = 64

	// ClientChannelBuffer is the buffer size for register/unregister channels
	ClientChannelBuffer = 16
)

// Connection settings
const (
	// KeepaliveInterval is how often SSE streams send a keepalive
	KeepaliveInterval = 30 * time.Second

	// WriteWait bounds a single websocket write
	WriteWait = 10 * time.Second

	// PongWait is how long a websocket may stay silent before it is dropped
	PongWait = 60 * time.Second

	// PingPeriod must be shorter than PongWait
	PingPeriod = (PongWait * 9) / 10

	// MaxClientMessageSize caps inbound websocket frames
	MaxClientMessageSize = 4096

	// InitialSnapshotLimit is the size of the leaderboard sent on connect
	InitialSnapshotLimit = 100
)

// Snapshot cache defaults
const (
	DefaultSnapshotCacheSize = 256
	DefaultSnapshotCacheTTL  = 2 * time.Second
)

// Message types sent to clients
const (
	MessageTypeConnected         = "connected"
	MessageTypeLeaderboardUpdate = "leaderboard_update"
	MessageTypeScoreUpdate       = "score_update"
	MessageTypeSubscribed        = "subscribed"
	MessageTypeUnsubscribed      = "unsubscribed"
	MessageTypeError             = "error"
	MessageTypeKeepalive         = "keepalive"
)

// Message types received from websocket clients
const (
	ClientActionSubscribe   = "subscribe"
	ClientActionUnsubscribe = "unsubscribe"
)

// Transports
const (
	TransportWebSocket = "websocket"
	TransportSSE       = "sse"
)

// Error messages sent to clients
const (
	ErrMsgUnknownAction        = "unknown message type"
	ErrMsgMissingCompetitionID = "competition_id is required"
	ErrMsgInvalidCompetitionID = "competition_id contains invalid characters or is too long"
	ErrMsgMalformedMessage     = "malformed message"
	ErrMsgStreamingUnsupported = "streaming not supported"
)

// Log messages
const (
	LogMsgClientConnected      = "Realtime client connected"
	LogMsgClientDisconnected   = "Realtime client disconnected"
	LogMsgMessageBroadcast     = "Broadcasting leaderboard message"
	LogMsgBroadcastDropped     = "Broadcast buffer full, message dropped"
	LogMsgWriteError           = "Failed to write realtime message"
	LogMsgUpgradeFailed        = "Websocket upgrade failed"
	LogMsgSnapshotFailed       = "Failed to load leaderboard snapshot"
	LogMsgReadError            = "Websocket closed unexpectedly"
	LogMsgSubscriberRegistered = "Realtime subscriber registered"
	LogMsgInvalidEventPayload  = "Invalid leaderboard event payload"
)
