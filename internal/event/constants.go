package event

// Event schema versioning
const (
	// EventSchemaVersion is the current event schema version
	EventSchemaVersion = "1.0"
)

// Metadata keys
const (
	MetadataKeyChannel = "channel"
)

// Log message constants
const (
	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)
