package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsRelayed      = "leaderboard_events_relayed_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Cache metric names
const (
	MetricNameCacheErrors = "cache_errors_total"
)

// Business metric names
const (
	MetricNameScoreUpdates           = "leaderboard_score_updates_total"
	MetricNameLeaderboardReads       = "leaderboard_reads_total"
	MetricNamePrizeCalculations      = "prize_calculations_total"
	MetricNameFitnessSyncs           = "fitness_syncs_total"
	MetricNameStepsSynced            = "fitness_steps_synced_total"
	MetricNameNotificationsPublished = "leaderboard_notifications_published_total"
	MetricNameRealtimeClients        = "realtime_clients"
	MetricNameRealtimeDropped        = "realtime_messages_dropped_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsRelayed      = "Total number of leaderboard events received from the store and relayed in process"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Cache metric help text
const (
	HelpTextCacheErrors = "Total number of failed cache operations"
)

// Business metric help text
const (
	HelpTextScoreUpdates           = "Total number of accepted score updates"
	HelpTextLeaderboardReads       = "Total number of leaderboard reads"
	HelpTextPrizeCalculations      = "Total number of prize calculations"
	HelpTextFitnessSyncs           = "Total number of accepted fitness samples"
	HelpTextStepsSynced            = "Total steps added to running fitness totals"
	HelpTextNotificationsPublished = "Total number of score notifications handed to the store"
	HelpTextRealtimeClients        = "Current number of connected realtime clients"
	HelpTextRealtimeDropped        = "Total number of realtime messages dropped for slow clients"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelOp        = "op"
	LabelKind      = "kind"
	LabelResult    = "result"
	LabelTransport = "transport"
)

// Label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"

	TransportWebSocket = "websocket"
	TransportSSE       = "sse"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgEventPayloadInvalid = "Leaderboard event payload could not be decoded"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
