package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsRelayed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsRelayed,
			Help: HelpTextEventsRelayed,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Cache Metrics
var (
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCacheErrors,
			Help: HelpTextCacheErrors,
		},
		[]string{LabelOp, LabelKind},
	)
)

// Business Metrics
var (
	ScoreUpdates = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameScoreUpdates,
			Help: HelpTextScoreUpdates,
		},
	)

	LeaderboardReads = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameLeaderboardReads,
			Help: HelpTextLeaderboardReads,
		},
	)

	PrizeCalculations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePrizeCalculations,
			Help: HelpTextPrizeCalculations,
		},
		[]string{LabelResult},
	)

	FitnessSyncs = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameFitnessSyncs,
			Help: HelpTextFitnessSyncs,
		},
	)

	StepsSynced = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStepsSynced,
			Help: HelpTextStepsSynced,
		},
	)

	NotificationsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameNotificationsPublished,
			Help: HelpTextNotificationsPublished,
		},
		[]string{LabelResult},
	)

	RealtimeClients = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: MetricNameRealtimeClients,
			Help: HelpTextRealtimeClients,
		},
		[]string{LabelTransport},
	)

	RealtimeDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameRealtimeDropped,
			Help: HelpTextRealtimeDropped,
		},
	)
)
