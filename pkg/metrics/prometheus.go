// Package metrics provides Prometheus metrics for the SkyQuiz service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Default metrics configuration constants.
const (
	defaultRefreshInterval = 10 * time.Second
)

// Manager manages all Prometheus metrics for the SkyQuiz service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	refreshInterval  time.Duration
	registry         prometheus.Registerer

	// Gameplay Metrics - What really matters for a quiz
	roundsStarted      prometheus.Counter
	roundsCompleted    prometheus.Counter
	questionsGenerated prometheus.Counter
	answers            *prometheus.CounterVec
	questionPoints     prometheus.Histogram
	roundScore         prometheus.Histogram

	// Imagery Metrics - Resolution chain behavior
	imageResolutions    *prometheus.CounterVec
	imageLookupErrors   *prometheus.CounterVec
	imageResolveLatency prometheus.Histogram
	prefetchQueueDepth  prometheus.Gauge
	prefetchWorkerCount prometheus.Gauge

	// Store Metrics - Key/value persistence
	storeOperations *prometheus.CounterVec
	storeErrors     *prometheus.CounterVec
	storeOpLatency  *prometheus.HistogramVec

	// Leaderboard Metrics
	leaderboardSaves  prometheus.Counter
	leaderboardResets prometheus.Counter
	leaderboardSize   prometheus.Gauge

	// Session Metrics - Operational health
	activeSessions    prometheus.Gauge
	sessionsExpired   prometheus.Counter
	countdownExpiries prometheus.Counter
	catalogSize       prometheus.Gauge

	// HTTP Performance Metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	// System Performance Metrics
	systemMemoryUsage    prometheus.Gauge
	systemGoroutineCount prometheus.Gauge
	systemGCPauseTime    prometheus.Histogram
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "skyquiz",
		subsystem:        "game",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		refreshInterval:  defaultRefreshInterval,
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// RefreshInterval reports how often gauge metrics should be refreshed.
func (m *Manager) RefreshInterval() time.Duration {
	return m.refreshInterval
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() { //nolint:funlen // long function required for comprehensive metrics initialization
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Gameplay Metrics - Focus on what drives the game loop
	m.roundsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_started_total",
		Help:      "Total number of quiz rounds started",
	})

	m.roundsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rounds_completed_total",
		Help:      "Total number of quiz rounds played to completion",
	})

	m.questionsGenerated = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "questions_generated_total",
		Help:      "Total number of questions generated",
	})

	m.answers = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "answers_total",
			Help:      "Total number of answers by outcome (correct, incorrect, timeout)",
		},
		[]string{"outcome"},
	)

	m.questionPoints = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "question_points",
		Help:      "Histogram of points awarded per answered question",
		Buckets:   []float64{0, 100, 120, 140, 160, 180, 200, 240, 300, 400},
	})

	m.roundScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "round_score",
		Help:      "Histogram of final scores for completed rounds",
		Buckets:   []float64{0, 250, 500, 1000, 1500, 2000, 3000, 4000, 6000},
	})

	// Imagery Metrics - Which tier of the resolution chain served the image
	m.imageResolutions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "image_resolutions_total",
			Help:      "Total number of image resolutions by serving source",
		},
		[]string{"source"},
	)

	m.imageLookupErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "image_lookup_errors_total",
			Help:      "Total number of failed image lookups by tier",
		},
		[]string{"tier"},
	)

	m.imageResolveLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "image_resolve_latency_milliseconds",
		Help:      "End-to-end image resolution latency in milliseconds",
		Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000, 2500, 5000},
	})

	m.prefetchQueueDepth = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prefetch_queue_depth",
		Help:      "Current number of aircraft queued for image prefetch",
	})

	m.prefetchWorkerCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "prefetch_worker_count",
		Help:      "Current number of prefetch workers",
	})

	// Store Metrics - Key/value persistence health
	m.storeOperations = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_operations_total",
			Help:      "Total number of key/value store operations by backend and operation",
		},
		[]string{"backend", "operation"},
	)

	m.storeErrors = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_errors_total",
			Help:      "Total number of key/value store errors by backend and operation",
		},
		[]string{"backend", "operation"},
	)

	m.storeOpLatency = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "store_operation_latency_milliseconds",
			Help:      "Key/value store operation latency in milliseconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"backend", "operation"},
	)

	// Leaderboard Metrics
	m.leaderboardSaves = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_saves_total",
		Help:      "Total number of scores saved to the leaderboard",
	})

	m.leaderboardResets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_resets_total",
		Help:      "Total number of leaderboard resets",
	})

	m.leaderboardSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_size",
		Help:      "Current number of leaderboard entries",
	})

	// Session Metrics - System stability indicators
	m.activeSessions = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "active_sessions",
		Help:      "Current number of active round sessions",
	})

	m.sessionsExpired = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "sessions_expired_total",
		Help:      "Total number of idle sessions evicted by the janitor",
	})

	m.countdownExpiries = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "countdown_expiries_total",
		Help:      "Total number of questions that ran out of time",
	})

	m.catalogSize = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_size",
		Help:      "Number of aircraft in the loaded catalog",
	})

	// HTTP Performance Metrics - User experience indicators
	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by endpoint and method",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_milliseconds",
			Help:      "HTTP request duration in milliseconds (user experience)",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)

	// System Performance Metrics
	m.systemMemoryUsage = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_memory_usage_bytes",
		Help:      "System memory usage in bytes",
	})

	m.systemGoroutineCount = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_goroutine_count",
		Help:      "Number of goroutines",
	})

	m.systemGCPauseTime = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "system_gc_pause_time_milliseconds",
		Help:      "GC pause time in milliseconds",
		Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 25, 50, 100, 250, 500, 1000},
	})
}

// SetEnabled toggles recording on the global manager.
func SetEnabled(enabled bool) {
	globalManager.enabled = enabled
}

// Gameplay Metrics Functions.

// RecordRoundStarted increments the rounds started counter.
func RecordRoundStarted() {
	if !globalManager.enabled {
		return
	}
	globalManager.roundsStarted.Inc()
}

// RecordRoundCompleted increments the rounds completed counter.
func RecordRoundCompleted() {
	if !globalManager.enabled {
		return
	}
	globalManager.roundsCompleted.Inc()
}

// RecordQuestionGenerated increments the questions generated counter.
func RecordQuestionGenerated() {
	if !globalManager.enabled {
		return
	}
	globalManager.questionsGenerated.Inc()
}

// RecordAnswer records an answer with its outcome label.
func RecordAnswer(outcome string) {
	if !globalManager.enabled {
		return
	}
	globalManager.answers.WithLabelValues(outcome).Inc()
}

// RecordQuestionPoints records the points awarded for a single question.
func RecordQuestionPoints(points float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.questionPoints.Observe(points)
}

// RecordRoundScore records the final score of a completed round.
func RecordRoundScore(score float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.roundScore.Observe(score)
}

// Imagery Metrics Functions.

// RecordImageResolution records which source served an image resolution.
func RecordImageResolution(source string) {
	if !globalManager.enabled {
		return
	}
	globalManager.imageResolutions.WithLabelValues(source).Inc()
}

// RecordImageLookupError records a failed lookup at a resolution tier.
func RecordImageLookupError(tier string) {
	if !globalManager.enabled {
		return
	}
	globalManager.imageLookupErrors.WithLabelValues(tier).Inc()
}

// RecordImageResolveLatency records end-to-end image resolution latency.
func RecordImageResolveLatency(latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.imageResolveLatency.Observe(latencyMs)
}

// UpdatePrefetchQueueDepth sets the current prefetch queue depth.
func UpdatePrefetchQueueDepth(depth int) {
	if !globalManager.enabled {
		return
	}
	globalManager.prefetchQueueDepth.Set(float64(depth))
}

// UpdatePrefetchWorkerCount sets the current prefetch worker count.
func UpdatePrefetchWorkerCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.prefetchWorkerCount.Set(float64(count))
}

// Store Metrics Functions.

// RecordStoreOperation records a key/value store operation.
func RecordStoreOperation(backend, operation string) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOperations.WithLabelValues(backend, operation).Inc()
}

// RecordStoreError records a failed key/value store operation.
func RecordStoreError(backend, operation string) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeErrors.WithLabelValues(backend, operation).Inc()
}

// RecordStoreLatency records key/value store operation latency.
func RecordStoreLatency(backend, operation string, latencyMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.storeOpLatency.WithLabelValues(backend, operation).Observe(latencyMs)
}

// Leaderboard Metrics Functions.

// RecordLeaderboardSave increments the leaderboard saves counter.
func RecordLeaderboardSave() {
	if !globalManager.enabled {
		return
	}
	globalManager.leaderboardSaves.Inc()
}

// RecordLeaderboardReset increments the leaderboard resets counter.
func RecordLeaderboardReset() {
	if !globalManager.enabled {
		return
	}
	globalManager.leaderboardResets.Inc()
}

// UpdateLeaderboardSize sets the current number of leaderboard entries.
func UpdateLeaderboardSize(size int) {
	if !globalManager.enabled {
		return
	}
	globalManager.leaderboardSize.Set(float64(size))
}

// Session Metrics Functions.

// UpdateActiveSessions sets the current number of active sessions.
func UpdateActiveSessions(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.activeSessions.Set(float64(count))
}

// RecordSessionExpired increments the expired sessions counter.
func RecordSessionExpired() {
	if !globalManager.enabled {
		return
	}
	globalManager.sessionsExpired.Inc()
}

// RecordCountdownExpiry increments the countdown expiries counter.
func RecordCountdownExpiry() {
	if !globalManager.enabled {
		return
	}
	globalManager.countdownExpiries.Inc()
}

// UpdateCatalogSize sets the number of aircraft in the catalog.
func UpdateCatalogSize(size int) {
	if !globalManager.enabled {
		return
	}
	globalManager.catalogSize.Set(float64(size))
}

// HTTP Metrics Functions.

// RecordHTTPRequest records an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records HTTP request duration.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, duration float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(duration)
}

// System Performance Metrics Functions.

// UpdateSystemMemoryUsage sets the system memory usage in bytes.
func UpdateSystemMemoryUsage(bytes uint64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemMemoryUsage.Set(float64(bytes))
}

// UpdateSystemGoroutineCount sets the number of goroutines.
func UpdateSystemGoroutineCount(count int) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGoroutineCount.Set(float64(count))
}

// RecordSystemGCPauseTime records GC pause time in milliseconds.
func RecordSystemGCPauseTime(pauseMs float64) {
	if !globalManager.enabled {
		return
	}
	globalManager.systemGCPauseTime.Observe(pauseMs)
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
