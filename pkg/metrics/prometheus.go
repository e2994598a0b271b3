// Package metrics provides Prometheus metrics for the reputation service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the service.
type Manager struct {
	namespace    string
	subsystem    string
	scoreBuckets []float64
	registry     prometheus.Registerer

	// Submission metrics.
	eventsSubmitted prometheus.Counter
	eventsRejected  prometheus.Counter
	submitErrors    prometheus.Counter

	// Scoring metrics.
	recomputes    prometheus.Counter
	recordsPruned prometheus.Gauge
	finalScore    prometheus.Histogram
	tierSizes     *prometheus.GaugeVec

	// Simulation metrics.
	timeAdvances prometheus.Counter
	simulatedDay prometheus.Gauge
	participants prometheus.Gauge
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
		namespace:    "repute",
		subsystem:    "scoring",
		scoreBuckets: prometheus.LinearBuckets(10, 10, 10), // final scores live in [0,100]
		registry:     prometheus.DefaultRegisterer,
	}

	for _, opt := range opts {
		opt(m)
	}

	m.initializeMetrics()
	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.eventsSubmitted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_submitted_total",
		Help:      "Total number of accepted event submissions",
	})

	m.eventsRejected = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "events_rejected_total",
		Help:      "Total number of submissions rejected by role-eligibility policy",
	})

	m.submitErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "submit_errors_total",
		Help:      "Total number of submissions failing with an error",
	})

	m.recomputes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recomputes_total",
		Help:      "Total number of participant score recomputations",
	})

	m.recordsPruned = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "records_pruned_total",
		Help:      "Total number of event records discarded by window pruning",
	})

	m.finalScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "final_score",
		Help:      "Distribution of final clamped scores after recompute",
		Buckets:   m.scoreBuckets,
	})

	m.tierSizes = auto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "tier_participants",
			Help:      "Number of participants currently holding each badge",
		},
		[]string{"tier"},
	)

	m.timeAdvances = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "time_advances_total",
		Help:      "Total number of simulated time advances",
	})

	m.simulatedDay = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "simulated_day_unix",
		Help:      "Current simulated date as a Unix timestamp",
	})

	m.participants = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "participants",
		Help:      "Number of registered participants",
	})
}

// RecordEventSubmitted increments the accepted submissions counter.
func RecordEventSubmitted() {
	globalManager.eventsSubmitted.Inc()
}

// RecordEventRejected increments the policy rejections counter.
func RecordEventRejected() {
	globalManager.eventsRejected.Inc()
}

// RecordSubmitError increments the failed submissions counter.
func RecordSubmitError() {
	globalManager.submitErrors.Inc()
}

// RecordRecompute increments the recompute counter and observes the
// resulting final score.
func RecordRecompute(score float64) {
	globalManager.recomputes.Inc()
	globalManager.finalScore.Observe(score)
}

// UpdateRecordsPruned sets the cumulative pruned-records total.
func UpdateRecordsPruned(total int64) {
	globalManager.recordsPruned.Set(float64(total))
}

// UpdateTierSize sets the participant count for a badge.
func UpdateTierSize(tier string, count int) {
	globalManager.tierSizes.WithLabelValues(tier).Set(float64(count))
}

// RecordTimeAdvance increments the time-advance counter.
func RecordTimeAdvance() {
	globalManager.timeAdvances.Inc()
}

// UpdateSimulatedDay sets the current simulated date.
func UpdateSimulatedDay(unix int64) {
	globalManager.simulatedDay.Set(float64(unix))
}

// UpdateParticipants sets the registered participant count.
func UpdateParticipants(count int) {
	globalManager.participants.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
