// Package metrics exposes Prometheus instruments for the residence workflow.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for workflow operations. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Step commits by residence kind, step and outcome
	StepCommits *prometheus.CounterVec

	// Cursor moves by residence kind and reason
	Transitions *prometheus.CounterVec

	// Rejected moves by operation and cause (illegal, conflict, ineligible)
	Rejections *prometheus.CounterVec

	// Service operation latency
	OperationLatency *prometheus.HistogramVec
}

// New creates a Metrics instance registered on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer registers the instruments on reg. Tests pass a fresh
// registry to avoid duplicate registration.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		StepCommits: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_desk_residence_step_commits_total",
			Help: "Step transactions recorded by residence kind, step and outcome",
		}, []string{"kind", "step", "outcome"}),

		Transitions: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_desk_residence_transitions_total",
			Help: "Cursor moves by residence kind and reason",
		}, []string{"kind", "reason"}),

		Rejections: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "travel_desk_residence_rejections_total",
			Help: "Refused workflow operations by operation and cause",
		}, []string{"operation", "cause"}),

		OperationLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "travel_desk_residence_operation_duration_seconds",
			Help:    "Duration of residence service operations",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"operation"}),
	}
}

// IncrementCommit records a step commit outcome.
func (m *Metrics) IncrementCommit(kind, step, outcome string) {
	if m != nil {
		m.StepCommits.WithLabelValues(kind, step, outcome).Inc()
	}
}

// IncrementTransition records a cursor move.
func (m *Metrics) IncrementTransition(kind, reason string) {
	if m != nil {
		m.Transitions.WithLabelValues(kind, reason).Inc()
	}
}

// IncrementRejection records a refused operation.
func (m *Metrics) IncrementRejection(operation, cause string) {
	if m != nil {
		m.Rejections.WithLabelValues(operation, cause).Inc()
	}
}

// ObserveOperation records how long an operation took.
func (m *Metrics) ObserveOperation(operation string, d time.Duration) {
	if m != nil {
		m.OperationLatency.WithLabelValues(operation).Observe(d.Seconds())
	}
}
