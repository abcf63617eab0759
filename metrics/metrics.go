// Package metrics provides Prometheus collectors for email verification.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Check outcomes.
const (
	OutcomePass     = "pass"
	OutcomeFail     = "fail"
	OutcomeFailOpen = "fail_open"
)

// Metrics provides observability for the verifier. A nil *Metrics is
// valid and records nothing.
type Metrics struct {
	// Check durations by check
	CheckLatency *prometheus.HistogramVec

	// Check outcomes by check and outcome
	CheckOutcome *prometheus.CounterVec

	// Final verdicts by result ("valid", "invalid", "malformed")
	Verdicts *prometheus.CounterVec
}

// New creates a Metrics instance with all collectors registered on reg.
// Pass prometheus.DefaultRegisterer to expose them on the default registry.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		CheckLatency: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "emailverify_check_duration_seconds",
			Help:    "Duration of individual verification checks",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		}, []string{"check"}), // check: "syntax", "mx", "burner", "compile"

		CheckOutcome: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emailverify_check_outcomes_total",
			Help: "Total check outcomes by check and outcome",
		}, []string{"check", "outcome"}),

		Verdicts: f.NewCounterVec(prometheus.CounterOpts{
			Name: "emailverify_verdicts_total",
			Help: "Total verification verdicts",
		}, []string{"result"}),
	}
}

// ObserveCheck records the duration and outcome of a check.
func (m *Metrics) ObserveCheck(check, outcome string, d time.Duration) {
	if m != nil {
		m.CheckLatency.WithLabelValues(check).Observe(d.Seconds())
		m.CheckOutcome.WithLabelValues(check, outcome).Inc()
	}
}

// IncrementVerdict records a final verdict.
func (m *Metrics) IncrementVerdict(result string) {
	if m != nil {
		m.Verdicts.WithLabelValues(result).Inc()
	}
}
