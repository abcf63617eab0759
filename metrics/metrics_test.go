package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/optimode/emailverify/metrics"
)

func TestMetrics_ObserveCheck(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())

	m.ObserveCheck("mx", metrics.OutcomePass, 10*time.Millisecond)
	m.ObserveCheck("mx", metrics.OutcomeFailOpen, time.Second)
	m.ObserveCheck("burner", metrics.OutcomeFail, 5*time.Millisecond)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckOutcome.WithLabelValues("mx", metrics.OutcomePass)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckOutcome.WithLabelValues("mx", metrics.OutcomeFailOpen)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CheckOutcome.WithLabelValues("burner", metrics.OutcomeFail)))
	assert.Equal(t, 2, testutil.CollectAndCount(m.CheckLatency))
}

func TestMetrics_IncrementVerdict(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	m.IncrementVerdict("valid")
	m.IncrementVerdict("valid")
	assert.Equal(t, 2.0, testutil.ToFloat64(m.Verdicts.WithLabelValues("valid")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *metrics.Metrics
	assert.NotPanics(t, func() {
		m.ObserveCheck("mx", metrics.OutcomePass, time.Millisecond)
		m.IncrementVerdict("invalid")
	})
}
