package observability_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emergency-response-dashboard/internal/observability"
)

func TestNewMetrics_RegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := observability.NewMetrics(reg)

	m.DistrictUpdates.Inc()
	m.Submissions.WithLabelValues("dashboard", "success").Inc()
	m.SubmissionDuration.WithLabelValues("dashboard").Observe(1.5)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool)
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["emergency_dashboard_district_updates_total"])
	assert.True(t, names["emergency_dashboard_submissions_total"])
	assert.True(t, names["emergency_dashboard_submission_duration_seconds"])

	assert.Equal(t, 1.0, testutil.ToFloat64(m.DistrictUpdates))
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	reg := prometheus.NewRegistry()
	observability.NewMetrics(reg)

	assert.Panics(t, func() { observability.NewMetrics(reg) })
	assert.NotPanics(t, func() {
		observability.NewMetricsForTesting()
		observability.NewMetricsForTesting()
	})
}
