package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "emergency_dashboard"

// Metrics holds the Prometheus collectors for the dashboard service and the worker.
type Metrics struct {
	// Store metrics.
	DistrictUpdates prometheus.Counter
	StoreResets     prometheus.Counter

	// Submission metrics.
	Submissions        *prometheus.CounterVec // labels: source={dashboard,worker}, outcome={success,failed,discarded,cancelled}
	SubmissionDuration *prometheus.HistogramVec
	SubmissionInFlight prometheus.Gauge

	// Outbound simulation service calls.
	SimulationRequests *prometheus.CounterVec // labels: mode={mock,http}, outcome={success,error}
}

// NewMetrics creates the collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer in production and a fresh registry in tests.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		DistrictUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "district_updates_total",
			Help:      "Total district records updated.",
		}),
		StoreResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "store_resets_total",
			Help:      "Total resets of the district store to registry defaults.",
		}),
		Submissions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "submissions_total",
			Help:      "Simulation submissions by source and outcome.",
		}, []string{"source", "outcome"}),
		SubmissionDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "submission_duration_seconds",
			Help:      "Wall time from submit to outcome.",
			Buckets:   []float64{0.1, 0.5, 1, 2.5, 5, 10, 15, 20, 30, 60, 120},
		}, []string{"source"}),
		SubmissionInFlight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "submission_in_flight",
			Help:      "1 while the dashboard is waiting for a simulation outcome.",
		}),
		SimulationRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "simulation_requests_total",
			Help:      "Calls to the simulation strategy by mode and outcome.",
		}, []string{"mode", "outcome"}),
	}

	if reg != nil {
		reg.MustRegister(
			m.DistrictUpdates,
			m.StoreResets,
			m.Submissions,
			m.SubmissionDuration,
			m.SubmissionInFlight,
			m.SimulationRequests,
		)
	}

	return m
}

// NewMetricsForTesting creates unregistered collectors so tests can build as
// many as they like.
func NewMetricsForTesting() *Metrics {
	return NewMetrics(nil)
}
