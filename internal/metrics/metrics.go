// Package metrics holds the Prometheus instruments exported at /metrics.
// A nil *Metrics is valid and records nothing.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "gymtracker"

// Simulation outcomes.
const (
	SimulationOK       = "ok"
	SimulationNoResult = "no_result"
	SimulationError    = "error"
)

// Metrics holds the service collectors. A nil *Metrics records nothing.
type Metrics struct {
	// counters
	Requests         *prometheus.CounterVec
	SessionsFinished prometheus.Counter
	SaveFailures     prometheus.Counter
	AdviceRequests   prometheus.Counter
	Simulations      *prometheus.CounterVec

	// histograms
	RequestDuration prometheus.Histogram
}

// NewRegistry returns a registry with build info, Go runtime and process
// collectors plus any extra collectors.
func NewRegistry(extra ...prometheus.Collector) *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewBuildInfoCollector(),
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	reg.MustRegister(extra...)
	return reg
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Requests: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "The total number of HTTP requests",
		}, []string{"method", "status"}),
		SessionsFinished: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "sessions_finished_total",
			Help:      "The total number of finished workout sessions",
		}),
		SaveFailures: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "progress_save_failures_total",
			Help:      "Finished sessions whose progress could not be persisted",
		}),
		AdviceRequests: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "coach_advice_requests_total",
			Help:      "The total number of coach advice requests",
		}),
		Simulations: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "body_simulations_total",
			Help:      "Body simulation runs by outcome",
		}, []string{"outcome"}),
		RequestDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency",
			Buckets:   prometheus.DefBuckets,
		}),
	}
}

// SessionFinished counts a finished session; saved is false when the ledger
// write failed.
func (m *Metrics) SessionFinished(saved bool) {
	if m == nil {
		return
	}
	m.SessionsFinished.Inc()
	if !saved {
		m.SaveFailures.Inc()
	}
}

func (m *Metrics) AdviceRequested() {
	if m == nil {
		return
	}
	m.AdviceRequests.Inc()
}

// SimulationDone counts a simulation run by outcome.
func (m *Metrics) SimulationDone(outcome string) {
	if m == nil {
		return
	}
	m.Simulations.WithLabelValues(outcome).Inc()
}
