// Package observability exposes Prometheus instrumentation for analyzer
// execution. Embedders mount the handler; the CLI runs without it.
package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Analyzer kind label values.
const (
	KindPattern = "pattern"
	KindMetric  = "metric"
)

// Metrics holds the analyzer execution instruments.
type Metrics struct {
	Runs     *prometheus.CounterVec
	Faults   *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

// NewMetrics registers the analyzer instruments with the given registerer.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)

	return &Metrics{
		Runs: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smellhound_analyzer_runs_total",
			Help: "Analyzer invocations by kind and code.",
		}, []string{"kind", "code"}),
		Faults: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "smellhound_analyzer_faults_total",
			Help: "Analyzer invocations that panicked, by kind and code.",
		}, []string{"kind", "code"}),
		Duration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "smellhound_analyzer_duration_seconds",
			Help:    "Analyzer invocation latency by kind and code.",
			Buckets: prometheus.DefBuckets,
		}, []string{"kind", "code"}),
	}
}

// Handler returns an http.Handler serving the /metrics scrape endpoint for
// the given registry.
func Handler(registry *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
