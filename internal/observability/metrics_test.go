package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Sumatoshi-tech/smellhound/internal/harness"
	"github.com/Sumatoshi-tech/smellhound/internal/observability"
	"github.com/Sumatoshi-tech/smellhound/internal/registry"
	"github.com/Sumatoshi-tech/smellhound/pkg/uast/node"
)

type countingMetric struct{}

func (*countingMetric) Evaluate(*node.Node) int { return 1 }

type faultingMetric struct{}

func (*faultingMetric) Evaluate(*node.Node) int { panic("boom") }

func TestMetrics_CountRunsAndFaults(t *testing.T) {
	t.Parallel()

	promRegistry := prometheus.NewRegistry()
	instruments := observability.NewMetrics(promRegistry)

	entries := []registry.Entry[registry.Metric]{
		{Name: "ok", Code: "T1", Make: func() registry.Metric { return &countingMetric{} }},
		{Name: "faulty", Code: "T2", Make: func() registry.Metric { return &faultingMetric{} }},
	}

	runner := &harness.Runner{Workers: 1, Metrics: instruments}
	results := runner.RunMetricEntries(context.Background(), entries, node.New(node.UASTFile, ""))

	require.Len(t, results, 2)
	require.Error(t, results[1].Err)

	runs := testutil.ToFloat64(instruments.Runs.WithLabelValues(observability.KindMetric, "T1")) +
		testutil.ToFloat64(instruments.Runs.WithLabelValues(observability.KindMetric, "T2"))
	assert.InDelta(t, 2.0, runs, 0)

	assert.InDelta(t, 0.0,
		testutil.ToFloat64(instruments.Faults.WithLabelValues(observability.KindMetric, "T1")), 0)
	assert.InDelta(t, 1.0,
		testutil.ToFloat64(instruments.Faults.WithLabelValues(observability.KindMetric, "T2")), 0)
}

func TestMetrics_RegistersWithoutCollision(t *testing.T) {
	t.Parallel()

	// Both instrument sets live on their own registry, so creating two must
	// not panic on duplicate registration.
	observability.NewMetrics(prometheus.NewRegistry())
	observability.NewMetrics(prometheus.NewRegistry())
}
