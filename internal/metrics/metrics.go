// Package metrics collects per-run Prometheus counters for pair resolution
// and can dump them in text exposition format for node_exporter's textfile
// collector.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"pairwalk/internal/resolve"
)

const namespace = "pairwalk"

// Run holds one run's registry. It is not global: every invocation builds
// its own, so tests and repeated runs never collide.
type Run struct {
	Registry *prometheus.Registry

	attempted prometheus.Counter
	resolved  prometheus.Counter
	skipped   prometheus.Counter
	truncated prometheus.Counter
	steps     prometheus.Histogram
	walks     prometheus.Histogram
}

// New registers the pairwalk collectors on a fresh registry.
func New() *Run {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)
	return &Run{
		Registry: reg,
		attempted: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_attempted_total",
			Help:      "Pairs whose mates both mapped to graph vertices.",
		}),
		resolved: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_resolved_total",
			Help:      "Pairs connected by exactly one walk.",
		}),
		skipped: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pairs_skipped_total",
			Help:      "Pairs with an unmapped mate or a mate on a missing vertex.",
		}),
		truncated: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "truncated_total",
			Help:      "Searches that exhausted the step budget.",
		}),
		steps: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "steps",
			Help:      "Extensions performed per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 8),
		}),
		walks: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "walks_found",
			Help:      "Walks found per attempted pair.",
			Buckets:   []float64{0, 1, 2, 4, 8, 16},
		}),
	}
}

// Observe records one pair result.
func (m *Run) Observe(r resolve.Result) {
	switch r.Outcome {
	case resolve.Skipped:
		m.skipped.Inc()
		return
	case resolve.Resolved:
		m.resolved.Inc()
	}
	m.attempted.Inc()
	m.steps.Observe(float64(r.Steps))
	m.walks.Observe(float64(r.Walks))
	if r.Truncated {
		m.truncated.Inc()
	}
}

// WriteTextfile writes the registry to path atomically.
func (m *Run) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
