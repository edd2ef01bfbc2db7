// Package metrics holds the prometheus instruments for the dashboard.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	PipelineRecomputes prometheus.Counter
	RecomputeDuration  prometheus.Histogram
	FilterMutations    *prometheus.CounterVec
	ExportsTotal       prometheus.Counter
}

func New(namespace string) *Metrics {
	return &Metrics{
		PipelineRecomputes: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_recomputes_total",
			Help:      "Number of filter/sort/paginate pipeline recomputations",
		}),
		RecomputeDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_recompute_seconds",
			Help:      "Time spent recomputing the pipeline",
			Buckets:   prometheus.DefBuckets,
		}),
		FilterMutations: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "filter_mutations_total",
			Help:      "Number of filter state mutations",
		}, []string{"field"}),
		ExportsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exports_total",
			Help:      "Number of spreadsheet exports",
		}),
	}
}
