package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics
type Metrics struct {
	FetchCalls     prometheus.Counter
	FetchFailures  prometheus.Counter
	RowsUpserted   prometheus.Counter
	EntriesSkipped prometheus.Counter
	RunDuration    prometheus.Histogram
	ErrorsCount    *prometheus.CounterVec
}

// NewMetrics creates new prometheus metrics
func NewMetrics(namespace string) *Metrics {
	return &Metrics{
		FetchCalls: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_calls_total",
			Help:      "The total number of pricing calendar requests issued",
		}),
		FetchFailures: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_failures_total",
			Help:      "The total number of pricing calendar requests that failed",
		}),
		RowsUpserted: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rows_upserted_total",
			Help:      "The total number of reward flight rows written to the store",
		}),
		EntriesSkipped: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "entries_skipped_total",
			Help:      "The total number of malformed price entries skipped",
		}),
		RunDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "run_duration_seconds",
			Help:      "Time taken to complete a full pipeline run",
			Buckets:   prometheus.DefBuckets,
		}),
		ErrorsCount: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors",
		}, []string{"operation"}),
	}
}
