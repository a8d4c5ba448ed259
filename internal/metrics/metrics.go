// Package metrics exposes the Prometheus collectors for analysis runs.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome labels for AnalysesTotal.
const (
	StatusOK            = "ok"
	StatusFetchError    = "fetch_error"
	StatusResourceError = "resource_error"
)

var (
	AnalysesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "wordscope_analyses_total",
			Help: "Completed analysis runs by outcome.",
		},
		[]string{"status"},
	)

	FetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordscope_fetch_duration_seconds",
		Help:    "Wall time of the page fetch.",
		Buckets: prometheus.DefBuckets,
	})

	TokensPerRun = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "wordscope_tokens_per_run",
		Help:    "Distinct tokens aggregated per analysis run.",
		Buckets: prometheus.ExponentialBuckets(1, 4, 8),
	})
)
