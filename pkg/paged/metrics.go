package paged

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Label values for paged_pages_total.
const (
	sourceSlice = "slice"
	sourceSeq   = "seq"
	sourceQuery = "query"

	outcomeOK      = "ok"
	outcomeInvalid = "invalid_argument"
	outcomeError   = "error"
)

// Prometheus metrics for pagination operations.
var (
	pagesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "paged_pages_total",
		Help: "Total pagination calls by source kind and outcome",
	}, []string{"source", "outcome"})

	pageSizes = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "paged_effective_page_size",
		Help:    "Effective page size after normalization",
		Buckets: []float64{1, 10, 25, 50, 100, 250, 1000, 10000},
	})

	queryRoundtripDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "paged_query_roundtrip_duration_seconds",
		Help:    "Deferred source round-trip duration by operation",
		Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
	}, []string{"operation"})
)
