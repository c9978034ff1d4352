// Package metrics documents the Prometheus metrics exposed by paged.
// The metrics themselves are defined next to the code they observe
// (pkg/paged) to keep the instrumented packages self-contained.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the Prometheus registry used by the library. All metrics
// register automatically via promauto.
var Registry = prometheus.DefaultRegisterer

// Metrics Reference
//
// Pagination metrics (pkg/paged):
//   - paged_pages_total{source, outcome} (Counter): paginate calls by
//     source kind (slice, seq, query) and outcome (ok, invalid_argument,
//     error)
//   - paged_effective_page_size (Histogram): page size after
//     normalization
//   - paged_query_roundtrip_duration_seconds{operation} (Histogram):
//     deferred round-trip duration for count and fetch_range
//
// Example Prometheus queries:
//
//   # Share of requests rejected as invalid
//   sum(rate(paged_pages_total{outcome="invalid_argument"}[5m])) /
//   sum(rate(paged_pages_total[5m]))
//
//   # P95 deferred count latency
//   histogram_quantile(0.95,
//     rate(paged_query_roundtrip_duration_seconds_bucket{operation="count"}[5m]))
