// Package observability provides logging, metrics, and tracing.
package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "inkwell_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// PageCacheHits counts whole-page cache hits and misses.
	PageCacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_page_cache_requests_total",
		Help: "Whole-page cache lookups by result (hit/miss/bypass)",
	}, []string{"result"})

	// FollowActions counts follow state transitions by outcome.
	FollowActions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "inkwell_follow_actions_total",
		Help: "Follow/unfollow actions by action and outcome",
	}, []string{"action", "outcome"})
)

// ObserveQuery records the latency of a database query.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
