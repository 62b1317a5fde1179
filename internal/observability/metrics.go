package observability

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// RedisErrors counts Redis errors by operation type.
	RedisErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogposts_redis_errors_total",
		Help: "Total number of Redis errors by operation type",
	}, []string{"operation"})

	// DatabaseQueryLatency records database query latency by operation and table.
	DatabaseQueryLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "blogposts_database_query_latency_seconds",
		Help:    "Database query latency in seconds",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation", "table"})

	// LikesApplied counts like operations by outcome (committed or aborted).
	LikesApplied = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogposts_likes_total",
		Help: "Total number of like transactions by outcome",
	}, []string{"outcome"})

	// CascadeDeletes counts post deletions by outcome, each of which
	// removes the post's comments in the same transaction.
	CascadeDeletes = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogposts_cascade_deletes_total",
		Help: "Total number of cascading post deletions by outcome",
	}, []string{"outcome"})

	// FeedPages counts feed pages served, including empty ones.
	FeedPages = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "blogposts_feed_pages_total",
		Help: "Total number of feed pages served",
	}, []string{"result"})
)

// Transaction outcomes and feed results used as metric label values.
const (
	OutcomeCommitted = "committed"
	OutcomeAborted   = "aborted"
	FeedResultPosts  = "posts"
	FeedResultEmpty  = "empty"
)

// ObserveQuery records the latency of a database query, typically via defer.
func ObserveQuery(operation, table string, start time.Time) {
	DatabaseQueryLatency.WithLabelValues(operation, table).Observe(time.Since(start).Seconds())
}
