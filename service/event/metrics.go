package event

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	eventsCreatedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airsim",
		Name:      "events_created_total",
		Help:      "Number of event instances committed",
	}, []string{"event_id"})

	eventCreateFailedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airsim",
		Name:      "event_create_failed_total",
		Help:      "Number of rejected or failed event creations",
	}, []string{"code"})

	modifiersMaterializedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "airsim",
		Name:      "modifiers_materialized_total",
		Help:      "Number of metric modifier rows written",
	}, []string{"kind"})

	headCacheHitTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "airsim",
		Name:      "event_list_head_cache_hit_total",
		Help:      "Number of polls answered from the seq head cache",
	})

	modifierQueryDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "airsim",
		Name:      "modifier_query_duration_seconds",
		Help:      "Latency of active modifier queries",
		Buckets:   prometheus.DefBuckets,
	})
)
