package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Recommendation Metrics
	TierItems = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_tier_items_total",
			Help: "Total number of recommendations accepted from each tier",
		},
		[]string{"tier"}, // "similar", "related", "genre", "sequence", "popular", "fallback"
	)

	TierFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_tier_failures_total",
			Help: "Total number of tiers that failed and yielded nothing",
		},
		[]string{"tier"},
	)

	ComposeDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "mediarec_compose_duration_seconds",
			Help:    "Duration of recommendation composition in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"mode"}, // "item", "personalized"
	)

	RulesMined = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mediarec_association_rules",
			Help: "Number of association rules in the current rule set",
		},
	)

	WatchEvents = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_watch_events_total",
			Help: "Total number of lookups appended to the watch history",
		},
		[]string{"type", "repeat"},
	)

	// Catalog Metrics
	CatalogRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_catalog_requests_total",
			Help: "Total number of catalog requests",
		},
		[]string{"endpoint", "status"}, // status: "ok", "error", "not_found"
	)

	CatalogRetries = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "mediarec_catalog_retries_total",
			Help: "Total number of retried catalog http requests",
		},
	)

	CircuitBreakerState = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mediarec_catalog_circuit_breaker_state",
			Help: "Catalog circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
	)

	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_cache_hits_total",
			Help: "Total number of catalog response cache hits",
		},
		[]string{"cache"}, // "genres", "popular"
	)

	CacheMisses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_cache_misses_total",
			Help: "Total number of catalog response cache misses",
		},
		[]string{"cache"},
	)

	// Persistence Metrics
	SnapshotSaves = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_snapshot_saves_total",
			Help: "Total number of snapshot saves",
		},
		[]string{"driver", "status"}, // status: "ok", "error"
	)

	SnapshotResets = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_snapshot_resets_total",
			Help: "Total number of loads that fell back to an empty snapshot",
		},
		[]string{"driver"},
	)

	// API Metrics
	APIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediarec_api_requests_total",
			Help: "Total number of API requests",
		},
		[]string{"method", "route", "status_code"},
	)
)
