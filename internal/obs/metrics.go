package obs

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Counters exported on /metrics. Upstream calls are labeled by RPC
// operation and outcome so retry storms against a single operation are
// visible without log digging.
var (
	CacheHits = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ratepulse_cache_hits_total",
		Help: "Cache hits by data kind.",
	}, []string{"kind"})

	CacheMisses = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ratepulse_cache_misses_total",
		Help: "Cache misses by data kind.",
	}, []string{"kind"})

	UpstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "ratepulse_upstream_requests_total",
		Help: "Upstream RPC attempts by operation and outcome (ok, http_error, network_error).",
	}, []string{"operation", "outcome"})

	UpstreamLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "ratepulse_upstream_latency_seconds",
		Help:    "Upstream RPC latency by operation.",
		Buckets: prometheus.DefBuckets,
	}, []string{"operation"})
)
