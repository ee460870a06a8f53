// Package metrics holds the prometheus instruments exposed at /metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry is the registry all service metrics are registered with.
var Registry = prometheus.NewRegistry()

var factory = promauto.With(Registry)

// HTTPRequestsTotal counts handled requests by method, path and status code.
var HTTPRequestsTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hospital",
	Name:      "http_requests_total",
	Help:      "Total number of HTTP requests handled",
}, []string{"method", "path", "status"})

// StatsSnapshotsTotal counts stats snapshots computed from live counts.
var StatsSnapshotsTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "hospital",
	Name:      "stats_snapshots_total",
	Help:      "Total number of stats snapshots synthesized from live counts",
})

// StatsFallbacksTotal counts stats requests served from the static fallback.
var StatsFallbacksTotal = factory.NewCounter(prometheus.CounterOpts{
	Namespace: "hospital",
	Name:      "stats_fallbacks_total",
	Help:      "Total number of stats requests that fell back to static values because live counts were unavailable",
})

// DocumentsCreatedTotal counts created documents by collection.
var DocumentsCreatedTotal = factory.NewCounterVec(prometheus.CounterOpts{
	Namespace: "hospital",
	Name:      "documents_created_total",
	Help:      "Total number of documents created, by collection",
}, []string{"collection"})
