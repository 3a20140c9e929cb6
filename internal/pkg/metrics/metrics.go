// Package metrics provides Prometheus metrics for recipe-finder.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CatalogRequestsTotal counts outbound catalog calls.
	CatalogRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipefinder",
			Name:      "catalog_requests_total",
			Help:      "Total number of recipe catalog requests",
		},
		[]string{"operation", "status"},
	)

	// CatalogRequestDuration measures outbound catalog call latency.
	CatalogRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recipefinder",
			Name:      "catalog_request_duration_seconds",
			Help:      "Duration of recipe catalog requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// SearchDuration measures end-to-end ingredient searches.
	SearchDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recipefinder",
			Name:      "search_duration_seconds",
			Help:      "Duration of ingredient searches in seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60},
		},
	)

	// SearchResults observes the number of recipes returned per search.
	SearchResults = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "recipefinder",
			Name:      "search_results",
			Help:      "Distribution of recipes returned per search",
			Buckets:   []float64{0, 1, 2, 5, 10, 15, 20},
		},
	)

	// SearchOutcomesTotal counts searches by outcome.
	SearchOutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipefinder",
			Name:      "search_outcomes_total",
			Help:      "Total number of searches by outcome",
		},
		[]string{"outcome"},
	)

	// HTTPRequestsTotal counts inbound HTTP requests.
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "recipefinder",
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	// HTTPRequestDuration measures inbound HTTP latency.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "recipefinder",
			Name:      "http_request_duration_seconds",
			Help:      "Duration of HTTP requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
)

// RecordCatalogRequest records an outbound catalog call.
func RecordCatalogRequest(operation, status string, duration float64) {
	CatalogRequestsTotal.WithLabelValues(operation, status).Inc()
	CatalogRequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordSearch records a finished search.
func RecordSearch(outcome string, results int, duration float64) {
	SearchOutcomesTotal.WithLabelValues(outcome).Inc()
	SearchResults.Observe(float64(results))
	SearchDuration.Observe(duration)
}

// RecordHTTPRequest records an inbound HTTP request.
func RecordHTTPRequest(method, route, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, route).Observe(duration)
}
