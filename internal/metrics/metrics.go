// Package metrics provides Prometheus metrics for observability.
// Metrics are organized by domain: HTTP requests, assist flows, search,
// and the key-value store.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	namespace = "biogenius"
)

var (
	// HTTP metrics - track request volume and latency
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests by method, path, and status code",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60},
		},
		[]string{"method", "path"},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_in_flight",
			Help:      "Number of HTTP requests currently being processed",
		},
	)

	// Assist metrics - track the AI content-assist flows
	AssistRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "assist",
			Name:      "requests_total",
			Help:      "Total number of assist requests by flow and result",
		},
		[]string{"flow", "result"},
	)

	AssistRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "assist",
			Name:      "request_duration_seconds",
			Help:      "Assist flow duration in seconds, model round trips included",
			Buckets:   []float64{.1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"flow"},
	)

	// Search metrics - track full-text queries against the index
	SearchQueriesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "queries_total",
			Help:      "Total number of search queries by result",
		},
		[]string{"result"},
	)

	// Store metrics - track key-value blob operations
	StoreOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "operations_total",
			Help:      "Total number of key-value store operations by driver, operation, and result",
		},
		[]string{"driver", "operation", "result"},
	)
)

// ObserveAssist records completion metrics for one assist flow invocation.
func ObserveAssist(flow, result string, durationSeconds float64) {
	AssistRequestsTotal.WithLabelValues(flow, result).Inc()
	AssistRequestDuration.WithLabelValues(flow).Observe(durationSeconds)
}

// ObserveSearch records the outcome of one search query.
func ObserveSearch(result string) {
	SearchQueriesTotal.WithLabelValues(result).Inc()
}

// ObserveStore records the outcome of one key-value store operation.
func ObserveStore(driver, operation string, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	StoreOperationsTotal.WithLabelValues(driver, operation, result).Inc()
}
