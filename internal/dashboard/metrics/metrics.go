// Package metrics provides Prometheus metrics for the dashboard service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OperationFetchSnapshot = "fetch_snapshot"
	OperationEmailReport   = "email_report"

	OutcomeSuccess   = "success"
	OutcomeHTTPError = "http_error"
	OutcomeTransport = "transport_error"
	OutcomeDecode    = "decode_error"
)

var (
	// BackendRequestsTotal counts backend calls by operation and outcome.
	BackendRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "backend_requests_total",
			Help:      "Total number of backend requests",
		},
		[]string{"operation", "outcome"},
	)

	// BackendRequestDuration measures backend call latency.
	BackendRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "dashboard",
			Name:      "backend_request_duration_seconds",
			Help:      "Duration of backend requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"operation"},
	)

	// SupersededResultsTotal counts completions discarded because a newer request was issued.
	SupersededResultsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "dashboard",
			Name:      "superseded_results_total",
			Help:      "Total number of results discarded in favour of a newer request",
		},
		[]string{"operation"},
	)

	// ActiveSessions tracks live view controllers.
	ActiveSessions = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "dashboard",
			Name:      "active_sessions",
			Help:      "Number of live dashboard sessions",
		},
	)
)

// RecordBackendRequest records one backend call.
func RecordBackendRequest(operation, outcome string, duration float64) {
	BackendRequestsTotal.WithLabelValues(operation, outcome).Inc()
	BackendRequestDuration.WithLabelValues(operation).Observe(duration)
}

// RecordSuperseded records a discarded stale result.
func RecordSuperseded(operation string) {
	SupersededResultsTotal.WithLabelValues(operation).Inc()
}
