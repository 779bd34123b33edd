// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_requests_total",
			Help: "Total number of handled API requests by endpoint and outcome",
		},
		[]string{"endpoint", "status"},
	)

	RequestErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "api_request_errors_total",
			Help: "Total number of failed API requests by error code",
		},
		[]string{"endpoint", "error_code"},
	)

	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "api_request_duration_seconds",
			Help:    "Duration of API request processing in seconds",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 20, 40, 60},
		},
		[]string{"endpoint"},
	)

	RequestsActive = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "api_requests_active",
			Help: "Number of in-flight requests per endpoint",
		},
		[]string{"endpoint"},
	)

	CompletionSchemaViolations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "completion_schema_violations_total",
			Help: "Completion results that did not match the requested output schema",
		},
		[]string{"endpoint"},
	)

	WorkspacePagesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "workspace_pages_created_total",
			Help: "Pages created in the workspace service by triage category",
		},
		[]string{"category"},
	)
)
