package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

// Webscraper metrics - using explicit registration
var (
	// HTTP request counter
	RequestsTotal *prometheus.CounterVec

	// Invocation counter per function and outcome
	InvocationsTotal *prometheus.CounterVec

	// Invocation duration histogram per function
	InvocationDuration *prometheus.HistogramVec
)

// init creates and registers all metrics with the default registry
func init() {
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webscraper",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "status"},
	)

	InvocationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "webscraper",
			Subsystem: "agent",
			Name:      "invocations_total",
			Help:      "Total action-group invocations",
		},
		[]string{"function", "outcome"},
	)

	InvocationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "webscraper",
			Subsystem: "agent",
			Name:      "invocation_duration_seconds",
			Help:      "Invocation handling duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30},
		},
		[]string{"function"},
	)

	prometheus.MustRegister(RequestsTotal)
	prometheus.MustRegister(InvocationsTotal)
	prometheus.MustRegister(InvocationDuration)
	log.Info().Msg("webscraper metrics registered with Prometheus")
}

// RecordRequest records an HTTP request
func RecordRequest(method, status string) {
	RequestsTotal.WithLabelValues(method, status).Inc()
}

// RecordInvocation records one action-group invocation
func RecordInvocation(function, outcome string, durationSec float64) {
	if function == "" {
		function = "unknown"
	}
	if outcome == "" {
		outcome = "unknown"
	}
	InvocationsTotal.WithLabelValues(function, outcome).Inc()
	InvocationDuration.WithLabelValues(function).Observe(durationSec)
}
