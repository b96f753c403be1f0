// Package observability provides Prometheus metrics for the Judge0
// client, recorded by an instrumented http.RoundTripper.
package observability

import "github.com/prometheus/client_golang/prometheus"

// ExecutionBuckets defines histogram buckets suited for code-execution
// latencies, from fast catalog reads to wait=true submissions that
// block for the full sandbox run.
var ExecutionBuckets = []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60}

var (
	// RequestsTotal counts client requests by endpoint and status class.
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "judge0_client_requests_total",
			Help: "Total client requests",
		},
		[]string{"endpoint", "status"},
	)

	// RequestDuration records request duration in seconds by endpoint.
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "judge0_client_request_duration_seconds",
			Help:    "Request duration",
			Buckets: ExecutionBuckets,
		},
		[]string{"endpoint"},
	)

	// InflightRequests tracks the number of requests currently in flight.
	InflightRequests = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "judge0_client_inflight_requests",
			Help: "In-flight client requests",
		},
	)
)

func init() {
	prometheus.MustRegister(
		RequestsTotal,
		RequestDuration,
		InflightRequests,
	)
}
