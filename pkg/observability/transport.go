package observability

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// InstrumentedTransport is an http.RoundTripper that records request
// metrics and delegates to a base transport. Pass it to
// judge0.NewClientWithTransport to instrument a client.
//
// It captures:
//   - judge0_client_requests_total (counter): per request with endpoint and status class labels
//   - judge0_client_request_duration_seconds (histogram): duration with endpoint label
//   - judge0_client_inflight_requests (gauge): incremented while a request is in flight
type InstrumentedTransport struct {
	// Base performs the actual exchange. Nil means http.DefaultTransport.
	Base http.RoundTripper
}

// NewInstrumentedTransport wraps base with metrics recording.
func NewInstrumentedTransport(base http.RoundTripper) *InstrumentedTransport {
	return &InstrumentedTransport{Base: base}
}

// RoundTrip implements http.RoundTripper.
func (t *InstrumentedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()

	InflightRequests.Inc()
	defer InflightRequests.Dec()

	base := t.Base
	if base == nil {
		base = http.DefaultTransport
	}

	endpoint := endpointLabel(req.URL.Path)
	resp, err := base.RoundTrip(req)
	RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())

	if err != nil {
		RequestsTotal.WithLabelValues(endpoint, "error").Inc()
		return nil, err
	}

	// Build a status class label like "2xx", "4xx", "5xx".
	status := strconv.Itoa(resp.StatusCode/100) + "xx"
	RequestsTotal.WithLabelValues(endpoint, status).Inc()
	return resp, nil
}

// endpointLabel maps a request path to a bounded label set so that
// tokens and language ids do not explode metric cardinality.
func endpointLabel(path string) string {
	segments := strings.Split(strings.Trim(path, "/"), "/")
	if len(segments) == 0 || segments[0] == "" {
		return "root"
	}
	if segments[0] == "submissions" && len(segments) > 1 && segments[1] == "batch" {
		return "submissions_batch"
	}
	return segments[0]
}
