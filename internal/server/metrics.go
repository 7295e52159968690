// This file implements the Prometheus endpoint and per-request metrics of
// the HTTP sidecar.

package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics tracks HTTP-level counters for the sidecar and serves the
// process-wide Prometheus registry, which also carries the arithmetic
// engine's counters from the metrics package.
type Metrics struct {
	handler        http.Handler
	activeRequests prometheus.Gauge
	requestsTotal  *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewMetrics creates the HTTP metrics set and a handler for the default
// registry. Safe to call once per process; the collectors are global.
func NewMetrics() *Metrics {
	return &Metrics{
		handler:        promhttp.Handler(),
		activeRequests: activeRequests,
		requestsTotal:  requestsTotal,
		duration:       requestDuration,
	}
}

var (
	activeRequests = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "bigcalc",
		Name:      "active_requests",
		Help:      "HTTP requests currently in flight.",
	})
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "bigcalc",
		Name:      "requests_total",
		Help:      "HTTP requests served, by path and status code.",
	}, []string{"path", "code"})
	requestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "bigcalc",
		Name:      "request_duration_seconds",
		Help:      "HTTP request duration.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path"})
)

// IncrementActiveRequests records the start of a request.
func (m *Metrics) IncrementActiveRequests() { m.activeRequests.Inc() }

// DecrementActiveRequests records the end of a request.
func (m *Metrics) DecrementActiveRequests() { m.activeRequests.Dec() }

// RecordRequest records one completed request.
func (m *Metrics) RecordRequest(path, code string, elapsed time.Duration) {
	m.requestsTotal.WithLabelValues(path, code).Inc()
	m.duration.WithLabelValues(path).Observe(elapsed.Seconds())
}

// WritePrometheus serves the Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
