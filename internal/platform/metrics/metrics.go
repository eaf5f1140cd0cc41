// Package metrics holds the prometheus collectors exported on /metrics.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	httpRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests by route/method/code.",
		},
		[]string{"route", "method", "code"},
	)

	httpDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests by route/method/code.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "code"},
	)

	writeOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "series_write_operations_total",
			Help: "Recorded writes by operation and result.",
		},
		[]string{"op", "result"},
	)

	writeDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "series_write_operation_duration_seconds",
			Help:    "Duration of write operations by operation and result.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op", "result"},
	)
)

func init() {
	for _, c := range []prometheus.Collector{httpRequests, httpDuration, writeOps, writeDuration} {
		_ = prometheus.DefaultRegisterer.Register(c)
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}

// ObserveRequest records one served request. route should be the matched mux
// pattern so label cardinality stays bounded.
func ObserveRequest(route, method string, code int, elapsed time.Duration) {
	if route == "" {
		route = "unmatched"
	}
	status := strconv.Itoa(code)
	httpRequests.WithLabelValues(route, method, status).Inc()
	httpDuration.WithLabelValues(route, method, status).Observe(elapsed.Seconds())
}

// ObserveWrite records the outcome of a mutating use case.
func ObserveWrite(op string, started time.Time, err error) {
	result := "success"
	if err != nil {
		result = "error"
	}
	writeOps.WithLabelValues(op, result).Inc()
	writeDuration.WithLabelValues(op, result).Observe(time.Since(started).Seconds())
}
