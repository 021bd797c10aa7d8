// Package metrics exposes Prometheus instrumentation for the event
// pipeline and the HTTP surface.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "recruitdash"

var (
	eventsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "events_extracted_total",
		Help:      "Normalized events produced, by source converter.",
	}, []string{"source"})

	converterFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "converter_failures_total",
		Help:      "Source converter scans that failed and were skipped.",
	}, []string{"source"})

	aggregations = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "aggregations_total",
		Help:      "Full aggregation passes over all sources.",
	})

	httpRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "http_requests_total",
		Help:      "HTTP requests served, by route and status code.",
	}, []string{"method", "route", "status"})

	httpDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency, by route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})
)

func EventsExtracted(source string, count int) {
	eventsExtracted.WithLabelValues(source).Add(float64(count))
}

func ConverterFailure(source string) {
	converterFailures.WithLabelValues(source).Inc()
}

func AggregationPass() {
	aggregations.Inc()
}

func HTTPRequest(method, route, status string, elapsed time.Duration) {
	httpRequests.WithLabelValues(method, route, status).Inc()
	httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
