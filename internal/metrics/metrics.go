// Package metrics holds the Prometheus collectors shared by the HTTP
// middleware and the services. Collectors work unregistered; Register
// exposes them on the default registry.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "vidtube_api_request_duration_seconds",
			Help:    "HTTP request duration in seconds, by route and method.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"route", "method", "status"},
	)

	RequestsInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "vidtube_requests_in_flight",
			Help: "Number of HTTP requests currently being served.",
		},
	)

	MediaOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_media_operations_total",
			Help: "Media gateway calls, by operation, asset kind and result.",
		},
		[]string{"op", "kind", "result"},
	)

	Toggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "vidtube_toggles_total",
			Help: "Like and subscription toggles, by target and resulting state.",
		},
		[]string{"target", "state"},
	)
)

// Register adds every collector to the default registry. Call once at startup.
func Register() {
	prometheus.MustRegister(RequestDuration, RequestsInFlight, MediaOps, Toggles)
}

func Result(err error) string {
	if err != nil {
		return "error"
	}
	return "ok"
}
