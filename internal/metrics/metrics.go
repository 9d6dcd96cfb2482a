// Package metrics holds the Prometheus collectors shared by the client and the web server.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for RemoteRequests.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	RemoteRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoweb_remote_requests_total",
			Help: "Total requests sent to the remote task service",
		},
		[]string{"op", "outcome"},
	)
	RemoteDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "todoweb_remote_request_duration_seconds",
			Help:    "Latency of requests to the remote task service",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"op"},
	)
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "todoweb_http_requests_total",
			Help: "Total requests served by the web front end",
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	prometheus.MustRegister(RemoteRequests)
	prometheus.MustRegister(RemoteDuration)
	prometheus.MustRegister(HTTPRequests)
}
