package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techmend_http_requests_total",
		Help: "HTTP requests processed, by method, path and status code.",
	}, []string{"method", "path", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "techmend_http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	RequestsCreatedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "techmend_maintenance_requests_created_total",
		Help: "Maintenance requests created since process start.",
	})

	StatusTransitionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "techmend_status_transitions_total",
		Help: "Lifecycle transitions executed, by target status.",
	}, []string{"to"})
)
