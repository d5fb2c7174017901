package metrics

import "github.com/prometheus/client_golang/prometheus"

// RequestsTotal counts admin API requests by method and response status.
var RequestsTotal = Auto().NewCounterVec(prometheus.CounterOpts{
	Name: "trackd_admin_requests_total",
	Help: "Number of admin API requests served",
}, []string{"method", "status"})

// RequestDuration observes admin API request latency in seconds.
var RequestDuration = Auto().NewHistogram(prometheus.HistogramOpts{
	Name:    "trackd_admin_request_duration_seconds",
	Help:    "Admin API request latency",
	Buckets: prometheus.DefBuckets,
})
