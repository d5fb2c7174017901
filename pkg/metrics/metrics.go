// Package metrics owns the Prometheus registry for trackd.
//
// Everything registers through the package-level promauto factory so the
// exposition handler and the instruments always share one registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()
var auto = promauto.With(registry)

// Auto returns the factory bound to the trackd registry.
func Auto() promauto.Factory {
	return auto
}

// Registry returns the underlying registry.
func Registry() *prometheus.Registry {
	return registry
}

// Handler returns the exposition handler for GET /metrics.
func Handler() http.Handler {
	return promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
}
