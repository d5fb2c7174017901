// Option functions for configuring the API.

package admin

import (
	"log/slog"

	"github.com/trontrack/trackd/internal/store"
)

// Option configures an API.
type Option func(*API)

// WithStore sets the backing store. Tests inject fresh seeded stores for
// isolation; if unset, New seeds its own.
func WithStore(s *store.Store) Option {
	return func(a *API) { a.store = s }
}

// WithLogger sets the request logger. Defaults to a no-op logger.
func WithLogger(log *slog.Logger) Option {
	return func(a *API) { a.log = log }
}

// WithCORS sets the CORS configuration. The default allows every origin.
func WithCORS(cfg CORSConfig) Option {
	return func(a *API) { a.corsConfig = cfg }
}

// WithPrefix sets the path prefix for resource routes. Defaults to /api.
func WithPrefix(prefix string) Option {
	return func(a *API) { a.prefix = prefix }
}

// WithVersion sets the version string reported by health and status.
func WithVersion(version string) Option {
	return func(a *API) { a.version = version }
}
