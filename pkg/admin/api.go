package admin

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/trontrack/trackd/internal/store"
	"github.com/trontrack/trackd/pkg/logging"
)

// API is the admin HTTP server.
type API struct {
	store      *store.Store
	log        *slog.Logger
	corsConfig CORSConfig
	prefix     string
	version    string
	port       int
	startTime  time.Time

	httpServer *http.Server
	handler    http.Handler
}

// New creates an API listening on the given port. Without options it
// serves a freshly seeded store, logs nothing, and allows every origin.
func New(port int, opts ...Option) *API {
	a := &API{
		log:        logging.Nop(),
		corsConfig: DefaultCORSConfig(),
		prefix:     "/api",
		version:    "2.0.0",
		port:       port,
		startTime:  time.Now(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.store == nil {
		s := store.New()
		s.Seed()
		a.store = s
	}

	mux := http.NewServeMux()
	a.registerRoutes(mux)
	a.handler = a.withMiddleware(mux)

	a.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      a.handler,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}
	return a
}

// Handler returns the fully wrapped handler. Tests mount it on httptest
// servers instead of binding a port.
func (a *API) Handler() http.Handler {
	return a.handler
}

// Start runs the HTTP server until Shutdown is called.
func (a *API) Start() error {
	a.log.Info("admin API listening", "addr", a.httpServer.Addr, "prefix", a.prefix)
	if err := a.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("admin API server: %w", err)
	}
	return nil
}

// Shutdown stops the server, waiting for in-flight requests.
func (a *API) Shutdown(ctx context.Context) error {
	return a.httpServer.Shutdown(ctx)
}

// Uptime returns whole seconds since the API was created.
func (a *API) Uptime() int64 {
	return int64(time.Since(a.startTime).Seconds())
}

// withMiddleware wraps the mux with, outermost first: CORS, request
// logging, and metrics.
func (a *API) withMiddleware(handler http.Handler) http.Handler {
	return a.corsMiddleware(a.loggingMiddleware(metricsMiddleware(handler)))
}
