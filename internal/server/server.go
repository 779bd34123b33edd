// Package server assembles the HTTP surface: endpoint routes, health and
// readiness probes, Prometheus metrics and the shared middleware chain.
package server

import (
	"context"
	"net/http"
	"time"

	apphttp "creator-api/internal/common/http"
	"creator-api/internal/common/logger"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Pinger reports backing store availability for /ready.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Route binds a method+path pattern to an endpoint handler.
type Route struct {
	Pattern string
	Handler http.Handler
}

type Options struct {
	Routes       []Route
	Pinger       Pinger
	Logger       logger.Logger
	ReadyTimeout time.Duration
}

// NewRouter returns the fully wrapped handler for the API server.
func NewRouter(opts Options) http.Handler {
	log := opts.Logger
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	readyTimeout := opts.ReadyTimeout
	if readyTimeout == 0 {
		readyTimeout = 2 * time.Second
	}

	mux := http.NewServeMux()
	for _, route := range opts.Routes {
		mux.Handle(route.Pattern, route.Handler)
	}

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		apphttp.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "healthy",
			"time":   time.Now().Format(time.RFC3339),
		})
	})
	mux.HandleFunc("GET /ready", readyHandler(opts.Pinger, readyTimeout, log))
	mux.Handle("GET /metrics", promhttp.Handler())

	return chain(mux, requestID, recovery(log), accessLog(log))
}

func readyHandler(pinger Pinger, timeout time.Duration, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if pinger != nil {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()
			if err := pinger.Ping(ctx); err != nil {
				log.Warn("Readiness check failed", map[string]interface{}{"error": err.Error()})
				apphttp.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
					"status": "not_ready",
					"time":   time.Now().Format(time.RFC3339),
				})
				return
			}
		}
		apphttp.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ready",
			"time":   time.Now().Format(time.RFC3339),
		})
	}
}
