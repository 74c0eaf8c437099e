package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"smart-life-guard/internal/metrics"
)

// Metrics records request counts and latency against the route pattern, so
// /api/v1/devices/{id} stays one series regardless of id.
func Metrics(m *metrics.Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			wrapped := &responseWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(wrapped, r)

			pattern := r.URL.Path
			if routeCtx := chi.RouteContext(r.Context()); routeCtx != nil {
				if p := routeCtx.RoutePattern(); p != "" {
					pattern = p
				}
			}

			m.RequestsTotal.WithLabelValues(r.Method, pattern, strconv.Itoa(wrapped.status)).Inc()
			m.RequestDuration.WithLabelValues(r.Method, pattern).Observe(time.Since(started).Seconds())
		})
	}
}
