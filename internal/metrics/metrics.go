// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Metrics struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	DiagRunsTotal   *prometheus.CounterVec
	ExportsTotal    prometheus.Counter
}

func New() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slg_http_requests_total",
			Help: "HTTP requests by method, path pattern, and status class.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "slg_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		DiagRunsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "slg_diagnostic_runs_total",
			Help: "Diagnostic runs by terminal outcome.",
		}, []string{"outcome"}),
		ExportsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "slg_device_exports_total",
			Help: "Device CSV exports served.",
		}),
	}

	registry.MustRegister(m.RequestsTotal, m.RequestDuration, m.DiagRunsTotal, m.ExportsTotal)
	return m
}

// Handler serves the /metrics endpoint from this registry only.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
