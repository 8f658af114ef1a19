// Package metrics provides Prometheus metrics collection for pagekit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Collector holds all Prometheus metrics for the schema server.
type Collector struct {
	// Invocation metrics
	InvocationsTotal   *prometheus.CounterVec
	InvocationDuration *prometheus.HistogramVec

	// Transport metrics
	SchemaFetchesTotal prometheus.Counter
	RequestsInFlight   prometheus.Gauge

	// Config metrics
	ConfigReloads      prometheus.Counter
	ConfigReloadErrors prometheus.Counter
}

// New creates a collector and registers its metrics with reg.
// Pass prometheus.NewRegistry() in tests to avoid the global registry.
func New(reg prometheus.Registerer) *Collector {
	c := &Collector{
		InvocationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "pagekit",
				Name:      "invocations_total",
				Help:      "Total number of action invocations processed",
			},
			[]string{"action", "outcome"},
		),
		InvocationDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "pagekit",
				Name:      "invocation_duration_seconds",
				Help:      "Action handler duration in seconds",
				Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"action"},
		),
		SchemaFetchesTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pagekit",
				Name:      "schema_fetches_total",
				Help:      "Total number of schema fetches",
			},
		),
		RequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Namespace: "pagekit",
				Name:      "requests_in_flight",
				Help:      "Number of requests currently being processed",
			},
		),
		ConfigReloads: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pagekit",
				Name:      "config_reloads_total",
				Help:      "Total number of successful config reloads",
			},
		),
		ConfigReloadErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: "pagekit",
				Name:      "config_reload_errors_total",
				Help:      "Total number of failed config reloads",
			},
		),
	}

	reg.MustRegister(
		c.InvocationsTotal,
		c.InvocationDuration,
		c.SchemaFetchesTotal,
		c.RequestsInFlight,
		c.ConfigReloads,
		c.ConfigReloadErrors,
	)
	return c
}
