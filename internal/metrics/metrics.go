// Package metrics exposes the service's Prometheus collectors.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "gerenciaroi"

// Spend sync outcomes.
const (
	OutcomeSuccess     = "success"
	OutcomeRateLimited = "rate_limited"
	OutcomeFailed      = "failed"
)

type Metrics struct {
	registry *prometheus.Registry

	TrackingBeacons *prometheus.CounterVec
	AttributionRuns prometheus.Counter
	SpendSync       *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m := &Metrics{
		registry: reg,
		TrackingBeacons: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_beacons_total",
			Help:      "Visitor tracking beacons received, by action.",
		}, []string{"action"}),
		AttributionRuns: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "attribution_runs_total",
			Help:      "Sales attribution aggregations computed.",
		}),
		SpendSync: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "spend_sync_total",
			Help:      "Ad account spend sync attempts, by outcome.",
		}, []string{"outcome"}),
	}
	reg.MustRegister(m.TrackingBeacons, m.AttributionRuns, m.SpendSync)
	return m
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
