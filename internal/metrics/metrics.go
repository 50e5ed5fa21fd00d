// Package metrics exposes the proxy's Prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"gophertunnel_proxy/internal/remap"
)

const namespace = "proxy"

// Metrics holds every collector on a private registry.
type Metrics struct {
	registry *prometheus.Registry

	ConnectionsActive prometheus.Gauge
	ConnectionsTotal  prometheus.Counter
	ReadTimeouts      prometheus.Counter
	SessionErrors     *prometheus.CounterVec
	Remapped          *prometheus.CounterVec
	Overwrites        *prometheus.CounterVec
}

// New registers the collectors on a new registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ConnectionsActive: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "connections_active",
			Help:      "Client connections currently relayed.",
		}),
		ConnectionsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "connections_total",
			Help:      "Client connections accepted.",
		}),
		ReadTimeouts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "read_timeouts_total",
			Help:      "Client connections closed for being idle.",
		}),
		SessionErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "session_errors_total",
			Help:      "Sessions that failed, by stage.",
		}, []string{"stage"}),
		Remapped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "remapped_fields_total",
			Help:      "Packet fields whose identifier was rewritten, by table.",
		}, []string{"table"}),
		Overwrites: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "catalog_overwrites_total",
			Help:      "Catalog registrations that replaced an earlier one, by table.",
		}, []string{"table", "identical"}),
	}
	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ConnectionsActive,
		m.ConnectionsTotal,
		m.ReadTimeouts,
		m.SessionErrors,
		m.Remapped,
		m.Overwrites,
	)
	return m
}

// Registry returns the registry the collectors live on.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveOverwrite counts a catalog overwrite.
func (m *Metrics) ObserveOverwrite(o remap.Overwrite) {
	identical := "false"
	if o.Identical() {
		identical = "true"
	}
	m.Overwrites.WithLabelValues(o.Table, identical).Inc()
}
