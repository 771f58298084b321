package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultNamespace = "mdm_client"

// Metrics owns a Prometheus registry, the optional HTTP server exposing it
// and the collectors fed by the client's operations.
type Metrics struct {
	// Registry holds every series created by this package.
	Registry *prometheus.Registry

	// Server serves Registry on /metrics. nil when disabled.
	Server *http.Server

	registerer prometheus.Registerer
	namespace  string
}

// NewMetrics creates the registry and, unless disabled, the HTTP server.
// The server is not started; RegisterMetricsLifecycle (or the caller) does that.
func NewMetrics(cfg Config) *Metrics {
	registry := prometheus.NewRegistry()
	registerer := prometheus.WrapRegistererWith(prometheus.Labels{"service": cfg.ServiceName}, registry)

	if !cfg.DisableRuntimeCollectors {
		registerer.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	namespace := cfg.Namespace
	if namespace == "" {
		namespace = defaultNamespace
	}

	m := &Metrics{
		Registry:   registry,
		registerer: registerer,
		namespace:  namespace,
	}

	addr := DefaultAddress
	if cfg.Address != nil {
		addr = *cfg.Address
	}
	if addr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", m.Handler())
		m.Server = &http.Server{Addr: addr, Handler: mux}
	}

	return m
}

// Handler returns the promhttp handler for Registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
