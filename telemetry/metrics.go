// Package telemetry exposes run statistics of the protocol as Prometheus
// metrics. Each Metrics owns its registry so that concurrent runs and tests
// never share counters.
package telemetry

import (
	"io"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/katalvlaran/ghs/message"
)

const namespace = "ghsmst"

// Metrics is the set of collectors updated by the round scheduler.
type Metrics struct {
	Registry *prometheus.Registry

	MessagesTotal *prometheus.CounterVec // by flag
	RoundsTotal   prometheus.Counter
	DeferredTotal prometheus.Counter
	MergesTotal   *prometheus.CounterVec // by kind: won, absorbed
	RunsTotal     *prometheus.CounterVec // by outcome
	Phase         prometheus.Gauge
	Nodes         prometheus.Gauge
	TreeWeight    prometheus.Gauge
}

// New builds and registers a fresh set of collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		MessagesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "messages_total",
				Help:      "Protocol messages sent, by flag.",
			},
			[]string{"flag"},
		),
		RoundsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rounds_total",
			Help:      "Scheduler rounds executed.",
		}),
		DeferredTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "deferred_total",
			Help:      "FRAG messages held back by the causal filter.",
		}),
		MergesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "merges_total",
				Help:      "Fragment merges, by kind.",
			},
			[]string{"kind"},
		),
		RunsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "runs_total",
				Help:      "Completed runs, by outcome.",
			},
			[]string{"outcome"},
		),
		Phase: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "phase_max",
			Help:      "Highest phase reached by any node in the last run.",
		}),
		Nodes: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "nodes",
			Help:      "Participants in the last run.",
		}),
		TreeWeight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_weight",
			Help:      "Total weight of the last spanning tree.",
		}),
	}
	m.Registry.MustRegister(
		m.MessagesTotal, m.RoundsTotal, m.DeferredTotal, m.MergesTotal,
		m.RunsTotal, m.Phase, m.Nodes, m.TreeWeight,
	)
	// Pre-create one series per flag so a dump lists all of them.
	for _, f := range message.Flags {
		m.MessagesTotal.WithLabelValues(f.String())
	}

	return m
}

// ObserveMessage counts one sent envelope.
func (m *Metrics) ObserveMessage(f message.Flag) {
	m.MessagesTotal.WithLabelValues(f.String()).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}

// WriteText gathers the registry and writes it in text format.
func (m *Metrics) WriteText(w io.Writer) error {
	mfs, err := m.Registry.Gather()
	if err != nil {
		return err
	}
	for _, mf := range mfs {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return err
		}
	}

	return nil
}
