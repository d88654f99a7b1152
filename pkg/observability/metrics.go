package observability

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/aretw0/typeline/pkg/playback"
)

// Metrics exposes playback activity as prometheus collectors. Wire it into
// an engine via Hooks and serve the registry with promhttp (the httpstream
// adapter does both).
type Metrics struct {
	commands       *prometheus.CounterVec
	loopCycles     prometheus.Counter
	callbackErrors prometheus.Counter
}

// NewMetrics creates and registers the collectors on reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		commands: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "typeline_commands_total",
				Help: "Playback commands executed, by command kind.",
			},
			[]string{"kind"},
		),
		loopCycles: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "typeline_loop_cycles_total",
				Help: "Completed loop replay cycles.",
			},
		),
		callbackErrors: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "typeline_callback_errors_total",
				Help: "User callback failures that stopped playback.",
			},
		),
	}
	reg.MustRegister(m.commands, m.loopCycles, m.callbackErrors)
	return m
}

// Hooks returns lifecycle hooks feeding the collectors.
func (m *Metrics) Hooks() playback.LifecycleHooks {
	return playback.LifecycleHooks{
		OnCommand: func(kind playback.CommandKind) {
			m.commands.WithLabelValues(string(kind)).Inc()
		},
		OnLoop: func(cycle int) {
			m.loopCycles.Inc()
		},
		OnCallbackError: func(err error) {
			m.callbackErrors.Inc()
		},
	}
}
