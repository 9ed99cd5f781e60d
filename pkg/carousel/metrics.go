package carousel

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics counts engine activity. A nil *Metrics records nothing, so
// engines built without one pay no cost.
type Metrics struct {
	Frames  *prometheus.CounterVec
	Loops   *prometheus.CounterVec
	Settles *prometheus.CounterVec
	Resizes *prometheus.CounterVec
	ReInits *prometheus.CounterVec
}

// NewMetrics creates the carousel counters and registers them with reg.
// A nil registerer leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Frames: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carousel",
			Name:      "frames_total",
			Help:      "Animation frames stepped while the track was moving",
		}, []string{"carousel"}),
		Loops: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carousel",
			Name:      "loops_total",
			Help:      "Loop wrap-arounds by direction",
		}, []string{"carousel", "direction"}),
		Settles: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carousel",
			Name:      "settles_total",
			Help:      "Times a released track came to rest",
		}, []string{"carousel"}),
		Resizes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carousel",
			Name:      "resizes_total",
			Help:      "Genuine size changes detected by the resize handler",
		}, []string{"carousel"}),
		ReInits: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "carousel",
			Name:      "reinits_total",
			Help:      "Full re-measurements of the track",
		}, []string{"carousel"}),
	}
}

func (m *Metrics) frame(name string) {
	if m != nil {
		m.Frames.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) loop(name string, direction float64) {
	if m == nil {
		return
	}
	label := "backward"
	if direction > 0 {
		label = "forward"
	}
	m.Loops.WithLabelValues(name, label).Inc()
}

func (m *Metrics) settle(name string) {
	if m != nil {
		m.Settles.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) resize(name string) {
	if m != nil {
		m.Resizes.WithLabelValues(name).Inc()
	}
}

func (m *Metrics) reInit(name string) {
	if m != nil {
		m.ReInits.WithLabelValues(name).Inc()
	}
}
