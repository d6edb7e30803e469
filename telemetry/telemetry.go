// Package telemetry exports metrics about swipe gestures to Prometheus.
package telemetry

import (
	"time"

	"honnef.co/go/swipeback/swipe"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "swipeback"

// Metrics records the state transitions of swipe controllers.
type Metrics struct {
	Gestures        *prometheus.CounterVec
	Dismissals      *prometheus.CounterVec
	Restores        *prometheus.CounterVec
	ReleaseProgress prometheus.Histogram
	Duration        prometheus.Histogram
	Active          prometheus.Gauge

	// now returns the current time. It is replaced in tests.
	now func() time.Time
}

// inflight is the gesture of one controller that hasn't come to rest yet.
type inflight struct {
	started time.Time
	active  bool
}

// New creates the metrics and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Gestures: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gesture",
				Name:      "started_total",
				Help:      "Total number of swipes captured, by edge",
			},
			[]string{"edge"},
		),
		Dismissals: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gesture",
				Name:      "dismissed_total",
				Help:      "Total number of panels dismissed, by edge",
			},
			[]string{"edge"},
		),
		Restores: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "gesture",
				Name:      "restored_total",
				Help:      "Total number of panels that settled back in place, by edge",
			},
			[]string{"edge"},
		),
		ReleaseProgress: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gesture",
			Name:      "release_progress",
			Help:      "Progress of the panel at the moment it was released",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		Duration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "gesture",
			Name:      "duration_seconds",
			Help:      "Time from capture or programmatic dismissal until the panel came to rest",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 8),
		}),
		Active: f.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "gesture",
			Name:      "active",
			Help:      "Number of gestures that haven't come to rest yet",
		}),
		now: time.Now,
	}
}

// Attach subscribes m to c's state transitions and returns the
// subscription's ID. Each attached controller is tracked separately, so one
// Metrics can serve a whole stack of panels.
func (m *Metrics) Attach(c *swipe.Controller) string {
	g := new(inflight)
	return c.Subscribe(func(ev swipe.StateEvent) { m.observe(g, ev) })
}

// observe records one state transition of the controller whose gesture is g.
func (m *Metrics) observe(g *inflight, ev swipe.StateEvent) {
	edge := ev.Edge.String()
	switch ev.State {
	case swipe.StateDragging:
		m.Gestures.WithLabelValues(edge).Inc()
		m.begin(g)
	case swipe.StateSettling:
		if g.active {
			m.ReleaseProgress.Observe(float64(ev.Progress))
		} else {
			// Programmatic dismissals start settling without a drag.
			m.begin(g)
		}
	case swipe.StateIdle:
		if !g.active {
			return
		}
		if ev.Dismissed {
			m.Dismissals.WithLabelValues(edge).Inc()
		} else {
			m.Restores.WithLabelValues(edge).Inc()
		}
		m.Duration.Observe(m.now().Sub(g.started).Seconds())
		m.Active.Dec()
		g.active = false
	}
}

func (m *Metrics) begin(g *inflight) {
	g.started = m.now()
	g.active = true
	m.Active.Inc()
}
