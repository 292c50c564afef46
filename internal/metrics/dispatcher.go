package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	gateInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "balanceprobe",
		Subsystem: "dispatcher",
		Name:      "requests_in_flight",
		Help:      "Provider requests currently holding a gate slot.",
	})

	gateWaitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "balanceprobe",
		Subsystem: "dispatcher",
		Name:      "admission_wait_seconds",
		Help:      "Time spent waiting for a slot and the rate limiter.",
		Buckets:   []float64{.001, .01, .05, .1, .25, .5, 1, 2.5, 5, 10},
	})
)

// Gate tracks admission control.
type Gate struct{}

func NewGate() *Gate {
	return &Gate{}
}

func (m Gate) ObserveAdmitted(started time.Time) {
	gateInFlight.Inc()
	gateWaitDuration.Observe(time.Since(started).Seconds())
}

func (m Gate) ObserveReleased() {
	gateInFlight.Dec()
}
