package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	providerAttemptsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "resolver",
		Name:      "provider_attempts_total",
		Help:      "Count of provider attempts by outcome.",
	}, []string{"provider", "outcome"})

	providerAttemptDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "balanceprobe",
		Subsystem: "resolver",
		Name:      "provider_attempt_duration_seconds",
		Help:      "Duration of a single provider attempt, excluding pacing.",
		Buckets:   []float64{.05, .1, .25, .5, 1, 2.5, 5, 10, 15},
	}, []string{"provider", "outcome"})

	resolutionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "balanceprobe",
		Subsystem: "resolver",
		Name:      "resolutions_total",
		Help:      "Count of resolved addresses by answering provider; exhausted when none answered.",
	}, []string{"provider"})

	resolutionAttempts = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "balanceprobe",
		Subsystem: "resolver",
		Name:      "resolution_attempts",
		Help:      "Number of provider attempts spent per address.",
		Buckets:   prometheus.LinearBuckets(1, 1, 10),
	})
)

// Resolver tracks provider fallback behaviour.
type Resolver struct{}

func NewResolver() *Resolver {
	return &Resolver{}
}

// ObserveAttempt records one provider attempt. outcome is "success" or the failure kind.
func (m Resolver) ObserveAttempt(provider, outcome string, started time.Time) {
	providerAttemptsTotal.WithLabelValues(provider, outcome).Inc()
	providerAttemptDuration.WithLabelValues(provider, outcome).Observe(time.Since(started).Seconds())
}

// ObserveResolution records which provider answered; an empty provider means the chain was exhausted.
func (m Resolver) ObserveResolution(provider string, attempts int) {
	if provider == "" {
		provider = "exhausted"
	}
	resolutionsTotal.WithLabelValues(provider).Inc()
	resolutionAttempts.Observe(float64(attempts))
}
