package dispatcher

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/clock"
	"go.uber.org/ratelimit"
)

// Gate admits provider attempts. At most rate attempts hold a slot at once,
// attempt starts are spaced at least 1/rate apart, and each slot is held for
// an extra 1/rate after the attempt returns.
//
// The per-second bound applies to starts. Completions follow start time plus
// attempt latency, so attempts started in different seconds can finish in the
// same one.
type Gate struct {
	slots   chan struct{}
	limiter ratelimit.Limiter
	pause   time.Duration
	sleep   clock.SleepFunc
	metrics GateMetrics
}

type GateOption func(*gateOptions)

type gateOptions struct {
	clock clock.Clock
	sleep clock.SleepFunc
}

// WithClock replaces the time source used by the rate limiter.
func WithClock(c clock.Clock) GateOption {
	return func(o *gateOptions) { o.clock = c }
}

// WithSleep replaces the post-attempt pause.
func WithSleep(sleep clock.SleepFunc) GateOption {
	return func(o *gateOptions) { o.sleep = sleep }
}

// NewGate builds a Gate admitting rate attempts per second.
func NewGate(rate int, metrics GateMetrics, opts ...GateOption) (*Gate, error) {
	if rate < 1 {
		return nil, errors.New("gate rate must be positive")
	}
	o := gateOptions{clock: clock.System{}, sleep: clock.SleepWithContext}
	for _, opt := range opts {
		opt(&o)
	}

	return &Gate{
		slots:   make(chan struct{}, rate),
		limiter: ratelimit.New(rate, ratelimit.WithoutSlack, ratelimit.WithClock(o.clock)),
		pause:   clock.Interval(rate),
		sleep:   o.sleep,
		metrics: metrics,
	}, nil
}

// Do runs fn once admitted. It returns the context error without calling fn
// when ctx is done before admission.
func (g *Gate) Do(ctx context.Context, fn func(ctx context.Context)) error {
	started := time.Now()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case g.slots <- struct{}{}:
	}
	defer g.release()

	g.limiter.Take()
	if err := ctx.Err(); err != nil {
		return err
	}
	if g.metrics != nil {
		g.metrics.ObserveAdmitted(started)
		defer g.metrics.ObserveReleased()
	}

	fn(ctx)

	// the slot stays held through the pause even when ctx is canceled
	_ = g.sleep(context.WithoutCancel(ctx), g.pause)
	return nil
}

func (g *Gate) release() {
	<-g.slots
}
