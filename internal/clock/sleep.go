// Package clock provides helpers for time-related operations.
package clock

import (
	"context"
	"time"
)

// Clock is the time source used for pacing. It matches ratelimit.Clock.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// SleepFunc pauses for d or until ctx is done.
type SleepFunc func(ctx context.Context, d time.Duration) error

// System is the wall clock.
type System struct{}

func (System) Now() time.Time        { return time.Now() }
func (System) Sleep(d time.Duration) { time.Sleep(d) }

// SleepWithContext waits for the duration or returns early if the context is canceled.
func SleepWithContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Interval returns the spacing that yields perSecond events per second.
func Interval(perSecond int) time.Duration {
	if perSecond <= 0 {
		return 0
	}
	return time.Second / time.Duration(perSecond)
}
