// Package batcher provides a generic buffered batch processor with rate limiting.
package batcher

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

// ErrStopped is returned by Add once the batcher has been stopped.
var ErrStopped = errors.New("batcher stopped")

// Options tunes flushing.
type Options struct {
	// Size flushes the buffer once it holds this many items.
	Size int
	// Interval flushes a non-empty buffer periodically.
	Interval time.Duration
	// FlushesPerSecond caps how often the flush callback runs.
	FlushesPerSecond int
	// OnFlush, if set, observes every flush attempt.
	OnFlush func(items int, err error)
}

// Batcher buffers items and flushes them either by size or interval.
type Batcher[T any] struct {
	flushCallback func(context.Context, []T) error
	onFlush       func(int, error)
	itemsCh       chan T
	flushSize     int
	flushInterval time.Duration
	rl            ratelimit.Limiter
	logger        *zap.Logger

	wg       sync.WaitGroup
	stop     chan struct{}
	stopOnce sync.Once
}

// New constructs a Batcher.
func New[T any](logger *zap.Logger, flushCallback func(context.Context, []T) error, opts Options) *Batcher[T] {
	if opts.Size < 1 {
		opts.Size = 1
	}
	if opts.Interval <= 0 {
		opts.Interval = time.Second
	}
	if opts.FlushesPerSecond < 1 {
		opts.FlushesPerSecond = 1
	}
	return &Batcher[T]{
		logger:        logger,
		flushCallback: flushCallback,
		onFlush:       opts.OnFlush,
		itemsCh:       make(chan T, opts.Size*2),
		flushSize:     opts.Size,
		flushInterval: opts.Interval,
		rl:            ratelimit.New(opts.FlushesPerSecond),
		stop:          make(chan struct{}),
	}
}

// Start begins the background flushing loop.
func (b *Batcher[T]) Start(ctx context.Context) {
	b.wg.Add(1)
	go b.run(ctx)
}

// Stop flushes whatever is buffered and waits for the loop to exit. It is safe to call more than once.
func (b *Batcher[T]) Stop() {
	b.stopOnce.Do(func() {
		close(b.stop)
	})
	b.wg.Wait()
}

// Add queues an item for batching, respecting context cancellation.
func (b *Batcher[T]) Add(ctx context.Context, item T) error {
	select {
	case <-b.stop:
		return ErrStopped
	default:
	}

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-b.stop:
		return ErrStopped
	case b.itemsCh <- item:
		return nil
	}
}

func (b *Batcher[T]) run(ctx context.Context) {
	defer b.wg.Done()

	ticker := time.NewTicker(b.flushInterval)
	defer ticker.Stop()

	buf := make([]T, 0, b.flushSize)

	flush := func(ctx context.Context) {
		if len(buf) == 0 {
			return
		}

		b.rl.Take()
		err := b.flushCallback(ctx, buf)
		if err != nil {
			b.logger.Error("batch not flushed", zap.Int("size", len(buf)), zap.Error(err))
		} else {
			b.logger.Debug("batch flushed", zap.Int("size", len(buf)))
		}
		if b.onFlush != nil {
			b.onFlush(len(buf), err)
		}
		buf = buf[:0]
	}

	// drain moves queued items into buf so nothing accepted by Add is lost on shutdown.
	drain := func(ctx context.Context) {
		for {
			select {
			case item := <-b.itemsCh:
				buf = append(buf, item)
				if len(buf) >= b.flushSize {
					flush(ctx)
				}
			default:
				flush(ctx)
				return
			}
		}
	}

	for {
		select {
		case <-ctx.Done():
			drain(context.WithoutCancel(ctx))
			return

		case <-b.stop:
			drain(context.WithoutCancel(ctx))
			return

		case item := <-b.itemsCh:
			buf = append(buf, item)
			if len(buf) >= b.flushSize {
				flush(ctx)
			}

		case <-ticker.C:
			flush(ctx)
		}
	}
}
