// Package workerpool provides simple concurrent processing utilities.
package workerpool

import (
	"context"
	"sync"
)

// Stream runs workerCount workers over items and delivers each result on the
// returned channel as soon as it is produced, so results arrive in completion
// order rather than submission order. The channel is closed after every
// started item has been processed. Once ctx is done no further items are
// handed to workers; items already queued are still processed, and process is
// expected to observe ctx itself.
func Stream[T, R any](
	ctx context.Context,
	workerCount int,
	items []T,
	process func(context.Context, T) R,
) <-chan R {
	if workerCount < 1 {
		workerCount = 1
	}

	tasks := make(chan T, workerCount)
	results := make(chan R, workerCount)
	wg := sync.WaitGroup{}
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range tasks {
				results <- process(ctx, item)
			}
		}()
	}

	go func() {
		defer close(tasks)
		for _, item := range items {
			if ctx.Err() != nil {
				return
			}
			select {
			case <-ctx.Done():
				return
			case tasks <- item:
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	return results
}
