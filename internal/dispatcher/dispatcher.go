// Package dispatcher runs address resolution under a process-wide request budget.
package dispatcher

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/pkg/workerpool"
	"go.uber.org/zap"
)

// Dispatcher fans tasks out to a fixed set of workers.
type Dispatcher struct {
	resolver Resolver
	workers  int
	logger   *zap.Logger
}

// New builds a Dispatcher with workerCount workers.
func New(resolver Resolver, workerCount int, logger *zap.Logger) (*Dispatcher, error) {
	if resolver == nil {
		return nil, errors.New("dispatcher resolver is required")
	}
	if workerCount < 1 {
		return nil, errors.New("dispatcher worker count must be positive")
	}
	return &Dispatcher{
		resolver: resolver,
		workers:  workerCount,
		logger:   logger,
	}, nil
}

// Dispatch resolves tasks and delivers each Resolution as it completes.
// Completion order is not submission order. The channel is closed once every
// started task has completed; after ctx is done no new task is started.
func (d *Dispatcher) Dispatch(ctx context.Context, tasks []model.ResolutionTask) <-chan model.Resolution {
	d.logger.Debug("dispatching tasks", zap.Int("tasks", len(tasks)), zap.Int("workers", d.workers))
	return workerpool.Stream(ctx, d.workers, tasks, d.resolver.Resolve)
}
