// Package resolver resolves a single address against the provider chain.
package resolver

import (
	"context"
	"errors"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/provider"
	"go.uber.org/zap"
)

const defaultTimeout = 10 * time.Second

// Options tunes a Resolver.
type Options struct {
	// Timeout bounds one provider attempt.
	Timeout time.Duration
	// Seed offsets the per-task User-Agent rotation.
	Seed int
}

// Resolver walks the registry in order until a provider answers.
type Resolver struct {
	registry *provider.Registry
	gate     Gate
	client   HTTPDoer
	metrics  Metrics
	logger   *zap.Logger
	timeout  time.Duration
	seed     int
}

// New builds a Resolver. All dependencies are required.
func New(
	registry *provider.Registry,
	gate Gate,
	client HTTPDoer,
	metrics Metrics,
	logger *zap.Logger,
	opts Options,
) (*Resolver, error) {
	if registry == nil || registry.Len() == 0 {
		return nil, errors.New("resolver registry must contain at least one provider")
	}
	if gate == nil {
		return nil, errors.New("resolver gate is required")
	}
	if client == nil {
		return nil, errors.New("resolver http client is required")
	}
	if metrics == nil {
		return nil, errors.New("resolver metrics is required")
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}

	return &Resolver{
		registry: registry,
		gate:     gate,
		client:   client,
		metrics:  metrics,
		logger:   logger,
		timeout:  opts.Timeout,
		seed:     opts.Seed,
	}, nil
}

// Resolve tries each provider once, in registry order, and returns the first
// successful record. When every provider fails the zero record is returned
// with an empty Provider. Err is set only when ctx ended the chain early.
func (r *Resolver) Resolve(ctx context.Context, task model.ResolutionTask) model.Resolution {
	res := model.Resolution{Task: task}
	userAgent := provider.UserAgent(r.seed + task.Index)
	logger := r.logger.With(zap.Int("index", task.Index), zap.String("address", string(task.Address)))

	for _, adapter := range r.registry.Adapters() {
		var (
			record     model.BalanceRecord
			attemptErr error
		)
		if err := r.gate.Do(ctx, func(ctx context.Context) {
			record, attemptErr = r.attempt(ctx, adapter, task.Address, userAgent)
		}); err != nil {
			res.Err = err
			return res
		}
		res.Attempts++

		if attemptErr == nil {
			res.Record = record
			res.Provider = adapter.Name()
			r.metrics.ObserveResolution(res.Provider, res.Attempts)
			return res
		}
		if err := ctx.Err(); err != nil {
			res.Err = err
			return res
		}
		logger.Debug("provider attempt failed", zap.String("provider", adapter.Name()), zap.Error(attemptErr))
	}

	logger.Info("all providers exhausted", zap.Int("attempts", res.Attempts))
	r.metrics.ObserveResolution("", res.Attempts)
	return res
}
