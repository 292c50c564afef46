// Package service runs a complete balance resolution pass over an address list.
package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/addresslist"
	"github.com/goodnatureofminers/balanceprobe/internal/checkpoint"
	"github.com/goodnatureofminers/balanceprobe/internal/dispatcher"
	"github.com/goodnatureofminers/balanceprobe/internal/metrics"
	"github.com/goodnatureofminers/balanceprobe/internal/provider"
	"github.com/goodnatureofminers/balanceprobe/internal/resolver"
	"github.com/goodnatureofminers/balanceprobe/internal/sink"
	"go.uber.org/zap"
)

const (
	defaultWorkerCount    = 5
	defaultRequestTimeout = 10 * time.Second
)

// Config describes one run.
type Config struct {
	InputPath      string
	OutputPath     string
	ProgressPath   string
	MinBalance     uint64
	Workers        int
	RequestTimeout time.Duration
	Seed           int
	Color          bool
}

// BalanceResolverService resolves every address of the input list that an
// earlier run has not already recorded.
type BalanceResolverService struct {
	cfg      Config
	registry *provider.Registry
	client   HTTPDoer
	console  io.Writer
	mirrors  []sink.FundedWriter
	logger   *zap.Logger
}

// NewBalanceResolverService validates cfg and builds the service. mirrors
// receive Funded entries in addition to the output file.
func NewBalanceResolverService(
	cfg Config,
	registry *provider.Registry,
	client HTTPDoer,
	console io.Writer,
	logger *zap.Logger,
	mirrors ...sink.FundedWriter,
) (*BalanceResolverService, error) {
	if cfg.InputPath == "" {
		return nil, errors.New("input path is required")
	}
	if cfg.OutputPath == "" {
		return nil, errors.New("output path is required")
	}
	if cfg.ProgressPath == "" {
		return nil, errors.New("progress path is required")
	}
	if registry == nil {
		return nil, errors.New("provider registry is required")
	}
	if client == nil {
		return nil, errors.New("http client is required")
	}
	if console == nil {
		console = io.Discard
	}
	if cfg.Workers < 1 {
		cfg.Workers = defaultWorkerCount
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = defaultRequestTimeout
	}

	return &BalanceResolverService{
		cfg:      cfg,
		registry: registry,
		client:   client,
		console:  console,
		mirrors:  mirrors,
		logger:   logger,
	}, nil
}

// Run resolves the pending part of the input. It returns once every started
// task has been recorded; canceling ctx stops new tasks from starting.
func (s *BalanceResolverService) Run(ctx context.Context) (sink.Summary, error) {
	addresses, err := addresslist.Load(s.cfg.InputPath)
	if err != nil {
		return sink.Summary{Cursor: -1}, err
	}
	total := len(addresses)
	if total == 0 {
		s.logger.Info("no addresses in input", zap.String("input", s.cfg.InputPath))
		return sink.Summary{Cursor: -1}, nil
	}

	store, err := checkpoint.Open(s.cfg.ProgressPath)
	if err != nil {
		s.logger.Warn("checkpoint unreadable, starting from the beginning",
			zap.String("progress", s.cfg.ProgressPath), zap.Error(err))
	}
	offset := store.ResumeOffset()
	if offset >= total {
		s.logger.Info("all addresses were already processed", zap.Int("total", total))
		return sink.Summary{Cursor: store.Cursor()}, nil
	}
	if offset > 0 {
		s.logger.Info("resuming",
			zap.Int("index", offset),
			zap.String("address", string(addresses[offset])),
		)
	}

	out, err := sink.OpenFileWriter(s.cfg.OutputPath)
	if err != nil {
		return sink.Summary{Cursor: store.Cursor()}, err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil {
			s.logger.Error("close output", zap.Error(cerr))
		}
	}()

	d, err := s.newDispatcher()
	if err != nil {
		return sink.Summary{Cursor: store.Cursor()}, err
	}
	sk, err := sink.New(
		s.cfg.MinBalance,
		out,
		store,
		sink.NewConsoleNotifier(s.console, s.cfg.Color),
		metrics.NewSink(),
		s.logger.Named("sink"),
		s.mirrors...,
	)
	if err != nil {
		return sink.Summary{Cursor: store.Cursor()}, err
	}

	s.logger.Info("start resolving",
		zap.Int("total", total),
		zap.Int("pending", total-offset),
		zap.Int("workers", s.cfg.Workers),
		zap.Strings("providers", s.registry.Names()),
	)

	started := time.Now()
	summary := sk.Consume(ctx, d.Dispatch(ctx, addresslist.Tasks(addresses, offset)), total)

	s.logger.Info("resolution finished",
		zap.Int("funded", summary.Funded),
		zap.Int("historical_only", summary.HistoricalOnly),
		zap.Int("empty", summary.Empty),
		zap.Int("exhausted", summary.Exhausted),
		zap.Int("interrupted", summary.Interrupted),
		zap.Int("write_errors", summary.WriteErrors),
		zap.Int("checkpoint_errors", summary.CheckpointErrors),
		zap.Int("cursor", summary.Cursor),
		zap.Duration("elapsed", time.Since(started)),
		zap.String("output", s.cfg.OutputPath),
	)
	return summary, nil
}

func (s *BalanceResolverService) newDispatcher() (*dispatcher.Dispatcher, error) {
	gate, err := dispatcher.NewGate(s.cfg.Workers, metrics.NewGate())
	if err != nil {
		return nil, fmt.Errorf("build gate: %w", err)
	}
	res, err := resolver.New(
		s.registry,
		gate,
		s.client,
		metrics.NewResolver(),
		s.logger.Named("resolver"),
		resolver.Options{Timeout: s.cfg.RequestTimeout, Seed: s.cfg.Seed},
	)
	if err != nil {
		return nil, fmt.Errorf("build resolver: %w", err)
	}
	d, err := dispatcher.New(res, s.cfg.Workers, s.logger.Named("dispatcher"))
	if err != nil {
		return nil, fmt.Errorf("build dispatcher: %w", err)
	}
	return d, nil
}
