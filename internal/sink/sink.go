// Package sink classifies resolutions and owns every write that follows from them.
package sink

import (
	"context"
	"errors"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"go.uber.org/zap"
)

// Summary counts what a run produced.
type Summary struct {
	Funded           int
	HistoricalOnly   int
	Empty            int
	Exhausted        int
	Interrupted      int
	WriteErrors      int
	CheckpointErrors int
	// Cursor is the last persisted checkpoint, -1 when none.
	Cursor int
}

// Processed is the number of completions that were classified.
func (s Summary) Processed() int {
	return s.Funded + s.HistoricalOnly + s.Empty
}

// Sink consumes completions on a single goroutine. It is the only writer of
// the result output and the checkpoint.
type Sink struct {
	minBalance uint64
	primary    FundedWriter
	secondary  []FundedWriter
	checkpoint Checkpoint
	notifier   Notifier
	metrics    Metrics
	logger     *zap.Logger
}

// New builds a Sink. primary failures keep an index out of the checkpoint;
// secondary writers are best-effort.
func New(
	minBalance uint64,
	primary FundedWriter,
	checkpoint Checkpoint,
	notifier Notifier,
	metrics Metrics,
	logger *zap.Logger,
	secondary ...FundedWriter,
) (*Sink, error) {
	if primary == nil {
		return nil, errors.New("sink primary writer is required")
	}
	if checkpoint == nil {
		return nil, errors.New("sink checkpoint is required")
	}
	if notifier == nil {
		return nil, errors.New("sink notifier is required")
	}
	if metrics == nil {
		return nil, errors.New("sink metrics is required")
	}
	return &Sink{
		minBalance: minBalance,
		primary:    primary,
		secondary:  secondary,
		checkpoint: checkpoint,
		notifier:   notifier,
		metrics:    metrics,
		logger:     logger,
	}, nil
}

// Consume drains completions until the channel closes. Interrupted
// resolutions are counted and skipped. Writes use a context detached from
// ctx so that work which did complete is still recorded during shutdown.
func (s *Sink) Consume(ctx context.Context, completions <-chan model.Resolution, total int) Summary {
	writeCtx := context.WithoutCancel(ctx)
	summary := Summary{}

	for res := range completions {
		if res.Err != nil {
			summary.Interrupted++
			continue
		}
		if res.Exhausted() {
			summary.Exhausted++
		}

		entry := model.ResultEntry{
			Task:           res.Task,
			Record:         res.Record,
			Classification: Classify(res.Record, s.minBalance),
			Provider:       res.Provider,
		}
		s.metrics.ObserveClassification(entry.Classification)

		if !s.handle(writeCtx, entry, total, &summary) {
			continue
		}
		s.record(entry.Task.Index, &summary)
	}

	if err := s.checkpoint.Close(); err != nil {
		summary.CheckpointErrors++
		s.metrics.ObserveCheckpoint(err, s.checkpoint.Cursor())
		s.logger.Error("final checkpoint write failed", zap.Error(err))
	}
	summary.Cursor = s.checkpoint.Cursor()
	return summary
}

// handle routes one entry and reports whether it may be checkpointed.
func (s *Sink) handle(ctx context.Context, entry model.ResultEntry, total int, summary *Summary) bool {
	switch entry.Classification {
	case model.Funded:
		summary.Funded++
		err := s.primary.WriteFunded(ctx, entry)
		s.metrics.ObserveFundedWrite(s.primary.Name(), err)
		if err != nil {
			summary.WriteErrors++
			s.logger.Error("funded entry not persisted",
				zap.Int("index", entry.Task.Index),
				zap.String("address", string(entry.Task.Address)),
				zap.String("writer", s.primary.Name()),
				zap.Error(err),
			)
		}
		for _, w := range s.secondary {
			werr := w.WriteFunded(ctx, entry)
			s.metrics.ObserveFundedWrite(w.Name(), werr)
			if werr != nil {
				summary.WriteErrors++
				s.logger.Warn("funded entry not mirrored",
					zap.Int("index", entry.Task.Index),
					zap.String("writer", w.Name()),
					zap.Error(werr),
				)
			}
		}
		s.notifier.Notify(entry, total)
		return err == nil
	case model.HistoricalOnly:
		summary.HistoricalOnly++
	default:
		summary.Empty++
	}
	s.notifier.Notify(entry, total)
	return true
}

func (s *Sink) record(index int, summary *Summary) {
	moved, err := s.checkpoint.RecordCompletion(index)
	if err != nil {
		summary.CheckpointErrors++
		s.metrics.ObserveCheckpoint(err, s.checkpoint.Cursor())
		s.logger.Error("checkpoint write failed", zap.Int("index", index), zap.Error(err))
		return
	}
	if moved {
		s.metrics.ObserveCheckpoint(nil, s.checkpoint.Cursor())
	}
}
