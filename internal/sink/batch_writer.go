package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/pkg/batcher"
	"github.com/goodnatureofminers/balanceprobe/pkg/safe"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	fundedBatcherCapacity         = 500
	fundedBatcherFlushInterval    = 5 * time.Second
	fundedBatcherFlushesPerSecond = 2
)

// BatchWriter mirrors Funded entries into a repository in batches.
// Rows are accepted synchronously and inserted later; a failed insert is
// logged and counted but cannot be reported back to the entry.
type BatchWriter struct {
	repo    FundedRepository
	runID   uuid.UUID
	now     func() time.Time
	logger  *zap.Logger
	batcher *batcher.Batcher[model.FundedAddress]
}

// NewBatchWriter builds a BatchWriter. onFlush may be nil.
func NewBatchWriter(repo FundedRepository, runID uuid.UUID, logger *zap.Logger, onFlush func(rows int, err error)) *BatchWriter {
	w := &BatchWriter{
		repo:   repo,
		runID:  runID,
		now:    time.Now,
		logger: logger,
	}
	w.batcher = batcher.New[model.FundedAddress](
		logger.Named("fundedBatcher"),
		w.flush,
		batcher.Options{
			Size:             fundedBatcherCapacity,
			Interval:         fundedBatcherFlushInterval,
			FlushesPerSecond: fundedBatcherFlushesPerSecond,
			OnFlush:          onFlush,
		},
	)
	return w
}

func (w *BatchWriter) Name() string {
	return "clickhouse"
}

func (w *BatchWriter) Start(ctx context.Context) {
	w.batcher.Start(ctx)
}

// Stop flushes everything queued so far.
func (w *BatchWriter) Stop() {
	w.batcher.Stop()
}

func (w *BatchWriter) WriteFunded(ctx context.Context, entry model.ResultEntry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	index, err := safe.Uint64(entry.Task.Index)
	if err != nil {
		return fmt.Errorf("task index: %w", err)
	}
	return w.batcher.Add(ctx, model.FundedAddress{
		RunID:               w.runID,
		Address:             entry.Task.Address,
		TaskIndex:           index,
		CurrentSatoshi:      entry.Record.CurrentSatoshi,
		EverReceivedSatoshi: entry.Record.EverReceivedSatoshi,
		Provider:            entry.Provider,
		ResolvedAt:          w.now().UTC(),
	})
}

func (w *BatchWriter) flush(ctx context.Context, rows []model.FundedAddress) error {
	if err := w.repo.InsertFundedAddresses(ctx, rows); err != nil {
		return err
	}
	w.logger.Debug("InsertFundedAddresses", zap.Int("count", len(rows)))
	return nil
}
