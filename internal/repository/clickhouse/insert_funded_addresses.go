package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

// InsertFundedAddresses stores funded address rows in ClickHouse.
func (r *Repository) InsertFundedAddresses(ctx context.Context, rows []model.FundedAddress) error {
	start := time.Now()
	var err error
	defer func() {
		r.metrics.Observe("insert_funded_addresses", len(rows), err, start)
	}()

	if len(rows) == 0 {
		return nil
	}

	const query = `
INSERT INTO funded_addresses (
	run_id,
	address,
	task_index,
	current_satoshi,
	ever_received_satoshi,
	provider,
	resolved_at
) VALUES`

	batch, err := r.conn.PrepareBatch(ctx, query)
	if err != nil {
		return fmt.Errorf("prepare funded addresses batch: %w", err)
	}

	for _, row := range rows {
		if err = batch.Append(
			row.RunID,
			string(row.Address),
			row.TaskIndex,
			row.CurrentSatoshi,
			row.EverReceivedSatoshi,
			row.Provider,
			row.ResolvedAt,
		); err != nil {
			return fmt.Errorf("append funded address: %w", err)
		}
	}

	if err = batch.Send(); err != nil {
		return fmt.Errorf("insert funded addresses: %w", err)
	}
	return nil
}
