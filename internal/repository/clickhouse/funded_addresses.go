package clickhouse

import (
	"context"
	"fmt"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/google/uuid"
)

// FundedAddresses returns the rows recorded by a run, ordered by task index.
func (r *Repository) FundedAddresses(ctx context.Context, runID uuid.UUID) ([]model.FundedAddress, error) {
	start := time.Now()
	var (
		err    error
		result []model.FundedAddress
	)
	defer func() {
		r.metrics.Observe("funded_addresses", len(result), err, start)
	}()

	const query = `
SELECT
	run_id,
	address,
	task_index,
	current_satoshi,
	ever_received_satoshi,
	provider,
	resolved_at
FROM funded_addresses FINAL
WHERE run_id = ?
ORDER BY task_index`

	rows, err := r.conn.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("query funded addresses: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			row     model.FundedAddress
			address string
		)
		if err = rows.Scan(
			&row.RunID,
			&address,
			&row.TaskIndex,
			&row.CurrentSatoshi,
			&row.EverReceivedSatoshi,
			&row.Provider,
			&row.ResolvedAt,
		); err != nil {
			return nil, fmt.Errorf("scan funded address: %w", err)
		}
		row.Address = model.Address(address)
		result = append(result, row)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate funded addresses: %w", err)
	}
	return result, nil
}
