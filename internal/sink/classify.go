package sink

import "github.com/goodnatureofminers/balanceprobe/internal/model"

// DefaultMinBalance is the Funded threshold in satoshi.
const DefaultMinBalance uint64 = 1000

// Classify buckets a record against the Funded threshold.
func Classify(record model.BalanceRecord, minBalance uint64) model.Classification {
	switch {
	case record.CurrentSatoshi >= minBalance:
		return model.Funded
	case record.EverReceivedSatoshi > 0:
		return model.HistoricalOnly
	default:
		return model.Empty
	}
}
