package sink

import (
	"context"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	// FundedWriter persists Funded entries.
	FundedWriter interface {
		Name() string
		WriteFunded(ctx context.Context, entry model.ResultEntry) error
	}
	Checkpoint interface {
		RecordCompletion(index int) (bool, error)
		Close() error
		Cursor() int
	}
	Notifier interface {
		Notify(entry model.ResultEntry, total int)
	}
	Metrics interface {
		ObserveClassification(c model.Classification)
		ObserveFundedWrite(writer string, err error)
		ObserveCheckpoint(err error, cursor int)
	}
	FundedRepository interface {
		InsertFundedAddresses(ctx context.Context, rows []model.FundedAddress) error
	}
)
