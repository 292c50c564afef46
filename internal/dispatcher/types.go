package dispatcher

import (
	"context"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Resolver interface {
		Resolve(ctx context.Context, task model.ResolutionTask) model.Resolution
	}
	GateMetrics interface {
		ObserveAdmitted(started time.Time)
		ObserveReleased()
	}
)
