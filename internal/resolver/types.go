package resolver

import (
	"context"
	"net/http"
	"time"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	Gate interface {
		Do(ctx context.Context, fn func(ctx context.Context)) error
	}
	HTTPDoer interface {
		Do(req *http.Request) (*http.Response, error)
	}
	Metrics interface {
		ObserveAttempt(provider, outcome string, started time.Time)
		ObserveResolution(provider string, attempts int)
	}
)
