package resolver

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/goodnatureofminers/balanceprobe/internal/provider"
)

const (
	maxBodyBytes  = 1 << 20
	maxDrainBytes = 64 << 10
)

func (r *Resolver) attempt(
	ctx context.Context,
	adapter provider.Adapter,
	address model.Address,
	userAgent string,
) (record model.BalanceRecord, err error) {
	started := time.Now()
	defer func() {
		r.metrics.ObserveAttempt(adapter.Name(), outcome(err), started)
	}()

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	desc := adapter.BuildRequest(address, userAgent)
	req, err := http.NewRequestWithContext(ctx, desc.Method, desc.URL, nil)
	if err != nil {
		return model.BalanceRecord{}, &AttemptError{Provider: adapter.Name(), Kind: KindNetwork, Err: err}
	}
	req.Header = desc.Header.Clone()

	resp, err := r.client.Do(req)
	if err != nil {
		return model.BalanceRecord{}, &AttemptError{Provider: adapter.Name(), Kind: KindNetwork, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, maxDrainBytes))
		return model.BalanceRecord{}, &AttemptError{Provider: adapter.Name(), Kind: KindHTTP, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return model.BalanceRecord{}, &AttemptError{Provider: adapter.Name(), Kind: KindNetwork, Err: err}
	}

	record, err = adapter.Parse(body, address)
	if err != nil {
		return model.BalanceRecord{}, &AttemptError{Provider: adapter.Name(), Kind: KindParse, Err: err}
	}
	return record, nil
}
