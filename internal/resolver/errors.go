package resolver

import (
	"errors"
	"fmt"
)

var (
	ErrProviderNetwork = errors.New("provider unreachable")
	ErrProviderHTTP    = errors.New("provider returned non-success status")
	ErrProviderParse   = errors.New("provider response rejected")
)

type AttemptKind string

const (
	KindNetwork AttemptKind = "network"
	KindHTTP    AttemptKind = "http"
	KindParse   AttemptKind = "parse"
)

// AttemptError describes why a single provider attempt failed.
type AttemptError struct {
	Provider   string
	Kind       AttemptKind
	StatusCode int
	Err        error
}

func (e *AttemptError) Error() string {
	switch {
	case e.Kind == KindHTTP:
		return fmt.Sprintf("provider %s: http status %d", e.Provider, e.StatusCode)
	case e.Err != nil:
		return fmt.Sprintf("provider %s: %s: %v", e.Provider, e.Kind, e.Err)
	default:
		return fmt.Sprintf("provider %s: %s", e.Provider, e.Kind)
	}
}

func (e *AttemptError) Unwrap() []error {
	var sentinel error
	switch e.Kind {
	case KindNetwork:
		sentinel = ErrProviderNetwork
	case KindHTTP:
		sentinel = ErrProviderHTTP
	case KindParse:
		sentinel = ErrProviderParse
	}
	errs := make([]error, 0, 2)
	if sentinel != nil {
		errs = append(errs, sentinel)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

func outcome(err error) string {
	if err == nil {
		return "success"
	}
	var attemptErr *AttemptError
	if errors.As(err, &attemptErr) {
		return string(attemptErr.Kind)
	}
	return "unknown"
}
