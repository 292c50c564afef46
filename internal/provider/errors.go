package provider

import (
	"errors"
	"fmt"
)

// ErrParse marks a response that could not be normalized.
var ErrParse = errors.New("provider response not parseable")

// ParseError describes why a provider body was rejected.
type ParseError struct {
	Kind   Kind
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Reason, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Reason)
}

func (e *ParseError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrParse, e.Err}
	}
	return []error{ErrParse}
}

func parseErr(kind Kind, reason string, err error) error {
	return &ParseError{Kind: kind, Reason: reason, Err: err}
}
