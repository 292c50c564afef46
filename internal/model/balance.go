// Package model holds the domain types shared by the resolution pipeline.
package model

import (
	"time"

	"github.com/google/uuid"
)

// Address is an opaque address identifier as read from the input list.
type Address string

// BalanceRecord is the normalized balance reported by a provider.
// EverReceivedSatoshi >= CurrentSatoshi is expected but not enforced.
type BalanceRecord struct {
	CurrentSatoshi      uint64
	EverReceivedSatoshi uint64
}

// ResolutionTask is one address scheduled for resolution.
type ResolutionTask struct {
	Index   int
	Address Address
}

// Resolution is the completion value produced for a task.
// Provider is empty when every provider failed. Err is set only when the
// run was interrupted before the task resolved.
type Resolution struct {
	Task     ResolutionTask
	Record   BalanceRecord
	Provider string
	Attempts int
	Err      error
}

// Exhausted reports whether every provider in the chain failed.
func (r Resolution) Exhausted() bool {
	return r.Err == nil && r.Provider == ""
}

type Classification string

var (
	Funded         Classification = "funded"
	HistoricalOnly Classification = "historical_only"
	Empty          Classification = "empty"
)

// ResultEntry is a classified resolution.
type ResultEntry struct {
	Task           ResolutionTask
	Record         BalanceRecord
	Classification Classification
	Provider       string
}

// FundedAddress is the persisted row for a Funded entry.
type FundedAddress struct {
	RunID               uuid.UUID
	Address             Address
	TaskIndex           uint64
	CurrentSatoshi      uint64
	EverReceivedSatoshi uint64
	Provider            string
	ResolvedAt          time.Time
}
