//go:build integration

package clickhouse

import (
	"time"

	"github.com/golang/mock/gomock"
	"github.com/goodnatureofminers/balanceprobe/internal/model"
	"github.com/google/uuid"
)

func newFundedAddress(runID uuid.UUID, index uint64, address string, current uint64, resolvedAt time.Time) model.FundedAddress {
	return model.FundedAddress{
		RunID:               runID,
		Address:             model.Address(address),
		TaskIndex:           index,
		CurrentSatoshi:      current,
		EverReceivedSatoshi: current * 2,
		Provider:            "blockstream",
		ResolvedAt:          resolvedAt,
	}
}

func (s *RepositorySuite) TestInsertFundedAddresses() {
	runID := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	rows := []model.FundedAddress{
		newFundedAddress(runID, 0, "addrA", 150000, now),
		newFundedAddress(runID, 3, "addrB", 2000, now.Add(time.Second)),
	}

	s.metrics.EXPECT().Observe("insert_funded_addresses", 2, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("funded_addresses", 2, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, rows))
	s.Equal(uint64(len(rows)), s.countRows("funded_addresses"))

	got, err := s.repo.FundedAddresses(s.testCtx, runID)
	s.Require().NoError(err)
	s.Require().Len(got, 2)
	for i := range rows {
		s.Equal(rows[i].RunID, got[i].RunID)
		s.Equal(rows[i].Address, got[i].Address)
		s.Equal(rows[i].TaskIndex, got[i].TaskIndex)
		s.Equal(rows[i].CurrentSatoshi, got[i].CurrentSatoshi)
		s.Equal(rows[i].EverReceivedSatoshi, got[i].EverReceivedSatoshi)
		s.Equal(rows[i].Provider, got[i].Provider)
		s.True(rows[i].ResolvedAt.Equal(got[i].ResolvedAt))
	}
}

func (s *RepositorySuite) TestInsertFundedAddressesDeduplicatesWithinRun() {
	runID := uuid.New()
	now := time.Now().UTC().Truncate(time.Millisecond)
	first := newFundedAddress(runID, 0, "addrA", 150000, now)
	retried := newFundedAddress(runID, 0, "addrA", 150000, now.Add(time.Minute))

	s.metrics.EXPECT().Observe("insert_funded_addresses", 1, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, []model.FundedAddress{first}))
	time.Sleep(10 * time.Millisecond)
	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, []model.FundedAddress{retried}))

	s.Equal(uint64(1), s.countRows("funded_addresses"))
}

func (s *RepositorySuite) TestInsertFundedAddressesKeepsRowsPerRun() {
	now := time.Now().UTC().Truncate(time.Millisecond)
	firstRun := newFundedAddress(uuid.New(), 0, "addrA", 150000, now)
	resumedRun := newFundedAddress(uuid.New(), 0, "addrA", 150000, now.Add(time.Minute))

	s.metrics.EXPECT().Observe("insert_funded_addresses", 1, gomock.Nil(), gomock.Any()).Times(2)

	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, []model.FundedAddress{firstRun}))
	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, []model.FundedAddress{resumedRun}))

	s.Equal(uint64(2), s.countRows("funded_addresses"))
}

func (s *RepositorySuite) TestFundedAddressesOtherRun() {
	s.metrics.EXPECT().Observe("insert_funded_addresses", 1, gomock.Nil(), gomock.Any())
	s.metrics.EXPECT().Observe("funded_addresses", 0, gomock.Nil(), gomock.Any())

	s.Require().NoError(s.repo.InsertFundedAddresses(s.testCtx, []model.FundedAddress{
		newFundedAddress(uuid.New(), 0, "addrA", 5000, time.Now().UTC()),
	}))

	got, err := s.repo.FundedAddresses(s.testCtx, uuid.New())
	s.Require().NoError(err)
	s.Empty(got)
}
