package ledgerview_test

import (
	"testing"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/stretchr/testify/assert"
)

func TestPartition_NoPayload(t *testing.T) {
	// No payload wins regardless of the toggle.
	for _, showOld := range []bool{false, true} {
		entries, msg := ledgerview.Partition(nil, showOld)
		assert.Empty(t, entries)
		assert.Equal(t, ledgerview.MsgNoPayload, msg)
	}
}

func TestPartition_EmptyPartitions(t *testing.T) {
	archived := domain.TransactionEntry{EntryID: "e1", IsOldRecord: true}
	payload := &domain.LedgerPayload{
		LedgerEntries: []domain.TransactionEntry{},
		OldRecords:    []domain.TransactionEntry{archived},
	}

	entries, msg := ledgerview.Partition(payload, false)
	assert.Empty(t, entries)
	assert.Equal(t, ledgerview.MsgNoEntries, msg)

	entries, msg = ledgerview.Partition(payload, true)
	assert.Equal(t, []domain.TransactionEntry{archived}, entries)
	assert.Empty(t, msg)

	empty := &domain.LedgerPayload{}
	entries, msg = ledgerview.Partition(empty, true)
	assert.Empty(t, entries)
	assert.Equal(t, ledgerview.MsgNoOldRecords, msg)
}

func TestPartition_PreservesOrder(t *testing.T) {
	payload := &domain.LedgerPayload{
		LedgerEntries: []domain.TransactionEntry{
			{EntryID: "c"},
			{EntryID: "a"},
			{EntryID: "b"},
		},
	}
	entries, msg := ledgerview.Partition(payload, false)
	assert.Empty(t, msg)
	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.EntryID
	}
	assert.Equal(t, []string{"c", "a", "b"}, ids)
}
