package repositories

import (
	"context"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

// LedgerReader defines read operations against the ledger-entry store.
type LedgerReader interface {
	// FindLedgerByParty retrieves a party's full entry history, already
	// partitioned into current entries and archived old records, each in
	// the store's chronological order.
	FindLedgerByParty(ctx context.Context, partyID string) (*domain.LedgerPayload, error)
}

// LedgerWriter defines write operations against the ledger-entry store.
type LedgerWriter interface {
	// SaveEntry persists a new entry and returns it with its authoritative
	// identity and server-computed running balance.
	SaveEntry(ctx context.Context, entry domain.TransactionEntry) (*domain.TransactionEntry, error)

	// DeleteEntries removes the entries with the given backend identities.
	DeleteEntries(ctx context.Context, partyID string, entryIDs []string) error

	// ArchiveEntries moves a party's current entries into the old-records
	// partition (the Monday Final settlement).
	ArchiveEntries(ctx context.Context, partyID string, userID string) error
}

// LedgerStoreFacade combines all ledger-entry store operations.
type LedgerStoreFacade interface {
	LedgerReader
	LedgerWriter
}
