package services

import (
	"context"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/hisabline/party_ledger_app/internal/dto"
)

// LedgerViewSvcFacade is the rendering boundary exposed to the surrounding
// application: formatted rows, the partition selector, and the per-user
// selection state.
type LedgerViewSvcFacade interface {
	// GetLedgerView returns the formatted rows for the selected partition
	// of a party's ledger plus the empty-state message when the partition
	// has nothing to render. Unconfirmed optimistic entries are included
	// in the current partition.
	GetLedgerView(ctx context.Context, userID, partyID string, showOldRecords bool) ([]ledgerview.EntryRow, string, error)

	// AddTransaction appends an optimistic entry to the user's view,
	// persists it, and reconciles the temporary identity with the
	// authoritative one from the store.
	AddTransaction(ctx context.Context, userID, partyID string, req dto.CreateEntryRequest) (*domain.TransactionEntry, error)

	// Select marks or unmarks one entry identity in the user's view.
	Select(ctx context.Context, userID, partyID string, entryID string, checked bool) error

	// SelectAll marks or unmarks the given identities in bulk.
	SelectAll(ctx context.Context, userID, partyID string, entryIDs []string, checked bool) error

	// ClearSelection empties the user's selection.
	ClearSelection(ctx context.Context, userID, partyID string) error

	// DeleteSelected removes the currently selected entries from the
	// store and reports how many identities were submitted for deletion.
	DeleteSelected(ctx context.Context, userID, partyID string) (int, error)

	// SettleMondayFinal archives the party's current entries into the
	// old-records partition. Refused for restricted parties.
	SettleMondayFinal(ctx context.Context, userID, partyID string) error
}
