package ledgerview

import (
	"sync"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

// ViewState is the transient state of one user's ledger screen: the partition
// toggle, the selection set, and any optimistic entries awaiting confirmation
// by the store. It is never persisted and is reset when a different party's
// ledger is opened.
type ViewState struct {
	mu        sync.Mutex
	partyID   string
	showOld   bool
	selection *SelectionTracker
	pending   []domain.TransactionEntry
}

// NewViewState returns a fresh view state for one party's ledger.
func NewViewState(partyID string) *ViewState {
	return &ViewState{
		partyID:   partyID,
		selection: NewSelectionTracker(),
	}
}

// PartyID returns the party whose ledger this state belongs to.
func (v *ViewState) PartyID() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.partyID
}

// ShowOldRecords returns the current partition toggle.
func (v *ViewState) ShowOldRecords() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.showOld
}

// SetShowOldRecords flips the partition toggle. The selection set is
// deliberately left alone: checked state survives partition toggling.
func (v *ViewState) SetShowOldRecords(show bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.showOld = show
}

// Selection returns the tracker holding this view's checked identities.
func (v *ViewState) Selection() *SelectionTracker {
	return v.selection
}

// AppendPending records an optimistic entry so it renders immediately, before
// the store has confirmed it.
func (v *ViewState) AppendPending(e domain.TransactionEntry) {
	v.mu.Lock()
	defer v.mu.Unlock()
	e.IsOptimistic = true
	v.pending = append(v.pending, e)
}

// ResolvePending removes the optimistic entry with the given temporary
// identity. When the store confirmed the entry it re-appears in the next
// payload under its authoritative identity; the temporary identity is not
// migrated, so selection against it is not guaranteed to survive.
func (v *ViewState) ResolvePending(tempID string) {
	v.mu.Lock()
	defer v.mu.Unlock()
	kept := v.pending[:0]
	for _, e := range v.pending {
		if e.EntryID != tempID {
			kept = append(kept, e)
		}
	}
	v.pending = kept
}

// PendingCount returns the number of unconfirmed optimistic entries.
func (v *ViewState) PendingCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.pending)
}

// ApplyPending returns the payload with unconfirmed optimistic entries
// appended to the current partition. The input payload is not mutated; a nil
// payload stays nil so the no-data precedence of Partition is preserved.
func (v *ViewState) ApplyPending(payload *domain.LedgerPayload) *domain.LedgerPayload {
	v.mu.Lock()
	defer v.mu.Unlock()
	if payload == nil || len(v.pending) == 0 {
		return payload
	}
	merged := &domain.LedgerPayload{
		LedgerEntries: make([]domain.TransactionEntry, 0, len(payload.LedgerEntries)+len(v.pending)),
		OldRecords:    payload.OldRecords,
	}
	merged.LedgerEntries = append(merged.LedgerEntries, payload.LedgerEntries...)
	merged.LedgerEntries = append(merged.LedgerEntries, v.pending...)
	return merged
}
