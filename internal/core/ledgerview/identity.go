// Package ledgerview is the ledger entry reconciliation and display model:
// it normalizes heterogeneous transaction records into display rows,
// partitions them into current vs archived sets, and tracks multi-select
// state over a dynamically changing, optimistically-updated entry list.
package ledgerview

import (
	"fmt"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

// ResolveIdentity returns the identity key for an entry at a given render
// position. The entry's coalesced id (backend id, legacy _id, or sequence
// token, in that precedence) wins when present; rows missing all three get a
// synthesized token that is stable within one render pass but not across
// reloads. Selection membership is always evaluated against this value.
func ResolveIdentity(e domain.TransactionEntry, index int) string {
	if e.EntryID != "" {
		return e.EntryID
	}
	return fmt.Sprintf("entry_%d", index)
}

// RenderKey is the list key for one rendered row. Two legacy rows can resolve
// to the same fallback identity, so the render key concatenates the identity
// with the row index. It must never be used for selection lookups, or
// colliding rows would share checked state.
func RenderKey(identity string, index int) string {
	return fmt.Sprintf("%s_%d", identity, index)
}
