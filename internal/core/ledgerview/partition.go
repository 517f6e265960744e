package ledgerview

import "github.com/hisabline/party_ledger_app/internal/core/domain"

// Empty-state messages shown in place of the entry table.
const (
	MsgNoPayload    = "Select a party to view their ledger"
	MsgNoOldRecords = "No old records found for this party"
	MsgNoEntries    = "No transactions yet. Add your first transaction to get started"
)

// Partition selects which subset of a ledger payload is rendered.
//
// Precedence: no payload at all wins regardless of the toggle; otherwise an
// empty selected partition yields its partition-specific message. The two
// partitions are never merged or re-sorted; ordering as received is preserved
// (assumed chronological, owned by the store).
func Partition(payload *domain.LedgerPayload, showOldRecords bool) ([]domain.TransactionEntry, string) {
	if payload == nil {
		return nil, MsgNoPayload
	}
	if showOldRecords {
		if len(payload.OldRecords) == 0 {
			return nil, MsgNoOldRecords
		}
		return payload.OldRecords, ""
	}
	if len(payload.LedgerEntries) == 0 {
		return nil, MsgNoEntries
	}
	return payload.LedgerEntries, ""
}
