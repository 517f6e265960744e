package domain

// LedgerPayload is one party's full entry history as supplied by the ledger
// store: the active ledger plus the records archived by settlement. Ordering
// within each partition is owned by the store and preserved as received.
type LedgerPayload struct {
	LedgerEntries []TransactionEntry `json:"ledgerEntries"`
	OldRecords    []TransactionEntry `json:"oldRecords"`
}
