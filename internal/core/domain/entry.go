package domain

import "github.com/shopspring/decimal"

// EntryType indicates whether a ledger line is a Credit or a Debit.
type EntryType string

const (
	EntryTypeCredit EntryType = "CR"
	EntryTypeDebit  EntryType = "DR"
)

// TransactionEntry is one ledger line in canonical form.
//
// Historical records arrive with several spellings for the same field
// (tnsType/tns_type/type, partyName/party_name, id/_id/ti). The adapters
// coalesce those aliases at the boundary; nothing downstream sees them.
type TransactionEntry struct {
	// EntryID is the first non-empty of the backend id, the legacy mongo
	// id, and the sequence token. Empty for legacy rows missing all three;
	// those get a per-render synthesized identity instead.
	EntryID string `json:"entryID"`
	PartyID string `json:"partyID"`

	Date    string          `json:"date"` // date-only, as supplied; no time component
	Credit  decimal.Decimal `json:"credit"`
	Debit   decimal.Decimal `json:"debit"`
	Balance decimal.Decimal `json:"balance"` // running total as supplied by the store, never recomputed here
	Type    EntryType       `json:"type"`    // empty when the record carries no usable tag
	Remarks string          `json:"remarks"` // free text, optionally legacy "name: note" encoded

	PartyName            string `json:"partyName"`            // ledger-owner's counterparty, may be absent
	TransactionPartyName string `json:"transactionPartyName"` // user-selected override, takes precedence

	IsOldRecord  bool `json:"isOldRecord"`  // archived by a Monday Final settlement
	IsOptimistic bool `json:"isOptimistic"` // client-added, not yet confirmed by the store

	AuditFields
}
