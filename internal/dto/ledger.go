package dto

import (
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/shopspring/decimal"
)

// CreateEntryRequest defines the data needed to record a new transaction
// against a party. The amount lands in the credit or debit column according
// to the type tag.
type CreateEntryRequest struct {
	Date                 string           `json:"date" binding:"required"`
	Amount               decimal.Decimal  `json:"amount" binding:"required"`
	Type                 domain.EntryType `json:"type" binding:"required,crdr"`
	Remarks              string           `json:"remarks"`
	TransactionPartyName string           `json:"transactionPartyName"` // Optional override
}

// SelectEntryRequest marks or unmarks one rendered entry.
type SelectEntryRequest struct {
	EntryID string `json:"entryID" binding:"required"`
	Checked bool   `json:"checked"`
}

// SelectAllEntriesRequest marks or unmarks the given identities in bulk.
type SelectAllEntriesRequest struct {
	EntryIDs []string `json:"entryIDs" binding:"required"`
	Checked  bool     `json:"checked"`
}

// LedgerViewResponse is the formatted ledger screen for one partition.
type LedgerViewResponse struct {
	PartyID        string                `json:"partyID"`
	ShowOldRecords bool                  `json:"showOldRecords"`
	Rows           []ledgerview.EntryRow `json:"rows"`
	EmptyMessage   string                `json:"emptyMessage,omitempty"`
	SelectedCount  int                   `json:"selectedCount"`
}

// EntryResponse defines the data returned for a single persisted entry.
type EntryResponse struct {
	EntryID              string          `json:"entryID"`
	PartyID              string          `json:"partyID"`
	Date                 string          `json:"date"`
	Credit               decimal.Decimal `json:"credit"`
	Debit                decimal.Decimal `json:"debit"`
	Balance              decimal.Decimal `json:"balance"`
	Type                 string          `json:"type"`
	Remarks              string          `json:"remarks"`
	TransactionPartyName string          `json:"transactionPartyName"`
	IsOldRecord          bool            `json:"isOldRecord"`
	IsOptimistic         bool            `json:"isOptimistic"`
}

// ToEntryResponse converts a domain.TransactionEntry to EntryResponse.
func ToEntryResponse(e *domain.TransactionEntry) EntryResponse {
	return EntryResponse{
		EntryID:              e.EntryID,
		PartyID:              e.PartyID,
		Date:                 e.Date,
		Credit:               e.Credit,
		Debit:                e.Debit,
		Balance:              e.Balance,
		Type:                 string(e.Type),
		Remarks:              e.Remarks,
		TransactionPartyName: e.TransactionPartyName,
		IsOldRecord:          e.IsOldRecord,
		IsOptimistic:         e.IsOptimistic,
	}
}
