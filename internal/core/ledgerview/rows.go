package ledgerview

import (
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// EntryRow is the fully formatted display form of one ledger line, ready for
// the rendering layer.
type EntryRow struct {
	Identity     string          `json:"identity"`  // selection key
	RenderKey    string          `json:"renderKey"` // list key, identity + row index
	Date         string          `json:"date"`
	PartyName    string          `json:"partyName"`
	Remarks      string          `json:"remarks"`
	TypeLabel    string          `json:"type"`
	Credit       decimal.Decimal `json:"credit"`
	Debit        decimal.Decimal `json:"debit"`
	Balance      decimal.Decimal `json:"balance"`
	AmountClass  AmountClass     `json:"amountClass"`
	BalanceClass BalanceClass    `json:"balanceClass"`
	Selected     bool            `json:"selected"`
	IsOldRecord  bool            `json:"isOldRecord"`
	IsOptimistic bool            `json:"isOptimistic"`
}

// BuildRow formats one raw entry with its selection and index context.
func BuildRow(e domain.TransactionEntry, index int, sel *SelectionTracker) EntryRow {
	identity := ResolveIdentity(e, index)
	selected := false
	if sel != nil {
		selected = sel.IsSelected(identity)
	}
	return EntryRow{
		Identity:     identity,
		RenderKey:    RenderKey(identity, index),
		Date:         DateLabel(e.Date),
		PartyName:    ResolvePartyName(e.Remarks, e.PartyName, e.TransactionPartyName),
		Remarks:      e.Remarks,
		TypeLabel:    TypeLabel(e),
		Credit:       e.Credit,
		Debit:        e.Debit,
		Balance:      e.Balance,
		AmountClass:  ClassifyAmount(e),
		BalanceClass: ClassifyBalance(e),
		Selected:     selected,
		IsOldRecord:  e.IsOldRecord,
		IsOptimistic: e.IsOptimistic,
	}
}

// BuildRows formats a partition's entries in received order.
func BuildRows(entries []domain.TransactionEntry, sel *SelectionTracker) []EntryRow {
	rows := make([]EntryRow, len(entries))
	for i, e := range entries {
		rows[i] = BuildRow(e, i, sel)
	}
	return rows
}
