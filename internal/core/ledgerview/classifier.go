package ledgerview

import (
	"strings"
	"time"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

// Placeholder is rendered wherever a record is missing a displayable value.
const Placeholder = "-"

// AmountClass is the two-class presentation tag for an entry's amount.
type AmountClass string

const (
	AmountCredit AmountClass = "credit"
	AmountDebit  AmountClass = "debit"
)

// BalanceClass is the three-class presentation tag for the running balance.
type BalanceClass string

const (
	BalancePositive BalanceClass = "positive"
	BalanceNegative BalanceClass = "negative"
	BalanceZero     BalanceClass = "zero"
)

// TypeLabel returns the CR/DR badge text, defaulting to the placeholder when
// the record carried no usable tag under any of its legacy spellings.
func TypeLabel(e domain.TransactionEntry) string {
	if e.Type == "" {
		return Placeholder
	}
	return string(e.Type)
}

// ClassifyAmount selects the presentation class by equality to CR; everything
// else, including untagged legacy rows, renders debit-style.
func ClassifyAmount(e domain.TransactionEntry) AmountClass {
	if e.Type == domain.EntryTypeCredit {
		return AmountCredit
	}
	return AmountDebit
}

// ClassifyBalance tags the sign of the server-supplied running balance. An
// absent balance is the decimal zero value and classifies as zero.
func ClassifyBalance(e domain.TransactionEntry) BalanceClass {
	switch e.Balance.Sign() {
	case 1:
		return BalancePositive
	case -1:
		return BalanceNegative
	default:
		return BalanceZero
	}
}

// dateLayouts covers the shapes the store and legacy records have produced.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05.000Z07:00",
	"02/01/2006",
}

// DateLabel formats an entry date in day/month/year order. Missing or
// unparsable dates degrade to the placeholder; they never error.
func DateLabel(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" || raw == Placeholder {
		return Placeholder
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return Placeholder
}
