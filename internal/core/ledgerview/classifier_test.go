package ledgerview_test

import (
	"testing"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTypeLabel(t *testing.T) {
	assert.Equal(t, "CR", ledgerview.TypeLabel(domain.TransactionEntry{Type: domain.EntryTypeCredit}))
	assert.Equal(t, "DR", ledgerview.TypeLabel(domain.TransactionEntry{Type: domain.EntryTypeDebit}))
	assert.Equal(t, "-", ledgerview.TypeLabel(domain.TransactionEntry{}))
}

func TestClassifyAmount(t *testing.T) {
	assert.Equal(t, ledgerview.AmountCredit, ledgerview.ClassifyAmount(domain.TransactionEntry{Type: domain.EntryTypeCredit}))
	assert.Equal(t, ledgerview.AmountDebit, ledgerview.ClassifyAmount(domain.TransactionEntry{Type: domain.EntryTypeDebit}))
	// Untagged legacy rows render debit-style.
	assert.Equal(t, ledgerview.AmountDebit, ledgerview.ClassifyAmount(domain.TransactionEntry{}))
}

func TestClassifyBalance(t *testing.T) {
	tests := []struct {
		name    string
		balance decimal.Decimal
		want    ledgerview.BalanceClass
	}{
		{"positive", decimal.NewFromInt(1500), ledgerview.BalancePositive},
		{"negative", decimal.NewFromInt(-20), ledgerview.BalanceNegative},
		{"zero", decimal.Zero, ledgerview.BalanceZero},
		{"absent defaults to zero", decimal.Decimal{}, ledgerview.BalanceZero},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ledgerview.ClassifyBalance(domain.TransactionEntry{Balance: tt.balance})
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDateLabel(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"date only", "2024-03-09", "09/03/2024"},
		{"rfc3339 timestamp", "2024-03-09T10:30:00Z", "09/03/2024"},
		{"already day month year", "09/03/2024", "09/03/2024"},
		{"missing", "", "-"},
		{"placeholder passthrough", "-", "-"},
		{"garbage degrades without panicking", "not-a-date", "-"},
		{"partial date degrades", "2024-13-45", "-"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledgerview.DateLabel(tt.raw))
		})
	}
}
