package ledgerview_test

import (
	"testing"

	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/stretchr/testify/assert"
)

func TestIsCompanyParty(t *testing.T) {
	tests := []struct {
		name        string
		partyName   string
		companyName string
		want        bool
	}{
		{"configured company matches", "Acme Co", "Acme Co", true},
		{"different party", "Bharat Traders", "Acme Co", false},
		{"placeholder guard disables detection", "Company", "Company", false},
		{"unset company disables detection", "Acme Co", "", false},
		{"comparison is exact", "acme co", "Acme Co", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ledgerview.IsCompanyParty(tt.partyName, tt.companyName))
		})
	}
}

func TestIsCommissionParty(t *testing.T) {
	assert.True(t, ledgerview.IsCommissionParty("commission"))
	assert.True(t, ledgerview.IsCommissionParty("COMMISSION"))
	assert.True(t, ledgerview.IsCommissionParty("  Commission "))
	assert.False(t, ledgerview.IsCommissionParty("commissioner"))
	assert.False(t, ledgerview.IsCommissionParty(""))
}

func TestPermissionPredicates(t *testing.T) {
	type predicate func(partyName, companyName string) bool
	predicates := map[string]predicate{
		"mondayFinal":         ledgerview.IsMondayFinalAllowed,
		"partyEditing":        ledgerview.IsPartyEditingAllowed,
		"partyDeletion":       ledgerview.IsPartyDeletionAllowed,
		"transactionAddition": ledgerview.IsTransactionAdditionAllowed,
	}

	for name, allowed := range predicates {
		t.Run(name, func(t *testing.T) {
			assert.False(t, allowed("Acme Co", "Acme Co"), "company party is restricted")
			assert.False(t, allowed("Commission", "Acme Co"), "commission party is restricted")
			assert.True(t, allowed("Bharat Traders", "Acme Co"))
			// Before setup completes nothing is treated as the company party.
			assert.True(t, allowed("Company", "Company"))
		})
	}
}
