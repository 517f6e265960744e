package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

func TestPartyNormalize(t *testing.T) {
	tests := []struct {
		name            string
		party           domain.Party
		wantName        string
		wantCompanyName string
	}{
		{
			name:            "company name defaults to party name",
			party:           domain.Party{Name: "Acme"},
			wantName:        "Acme",
			wantCompanyName: "Acme",
		},
		{
			name:            "whitespace trimmed before defaulting",
			party:           domain.Party{Name: " Acme ", CompanyName: "   "},
			wantName:        "Acme",
			wantCompanyName: "Acme",
		},
		{
			name:            "distinct company name kept",
			party:           domain.Party{Name: "Acme", CompanyName: "Acme Traders"},
			wantName:        "Acme",
			wantCompanyName: "Acme Traders",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.party
			p.Normalize()
			assert.Equal(t, tt.wantName, p.Name)
			assert.Equal(t, tt.wantCompanyName, p.CompanyName)
		})
	}
}

func TestDisplayNameRoundTrip(t *testing.T) {
	tests := []struct {
		name        string
		party       domain.Party
		wantDisplay string
	}{
		{
			name:        "same company name renders bare",
			party:       domain.Party{Name: "Acme", CompanyName: "Acme"},
			wantDisplay: "Acme",
		},
		{
			name:        "distinct company name renders composite",
			party:       domain.Party{Name: "Acme", CompanyName: "Acme Traders"},
			wantDisplay: "Acme (Acme Traders)",
		},
		{
			name:        "empty company name renders bare",
			party:       domain.Party{Name: "Acme"},
			wantDisplay: "Acme",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			display := tt.party.DisplayName()
			assert.Equal(t, tt.wantDisplay, display)
			assert.Equal(t, tt.party.Name, domain.ParseDisplayName(display))
		})
	}
}
