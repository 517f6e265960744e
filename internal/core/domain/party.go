package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Party represents a counterparty (or the ledger owner itself) against whom
// transactions are recorded. This is the canonical form: the directory
// adapters coalesce the legacy field spellings (name/party_name and friends)
// before a Party reaches any service.
type Party struct {
	PartyID     string          `json:"partyID"` // Primary Key (e.g., UUID)
	Name        string          `json:"name"`
	CompanyName string          `json:"companyName"` // Non-ledger business label; defaults to Name
	Status      string          `json:"status"`
	MCommission string          `json:"mCommission"` // Commission mode, e.g. "With Commission"
	Rate        decimal.Decimal `json:"rate"`
	CommiSystem string          `json:"commiSystem"`
	MondayFinal string          `json:"mondayFinal"` // Settlement marker
	SrNo        int             `json:"srNo"`        // Display ordering hint
	AuditFields
}

// Normalize trims the name labels and defaults CompanyName to the party name.
func (p *Party) Normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.CompanyName = strings.TrimSpace(p.CompanyName)
	if p.CompanyName == "" {
		p.CompanyName = p.Name
	}
}

// DisplayName is the user-facing composite label: "Name (CompanyName)" when
// the company name differs from the party name, else just the party name.
func (p Party) DisplayName() string {
	if p.CompanyName != "" && p.CompanyName != p.Name {
		return p.Name + " (" + p.CompanyName + ")"
	}
	return p.Name
}

// ParseDisplayName recovers the bare party name from a display label by taking
// the substring before the first '(' and trimming it. It is the inverse of
// DisplayName for every party whose company name differs from its name.
func ParseDisplayName(display string) string {
	if idx := strings.Index(display, "("); idx >= 0 {
		display = display[:idx]
	}
	return strings.TrimSpace(display)
}
