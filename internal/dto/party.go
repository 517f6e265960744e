package dto

import (
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest defines the data needed to create a new party.
type CreatePartyRequest struct {
	Name        string          `json:"name" binding:"required"`
	CompanyName string          `json:"companyName"` // Optional, defaults to Name
	Status      string          `json:"status"`
	MCommission string          `json:"mCommission"`
	Rate        decimal.Decimal `json:"rate"`
	CommiSystem string          `json:"commiSystem"`
	SrNo        int             `json:"srNo"`
}

// UpdatePartyRequest defines the data allowed for updating a party.
// Use pointers to distinguish between zero-value updates and fields not provided.
type UpdatePartyRequest struct {
	Name        *string          `json:"name"`
	CompanyName *string          `json:"companyName"`
	Status      *string          `json:"status"`
	MCommission *string          `json:"mCommission"`
	Rate        *decimal.Decimal `json:"rate"`
	CommiSystem *string          `json:"commiSystem"`
	SrNo        *int             `json:"srNo"`
}

// PartyResponse defines the data returned for a party.
type PartyResponse struct {
	PartyID     string          `json:"partyID"`
	Name        string          `json:"name"`
	CompanyName string          `json:"companyName"`
	DisplayName string          `json:"displayName"`
	Status      string          `json:"status"`
	MCommission string          `json:"mCommission"`
	Rate        decimal.Decimal `json:"rate"`
	CommiSystem string          `json:"commiSystem"`
	MondayFinal string          `json:"mondayFinal"`
	SrNo        int             `json:"srNo"`

	// Restricted-party policy, evaluated against the configured company name.
	IsEditingAllowed             bool `json:"isEditingAllowed"`
	IsDeletionAllowed            bool `json:"isDeletionAllowed"`
	IsMondayFinalAllowed         bool `json:"isMondayFinalAllowed"`
	IsTransactionAdditionAllowed bool `json:"isTransactionAdditionAllowed"`
}

// ToPartyResponse converts a domain.Party to PartyResponse, evaluating the
// permission predicates against the configured company name.
func ToPartyResponse(p *domain.Party, companyName string) PartyResponse {
	return PartyResponse{
		PartyID:                      p.PartyID,
		Name:                         p.Name,
		CompanyName:                  p.CompanyName,
		DisplayName:                  p.DisplayName(),
		Status:                       p.Status,
		MCommission:                  p.MCommission,
		Rate:                         p.Rate,
		CommiSystem:                  p.CommiSystem,
		MondayFinal:                  p.MondayFinal,
		SrNo:                         p.SrNo,
		IsEditingAllowed:             ledgerview.IsPartyEditingAllowed(p.Name, companyName),
		IsDeletionAllowed:            ledgerview.IsPartyDeletionAllowed(p.Name, companyName),
		IsMondayFinalAllowed:         ledgerview.IsMondayFinalAllowed(p.Name, companyName),
		IsTransactionAdditionAllowed: ledgerview.IsTransactionAdditionAllowed(p.Name, companyName),
	}
}

// ToListPartyResponse converts a slice of domain.Party to response DTOs.
func ToListPartyResponse(parties []domain.Party, companyName string) []PartyResponse {
	res := make([]PartyResponse, len(parties))
	for i, p := range parties {
		res[i] = ToPartyResponse(&p, companyName)
	}
	return res
}
