package services

import (
	"context"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/dto"
)

// PartyCatalogReaderSvc exposes the loaded, normalized party catalog.
type PartyCatalogReaderSvc interface {
	// LoadAll fetches and indexes party records from the directory. It is
	// idempotent and safe to call concurrently: a request in flight
	// suppresses a second concurrent load. A failed load leaves the
	// catalog at its previous state.
	LoadAll(ctx context.Context) error

	// Parties returns the canonical normalized list.
	Parties() []domain.Party

	// TransactionParties returns the list reserved for transaction-party
	// selection, kept separate to allow future exclusion filtering.
	TransactionParties() []domain.Party

	// FindByDisplayName parses a composite display label back to a bare
	// party name and looks it up by exact match.
	FindByDisplayName(display string) (*domain.Party, bool)

	// FindByID looks a party up by its canonical key.
	FindByID(partyID string) (*domain.Party, bool)
}

// PartyCatalogWriterSvc defines party CRUD, with the restricted-party policy
// enforced for the company and commission parties.
type PartyCatalogWriterSvc interface {
	CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error)
	UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error)
	DeleteParty(ctx context.Context, partyID string, userID string) error
}

// PartyCatalogSvcFacade combines all party catalog operations.
type PartyCatalogSvcFacade interface {
	PartyCatalogReaderSvc
	PartyCatalogWriterSvc
}
