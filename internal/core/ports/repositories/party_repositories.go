package repositories

import (
	"context"

	"github.com/hisabline/party_ledger_app/internal/core/domain"
)

// PartyDirectoryReader defines read operations against the party directory.
type PartyDirectoryReader interface {
	// FindAllParties retrieves every party record, already coalesced into
	// canonical form by the adapter.
	FindAllParties(ctx context.Context) ([]domain.Party, error)

	// FindPartyByID retrieves a specific party.
	FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error)
}

// PartyDirectoryWriter defines write operations against the party directory.
type PartyDirectoryWriter interface {
	// SaveParty persists a new party.
	SaveParty(ctx context.Context, party domain.Party) error

	// UpdateParty updates an existing party's details.
	UpdateParty(ctx context.Context, party domain.Party) error

	// DeleteParty removes a party.
	DeleteParty(ctx context.Context, partyID string) error
}

// PartyDirectoryFacade combines all party-directory operations. Both the
// PostgreSQL repository and the remote HTTP client implement it.
type PartyDirectoryFacade interface {
	PartyDirectoryReader
	PartyDirectoryWriter
}
