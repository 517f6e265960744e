package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/hisabline/party_ledger_app/internal/utils"
)

// partyCatalogService loads, normalizes, and indexes party records from the
// party directory. A load in flight suppresses a second concurrent load, and
// a failed load leaves the previously published lists untouched.
type partyCatalogService struct {
	BaseService
	directory   portsrepo.PartyDirectoryFacade
	companyName string
	telemetry   *utils.TelemetryClient

	mu      sync.Mutex
	loading bool

	// Published state, replaced wholesale on a successful load.
	parties            []domain.Party
	transactionParties []domain.Party
	byName             map[string]*domain.Party
	byID               map[string]*domain.Party
}

// CatalogOption is a functional option for configuring the party catalog.
type CatalogOption func(*partyCatalogService)

// WithTelemetryClient adds the telemetry client dependency.
func WithTelemetryClient(t *utils.TelemetryClient) CatalogOption {
	return func(s *partyCatalogService) {
		s.telemetry = t
	}
}

// NewPartyCatalogService creates a new party catalog backed by the given
// directory. companyName is the ledger owner's configured business name used
// for the restricted-party policy.
func NewPartyCatalogService(directory portsrepo.PartyDirectoryFacade, companyName string, options ...CatalogOption) portssvc.PartyCatalogSvcFacade {
	svc := &partyCatalogService{
		directory:   directory,
		companyName: companyName,
		byName:      make(map[string]*domain.Party),
		byID:        make(map[string]*domain.Party),
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.PartyCatalogSvcFacade = (*partyCatalogService)(nil)

// LoadAll fetches every party record and republishes the catalog. A second
// call while one is in flight is a no-op rather than a cancellation.
func (s *partyCatalogService) LoadAll(ctx context.Context) error {
	s.mu.Lock()
	if s.loading {
		s.mu.Unlock()
		s.LogDebug(ctx, "Party load already in flight, suppressing concurrent load")
		return nil
	}
	s.loading = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		s.loading = false
		s.mu.Unlock()
	}()

	records, err := s.directory.FindAllParties(ctx)
	if err != nil {
		// State is left at its previous (possibly empty) value; the
		// caller surfaces the notification.
		s.LogError(ctx, err, "Failed to load parties from directory")
		if s.telemetry != nil {
			s.telemetry.Enqueue("system", "party_catalog_load_failed", map[string]any{"error": err.Error()})
		}
		return fmt.Errorf("failed to load parties: %w", apperrors.ErrUpstream)
	}

	parties := make([]domain.Party, 0, len(records))
	byName := make(map[string]*domain.Party, len(records))
	byID := make(map[string]*domain.Party, len(records))
	for _, p := range records {
		p.Normalize()
		parties = append(parties, p)
	}
	for i := range parties {
		byName[parties[i].Name] = &parties[i]
		byID[parties[i].PartyID] = &parties[i]
	}

	// The transaction-party list is published separately so exclusion
	// filtering can be added later without mutating the canonical list.
	transactionParties := make([]domain.Party, len(parties))
	copy(transactionParties, parties)

	s.mu.Lock()
	s.parties = parties
	s.transactionParties = transactionParties
	s.byName = byName
	s.byID = byID
	s.mu.Unlock()

	s.LogInfo(ctx, "Party catalog loaded", slog.Int("count", len(parties)))
	return nil
}

// Parties returns the canonical normalized list.
func (s *partyCatalogService) Parties() []domain.Party {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Party, len(s.parties))
	copy(out, s.parties)
	return out
}

// TransactionParties returns the list reserved for transaction-party selection.
func (s *partyCatalogService) TransactionParties() []domain.Party {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Party, len(s.transactionParties))
	copy(out, s.transactionParties)
	return out
}

// FindByDisplayName parses the composite display label back to a bare party
// name and looks it up by exact match against each party's normalized name.
func (s *partyCatalogService) FindByDisplayName(display string) (*domain.Party, bool) {
	name := domain.ParseDisplayName(display)
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byName[name]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// FindByID looks a party up by its canonical key.
func (s *partyCatalogService) FindByID(partyID string) (*domain.Party, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.byID[partyID]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// CreateParty persists a new party and refreshes the catalog.
func (s *partyCatalogService) CreateParty(ctx context.Context, req dto.CreatePartyRequest, userID string) (*domain.Party, error) {
	now := time.Now()
	party := domain.Party{
		PartyID:     uuid.NewString(),
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Status:      req.Status,
		MCommission: req.MCommission,
		Rate:        req.Rate,
		CommiSystem: req.CommiSystem,
		SrNo:        req.SrNo,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	party.Normalize()

	if err := s.directory.SaveParty(ctx, party); err != nil {
		s.LogError(ctx, err, "Failed to save party", slog.String("party_name", party.Name))
		return nil, err
	}

	s.LogInfo(ctx, "Party created", slog.String("party_id", party.PartyID), slog.String("party_name", party.Name))
	s.refresh(ctx)
	return &party, nil
}

// UpdateParty applies the given changes. The company and commission parties
// may not be edited.
func (s *partyCatalogService) UpdateParty(ctx context.Context, partyID string, req dto.UpdatePartyRequest, userID string) (*domain.Party, error) {
	party, err := s.directory.FindPartyByID(ctx, partyID)
	if err != nil {
		return nil, err
	}

	if !ledgerview.IsPartyEditingAllowed(party.Name, s.companyName) {
		s.LogDebug(ctx, "Refusing to edit restricted party", slog.String("party_name", party.Name))
		return nil, fmt.Errorf("party %q is system managed: %w", party.Name, apperrors.ErrForbidden)
	}

	updated := false
	if req.Name != nil {
		party.Name = *req.Name
		updated = true
	}
	if req.CompanyName != nil {
		party.CompanyName = *req.CompanyName
		updated = true
	}
	if req.Status != nil {
		party.Status = *req.Status
		updated = true
	}
	if req.MCommission != nil {
		party.MCommission = *req.MCommission
		updated = true
	}
	if req.Rate != nil {
		party.Rate = *req.Rate
		updated = true
	}
	if req.CommiSystem != nil {
		party.CommiSystem = *req.CommiSystem
		updated = true
	}
	if req.SrNo != nil {
		party.SrNo = *req.SrNo
		updated = true
	}
	if !updated {
		s.LogDebug(ctx, "No fields provided for party update", slog.String("party_id", partyID))
		return party, nil
	}

	party.Normalize()
	party.LastUpdatedAt = time.Now()
	party.LastUpdatedBy = userID

	if err := s.directory.UpdateParty(ctx, *party); err != nil {
		s.LogError(ctx, err, "Failed to update party", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Party updated", slog.String("party_id", partyID))
	s.refresh(ctx)
	return party, nil
}

// DeleteParty removes a party. The company and commission parties may not be
// deleted.
func (s *partyCatalogService) DeleteParty(ctx context.Context, partyID string, userID string) error {
	party, err := s.directory.FindPartyByID(ctx, partyID)
	if err != nil {
		return err
	}

	if !ledgerview.IsPartyDeletionAllowed(party.Name, s.companyName) {
		s.LogDebug(ctx, "Refusing to delete restricted party", slog.String("party_name", party.Name))
		return fmt.Errorf("party %q is system managed: %w", party.Name, apperrors.ErrForbidden)
	}

	if err := s.directory.DeleteParty(ctx, partyID); err != nil {
		s.LogError(ctx, err, "Failed to delete party", slog.String("party_id", partyID))
		return err
	}

	s.LogInfo(ctx, "Party deleted", slog.String("party_id", partyID), slog.String("deleted_by", userID))
	s.refresh(ctx)
	return nil
}

// refresh re-runs LoadAll after a mutation, tolerating the in-flight guard.
func (s *partyCatalogService) refresh(ctx context.Context) {
	if err := s.LoadAll(ctx); err != nil {
		s.LogError(ctx, err, "Catalog refresh after mutation failed; serving stale catalog")
	}
}
