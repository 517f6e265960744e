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
	"github.com/shopspring/decimal"
)

// ledgerViewService is the rendering boundary between the ledger store and
// the browser: it fetches a party's payload, partitions it, formats rows, and
// owns each user's transient view state (selection, toggle, optimistic
// entries).
type ledgerViewService struct {
	BaseService
	store       portsrepo.LedgerStoreFacade
	catalog     portssvc.PartyCatalogReaderSvc
	companyName string

	mu     sync.Mutex
	states map[string]*ledgerview.ViewState // keyed by user ID
}

// NewLedgerViewService creates a new ledger view service.
func NewLedgerViewService(store portsrepo.LedgerStoreFacade, catalog portssvc.PartyCatalogReaderSvc, companyName string) portssvc.LedgerViewSvcFacade {
	return &ledgerViewService{
		store:       store,
		catalog:     catalog,
		companyName: companyName,
		states:      make(map[string]*ledgerview.ViewState),
	}
}

var _ portssvc.LedgerViewSvcFacade = (*ledgerViewService)(nil)

// viewState returns the user's view state for the party, resetting selection
// and pending entries when a different party's ledger is opened.
func (s *ledgerViewService) viewState(userID, partyID string) *ledgerview.ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()
	state, ok := s.states[userID]
	if !ok || state.PartyID() != partyID {
		state = ledgerview.NewViewState(partyID)
		s.states[userID] = state
	}
	return state
}

// GetLedgerView returns the formatted rows of the selected partition plus the
// empty-state message when there is nothing to render.
func (s *ledgerViewService) GetLedgerView(ctx context.Context, userID, partyID string, showOldRecords bool) ([]ledgerview.EntryRow, string, error) {
	state := s.viewState(userID, partyID)
	state.SetShowOldRecords(showOldRecords)

	payload, err := s.store.FindLedgerByParty(ctx, partyID)
	if err != nil {
		s.LogError(ctx, err, "Failed to fetch ledger payload", slog.String("party_id", partyID))
		return nil, "", fmt.Errorf("failed to fetch ledger for party %s: %w", partyID, err)
	}

	entries, emptyMsg := ledgerview.Partition(state.ApplyPending(payload), showOldRecords)
	rows := ledgerview.BuildRows(entries, state.Selection())
	return rows, emptyMsg, nil
}

// AddTransaction records a new entry: the optimistic copy renders immediately
// under a temporary identity, the store assigns the authoritative one. The
// temporary identity is not migrated into the selection set.
func (s *ledgerViewService) AddTransaction(ctx context.Context, userID, partyID string, req dto.CreateEntryRequest) (*domain.TransactionEntry, error) {
	party, ok := s.catalog.FindByID(partyID)
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	if !ledgerview.IsTransactionAdditionAllowed(party.Name, s.companyName) {
		s.LogDebug(ctx, "Refusing transaction for restricted party", slog.String("party_name", party.Name))
		return nil, fmt.Errorf("party %q is system managed: %w", party.Name, apperrors.ErrForbidden)
	}

	credit := decimal.Zero
	debit := decimal.Zero
	if req.Type == domain.EntryTypeCredit {
		credit = req.Amount
	} else {
		debit = req.Amount
	}

	now := time.Now()
	tempID := uuid.NewString()
	entry := domain.TransactionEntry{
		EntryID:              tempID,
		PartyID:              partyID,
		Date:                 req.Date,
		Credit:               credit,
		Debit:                debit,
		Type:                 req.Type,
		Remarks:              req.Remarks,
		PartyName:            party.Name,
		TransactionPartyName: req.TransactionPartyName,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	state := s.viewState(userID, partyID)
	state.AppendPending(entry)

	saved, err := s.store.SaveEntry(ctx, entry)
	// The optimistic copy has served its purpose either way: confirmed
	// entries arrive in the next payload under their authoritative
	// identity, failed ones must stop rendering.
	state.ResolvePending(tempID)
	if err != nil {
		s.LogError(ctx, err, "Failed to save entry", slog.String("party_id", partyID))
		return nil, err
	}

	s.LogInfo(ctx, "Entry recorded",
		slog.String("party_id", partyID),
		slog.String("entry_id", saved.EntryID),
		slog.String("type", string(saved.Type)))
	return saved, nil
}

// Select marks or unmarks one entry identity in the user's view.
func (s *ledgerViewService) Select(ctx context.Context, userID, partyID string, entryID string, checked bool) error {
	if entryID == "" {
		return apperrors.ErrValidation
	}
	s.viewState(userID, partyID).Selection().Select(entryID, checked)
	return nil
}

// SelectAll marks or unmarks the given identities in bulk.
func (s *ledgerViewService) SelectAll(ctx context.Context, userID, partyID string, entryIDs []string, checked bool) error {
	s.viewState(userID, partyID).Selection().SelectAll(entryIDs, checked)
	return nil
}

// ClearSelection empties the user's selection.
func (s *ledgerViewService) ClearSelection(ctx context.Context, userID, partyID string) error {
	s.viewState(userID, partyID).Selection().Clear()
	return nil
}

// DeleteSelected removes the currently selected entries from the store.
func (s *ledgerViewService) DeleteSelected(ctx context.Context, userID, partyID string) (int, error) {
	party, ok := s.catalog.FindByID(partyID)
	if !ok {
		return 0, apperrors.ErrNotFound
	}
	if !ledgerview.IsPartyEditingAllowed(party.Name, s.companyName) {
		return 0, fmt.Errorf("party %q is system managed: %w", party.Name, apperrors.ErrForbidden)
	}

	state := s.viewState(userID, partyID)
	selected := state.Selection().Selected()
	if len(selected) == 0 {
		return 0, nil
	}

	if err := s.store.DeleteEntries(ctx, partyID, selected); err != nil {
		s.LogError(ctx, err, "Failed to delete entries", slog.String("party_id", partyID), slog.Int("count", len(selected)))
		return 0, err
	}

	state.Selection().Clear()
	s.LogInfo(ctx, "Entries deleted", slog.String("party_id", partyID), slog.Int("count", len(selected)))
	return len(selected), nil
}

// SettleMondayFinal archives the party's current entries. Restricted parties
// are excluded from settlement.
func (s *ledgerViewService) SettleMondayFinal(ctx context.Context, userID, partyID string) error {
	party, ok := s.catalog.FindByID(partyID)
	if !ok {
		return apperrors.ErrNotFound
	}
	if !ledgerview.IsMondayFinalAllowed(party.Name, s.companyName) {
		s.LogDebug(ctx, "Refusing settlement for restricted party", slog.String("party_name", party.Name))
		return fmt.Errorf("party %q is excluded from settlement: %w", party.Name, apperrors.ErrForbidden)
	}

	if err := s.store.ArchiveEntries(ctx, partyID, userID); err != nil {
		s.LogError(ctx, err, "Failed to archive entries", slog.String("party_id", partyID))
		return err
	}

	s.LogInfo(ctx, "Monday Final settled", slog.String("party_id", partyID))
	return nil
}
