package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

// LedgerClient is an HTTP client for the ledger-entry service.
type LedgerClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewLedgerClient creates a new ledger-entry client.
func NewLedgerClient(baseURL string, logger *slog.Logger) *LedgerClient {
	return &LedgerClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With(slog.String("component", "ledger_store")),
	}
}

var _ portsrepo.LedgerStoreFacade = (*LedgerClient)(nil)

// rawEntry is the alias-ridden upstream shape for one ledger line. Identity
// spellings (id, _id, ti) and the type tag (tnsType, tns_type, type) each
// carry a first-non-empty precedence; ti arrives as a bare number on legacy
// rows.
type rawEntry struct {
	ID      string      `json:"id"`
	MongoID string      `json:"_id"`
	Ti      json.Number `json:"ti"`

	Date    string          `json:"date"`
	Credit  decimal.Decimal `json:"credit"`
	Debit   decimal.Decimal `json:"debit"`
	Balance decimal.Decimal `json:"balance"`

	TnsType    string `json:"tnsType"`
	TnsTypeSnk string `json:"tns_type"`
	Type       string `json:"type"`

	Remarks              string `json:"remarks"`
	PartyName            string `json:"partyName"`
	PartyNameSnk         string `json:"party_name"`
	TransactionPartyName string `json:"transactionPartyName"`

	IsOldRecord    bool `json:"is_old_record"`
	IsOldRecordCml bool `json:"isOldRecord"`
}

func (r rawEntry) toDomain() domain.TransactionEntry {
	return domain.TransactionEntry{
		EntryID:              firstNonEmpty(r.ID, r.MongoID, r.Ti.String()),
		Date:                 r.Date,
		Credit:               r.Credit,
		Debit:                r.Debit,
		Balance:              r.Balance,
		Type:                 domain.EntryType(firstNonEmpty(r.TnsType, r.TnsTypeSnk, r.Type)),
		Remarks:              r.Remarks,
		PartyName:            firstNonEmpty(r.PartyName, r.PartyNameSnk),
		TransactionPartyName: r.TransactionPartyName,
		IsOldRecord:          r.IsOldRecord || r.IsOldRecordCml,
	}
}

type ledgerPayloadResponse struct {
	LedgerEntries []rawEntry `json:"ledgerEntries"`
	OldRecords    []rawEntry `json:"oldRecords"`
}

type entryResponse struct {
	Success bool     `json:"success"`
	Data    rawEntry `json:"data"`
	Message string   `json:"message"`
}

func (c *LedgerClient) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return doJSONRequest(ctx, c.httpClient, c.logger, "ledger store", c.baseURL, method, path, payload)
}

// FindLedgerByParty retrieves a party's full entry history in the store's
// chronological order.
func (c *LedgerClient) FindLedgerByParty(ctx context.Context, partyID string) (*domain.LedgerPayload, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/parties/"+url.PathEscape(partyID)+"/ledger", nil)
	if err != nil {
		return nil, err
	}

	var decoded ledgerPayloadResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode ledger payload: %w", err)
	}

	payload := &domain.LedgerPayload{
		LedgerEntries: make([]domain.TransactionEntry, 0, len(decoded.LedgerEntries)),
		OldRecords:    make([]domain.TransactionEntry, 0, len(decoded.OldRecords)),
	}
	for _, raw := range decoded.LedgerEntries {
		e := raw.toDomain()
		e.PartyID = partyID
		payload.LedgerEntries = append(payload.LedgerEntries, e)
	}
	for _, raw := range decoded.OldRecords {
		e := raw.toDomain()
		e.PartyID = partyID
		e.IsOldRecord = true
		payload.OldRecords = append(payload.OldRecords, e)
	}
	return payload, nil
}

// SaveEntry persists a new entry and returns it with the authoritative
// identity and running balance assigned by the store.
func (c *LedgerClient) SaveEntry(ctx context.Context, entry domain.TransactionEntry) (*domain.TransactionEntry, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/parties/"+url.PathEscape(entry.PartyID)+"/entries", entry)
	if err != nil {
		return nil, err
	}

	var decoded entryResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode saved entry: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("ledger store rejected entry: %s: %w", decoded.Message, apperrors.ErrUpstream)
	}

	saved := decoded.Data.toDomain()
	saved.PartyID = entry.PartyID
	return &saved, nil
}

// DeleteEntries removes the entries with the given backend identities.
func (c *LedgerClient) DeleteEntries(ctx context.Context, partyID string, entryIDs []string) error {
	payload := map[string][]string{"entryIDs": entryIDs}
	_, err := c.doRequest(ctx, http.MethodPost, "/parties/"+url.PathEscape(partyID)+"/entries/delete", payload)
	return err
}

// ArchiveEntries runs the Monday Final settlement upstream.
func (c *LedgerClient) ArchiveEntries(ctx context.Context, partyID string, userID string) error {
	payload := map[string]string{"userID": userID}
	_, err := c.doRequest(ctx, http.MethodPost, "/parties/"+url.PathEscape(partyID)+"/monday-final", payload)
	return err
}
