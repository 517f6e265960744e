// Package remote contains HTTP clients for the upstream party-directory and
// ledger-entry services. The upstream payloads carry both snake_case and
// camelCase spellings for most fields; the raw decode types here coalesce the
// aliases into canonical domain records so nothing downstream ever sees them.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portsrepo "github.com/hisabline/party_ledger_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
)

const requestTimeout = 30 * time.Second

// PartyClient is an HTTP client for the party-directory service.
type PartyClient struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewPartyClient creates a new party-directory client.
func NewPartyClient(baseURL string, logger *slog.Logger) *PartyClient {
	return &PartyClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: requestTimeout,
		},
		logger: logger.With(slog.String("component", "party_directory")),
	}
}

var _ portsrepo.PartyDirectoryFacade = (*PartyClient)(nil)

// rawParty is the alias-ridden upstream shape. firstNonEmpty picks the
// authoritative spelling for each field.
type rawParty struct {
	ID          string          `json:"id"`
	MongoID     string          `json:"_id"`
	Name        string          `json:"name"`
	PartyName   string          `json:"party_name"`
	PartyNameC  string          `json:"partyName"`
	CompanyName string          `json:"companyName"`
	CompanySnk  string          `json:"company_name"`
	Status      string          `json:"status"`
	MCommission string          `json:"mCommission"`
	MCommSnk    string          `json:"m_commission"`
	Rate        decimal.Decimal `json:"rate"`
	CommiSystem string          `json:"commiSystem"`
	CommiSnk    string          `json:"commi_system"`
	MondayFinal string          `json:"mondayFinal"`
	MondaySnk   string          `json:"monday_final"`
	SrNo        int             `json:"srNo"`
	SrNoSnk     int             `json:"sr_no"`
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

func (r rawParty) toDomain() domain.Party {
	srNo := r.SrNo
	if srNo == 0 {
		srNo = r.SrNoSnk
	}
	p := domain.Party{
		PartyID:     firstNonEmpty(r.ID, r.MongoID),
		Name:        firstNonEmpty(r.Name, r.PartyName, r.PartyNameC),
		CompanyName: firstNonEmpty(r.CompanyName, r.CompanySnk),
		Status:      r.Status,
		MCommission: firstNonEmpty(r.MCommission, r.MCommSnk),
		Rate:        r.Rate,
		CommiSystem: firstNonEmpty(r.CommiSystem, r.CommiSnk),
		MondayFinal: firstNonEmpty(r.MondayFinal, r.MondaySnk),
		SrNo:        srNo,
	}
	p.Normalize()
	return p
}

type partyListResponse struct {
	Success bool       `json:"success"`
	Data    []rawParty `json:"data"`
	Message string     `json:"message"`
}

type partyResponse struct {
	Success bool     `json:"success"`
	Data    rawParty `json:"data"`
	Message string   `json:"message"`
}

// doJSONRequest performs one JSON request against an upstream service,
// mapping 404 to ErrNotFound and every other 4xx/5xx (and transport failure)
// to ErrUpstream.
func doJSONRequest(ctx context.Context, client *http.Client, logger *slog.Logger, service, baseURL, method, path string, payload any) ([]byte, error) {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to encode request body: %w", err)
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s request failed: %w", service, apperrors.ErrUpstream)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	logger.Debug("upstream response",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status_code", resp.StatusCode),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, apperrors.ErrNotFound
	case resp.StatusCode >= 400:
		return nil, fmt.Errorf("%s returned status %d: %w", service, resp.StatusCode, apperrors.ErrUpstream)
	}
	return respBody, nil
}

func (c *PartyClient) doRequest(ctx context.Context, method, path string, payload any) ([]byte, error) {
	return doJSONRequest(ctx, c.httpClient, c.logger, "party directory", c.baseURL, method, path, payload)
}

// FindAllParties retrieves every party record, coalescing the legacy field
// spellings into canonical form.
func (c *PartyClient) FindAllParties(ctx context.Context) ([]domain.Party, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/parties", nil)
	if err != nil {
		return nil, err
	}

	var decoded partyListResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode party list: %w", err)
	}
	if !decoded.Success {
		return nil, fmt.Errorf("party directory reported failure: %s: %w", decoded.Message, apperrors.ErrUpstream)
	}

	parties := make([]domain.Party, 0, len(decoded.Data))
	for _, raw := range decoded.Data {
		parties = append(parties, raw.toDomain())
	}
	return parties, nil
}

// FindPartyByID retrieves a specific party.
func (c *PartyClient) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/parties/"+url.PathEscape(partyID), nil)
	if err != nil {
		return nil, err
	}

	var decoded partyResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, fmt.Errorf("failed to decode party: %w", err)
	}
	if !decoded.Success {
		return nil, apperrors.ErrNotFound
	}

	p := decoded.Data.toDomain()
	return &p, nil
}

// SaveParty persists a new party.
func (c *PartyClient) SaveParty(ctx context.Context, party domain.Party) error {
	_, err := c.doRequest(ctx, http.MethodPost, "/parties", party)
	return err
}

// UpdateParty updates an existing party's details.
func (c *PartyClient) UpdateParty(ctx context.Context, party domain.Party) error {
	_, err := c.doRequest(ctx, http.MethodPut, "/parties/"+url.PathEscape(party.PartyID), party)
	return err
}

// DeleteParty removes a party.
func (c *PartyClient) DeleteParty(ctx context.Context, partyID string) error {
	_, err := c.doRequest(ctx, http.MethodDelete, "/parties/"+url.PathEscape(partyID), nil)
	return err
}
