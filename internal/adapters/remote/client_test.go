package remote_test

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/hisabline/party_ledger_app/internal/adapters/remote"
	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestPartyClient_FindAllParties_CoalescesAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parties", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// One camelCase record, one legacy snake_case record.
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [
				{"id": "p1", "name": "Acme", "companyName": "Acme Industries", "mCommission": "With Commission", "srNo": 2},
				{"_id": "507f1f77bcf86cd799439011", "party_name": "Globex", "company_name": "Globex Holdings", "m_commission": "Without Commission", "sr_no": 1}
			]
		}`))
	}))
	defer server.Close()

	client := remote.NewPartyClient(server.URL, discardLogger())
	parties, err := client.FindAllParties(context.Background())

	require.NoError(t, err)
	require.Len(t, parties, 2)

	assert.Equal(t, "p1", parties[0].PartyID)
	assert.Equal(t, "Acme", parties[0].Name)
	assert.Equal(t, "Acme Industries", parties[0].CompanyName)
	assert.Equal(t, "With Commission", parties[0].MCommission)
	assert.Equal(t, 2, parties[0].SrNo)

	assert.Equal(t, "507f1f77bcf86cd799439011", parties[1].PartyID)
	assert.Equal(t, "Globex", parties[1].Name)
	assert.Equal(t, "Globex Holdings", parties[1].CompanyName)
	assert.Equal(t, "Without Commission", parties[1].MCommission)
	assert.Equal(t, 1, parties[1].SrNo)
}

func TestPartyClient_FindAllParties_MissingCompanyNameDefaults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": true, "data": [{"id": "p1", "name": " Acme "}]}`))
	}))
	defer server.Close()

	client := remote.NewPartyClient(server.URL, discardLogger())
	parties, err := client.FindAllParties(context.Background())

	require.NoError(t, err)
	require.Len(t, parties, 1)
	assert.Equal(t, "Acme", parties[0].Name)
	assert.Equal(t, "Acme", parties[0].CompanyName)
}

func TestPartyClient_FindAllParties_UpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := remote.NewPartyClient(server.URL, discardLogger())
	_, err := client.FindAllParties(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUpstream)
}

func TestPartyClient_FindPartyByID_NotFound(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	client := remote.NewPartyClient(server.URL, discardLogger())
	_, err := client.FindPartyByID(context.Background(), "missing")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestLedgerClient_FindLedgerByParty_CoalescesAliases(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/parties/p1/ledger", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		// Three generations of identity and type spellings: a modern row,
		// a mongo-era row, and a sequence-token row typed under tns_type.
		_, _ = w.Write([]byte(`{
			"ledgerEntries": [
				{"id": "e1", "date": "2024-03-15", "credit": 100, "balance": 100, "tnsType": "CR", "partyName": "Acme"},
				{"_id": "507f191e810c19729de860ea", "date": "2024-03-16", "debit": 40, "balance": 60, "tns_type": "DR", "party_name": "Globex"},
				{"ti": 1042, "date": "2024-03-17", "credit": 5, "balance": 65, "type": "CR"}
			],
			"oldRecords": [
				{"id": "old1", "date": "2023-12-01", "debit": 10, "balance": -10, "type": "DR", "is_old_record": true}
			]
		}`))
	}))
	defer server.Close()

	client := remote.NewLedgerClient(server.URL, discardLogger())
	payload, err := client.FindLedgerByParty(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, payload.LedgerEntries, 3)
	require.Len(t, payload.OldRecords, 1)

	assert.Equal(t, "e1", payload.LedgerEntries[0].EntryID)
	assert.Equal(t, domain.EntryTypeCredit, payload.LedgerEntries[0].Type)
	assert.Equal(t, "Acme", payload.LedgerEntries[0].PartyName)
	assert.True(t, payload.LedgerEntries[0].Credit.Equal(payload.LedgerEntries[0].Balance))

	assert.Equal(t, "507f191e810c19729de860ea", payload.LedgerEntries[1].EntryID)
	assert.Equal(t, domain.EntryTypeDebit, payload.LedgerEntries[1].Type)
	assert.Equal(t, "Globex", payload.LedgerEntries[1].PartyName)

	// The bare sequence token becomes the identity when id and _id are absent.
	assert.Equal(t, "1042", payload.LedgerEntries[2].EntryID)

	assert.True(t, payload.OldRecords[0].IsOldRecord)
	assert.Equal(t, "p1", payload.OldRecords[0].PartyID)
}

func TestLedgerClient_FindLedgerByParty_EmptyPartitions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ledgerEntries": [], "oldRecords": []}`))
	}))
	defer server.Close()

	client := remote.NewLedgerClient(server.URL, discardLogger())
	payload, err := client.FindLedgerByParty(context.Background(), "p1")

	require.NoError(t, err)
	assert.Empty(t, payload.LedgerEntries)
	assert.Empty(t, payload.OldRecords)
}

func TestLedgerClient_SaveEntry_ReturnsAuthoritativeIdentity(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/parties/p1/entries", r.URL.Path)
		_, _ = w.Write([]byte(`{"success": true, "data": {"id": "server-id", "date": "2024-03-15", "credit": 100, "balance": 100, "type": "CR"}}`))
	}))
	defer server.Close()

	client := remote.NewLedgerClient(server.URL, discardLogger())
	saved, err := client.SaveEntry(context.Background(), domain.TransactionEntry{
		EntryID: "temp-uuid",
		PartyID: "p1",
		Date:    "2024-03-15",
	})

	require.NoError(t, err)
	assert.Equal(t, "server-id", saved.EntryID)
	assert.Equal(t, "p1", saved.PartyID)
}
