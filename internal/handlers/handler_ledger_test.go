package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	"github.com/hisabline/party_ledger_app/internal/core/ledgerview"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/hisabline/party_ledger_app/internal/handlers"
	"github.com/hisabline/party_ledger_app/internal/middleware"
)

// --- Mock LedgerViewService ---
type MockLedgerViewService struct {
	mock.Mock
}

func (m *MockLedgerViewService) GetLedgerView(ctx context.Context, userID, partyID string, showOldRecords bool) ([]ledgerview.EntryRow, string, error) {
	args := m.Called(ctx, userID, partyID, showOldRecords)
	var rows []ledgerview.EntryRow
	if args.Get(0) != nil {
		rows = args.Get(0).([]ledgerview.EntryRow)
	}
	return rows, args.String(1), args.Error(2)
}

func (m *MockLedgerViewService) AddTransaction(ctx context.Context, userID, partyID string, req dto.CreateEntryRequest) (*domain.TransactionEntry, error) {
	args := m.Called(ctx, userID, partyID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionEntry), args.Error(1)
}

func (m *MockLedgerViewService) Select(ctx context.Context, userID, partyID string, entryID string, checked bool) error {
	args := m.Called(ctx, userID, partyID, entryID, checked)
	return args.Error(0)
}

func (m *MockLedgerViewService) SelectAll(ctx context.Context, userID, partyID string, entryIDs []string, checked bool) error {
	args := m.Called(ctx, userID, partyID, entryIDs, checked)
	return args.Error(0)
}

func (m *MockLedgerViewService) ClearSelection(ctx context.Context, userID, partyID string) error {
	args := m.Called(ctx, userID, partyID)
	return args.Error(0)
}

func (m *MockLedgerViewService) DeleteSelected(ctx context.Context, userID, partyID string) (int, error) {
	args := m.Called(ctx, userID, partyID)
	return args.Int(0), args.Error(1)
}

func (m *MockLedgerViewService) SettleMondayFinal(ctx context.Context, userID, partyID string) error {
	args := m.Called(ctx, userID, partyID)
	return args.Error(0)
}

var _ portssvc.LedgerViewSvcFacade = (*MockLedgerViewService)(nil)

// --- Test Suite ---
type LedgerHandlerTestSuite struct {
	suite.Suite
	router          *gin.Engine
	mockLedgerView  *MockLedgerViewService
	jwtSecret       string
	requestedUserID string
}

func (suite *LedgerHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "pla-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tsignedString, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return tsignedString
}

func (suite *LedgerHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"
	suite.requestedUserID = uuid.NewString()

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockLedgerView = new(MockLedgerViewService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterLedgerRoutes(v1, suite.mockLedgerView)
}

func (suite *LedgerHandlerTestSuite) doRequest(method, url string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		suite.Require().NoError(err)
		reqBody = bytes.NewReader(encoded)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req, _ := http.NewRequest(method, url, reqBody)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(suite.requestedUserID))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerView_Success() {
	partyID := uuid.NewString()
	rows := []ledgerview.EntryRow{
		{Identity: "e1", RenderKey: "e1_0", Date: "15/03/2024", Selected: true},
		{Identity: "e2", RenderKey: "e2_1", Date: "16/03/2024"},
	}

	suite.mockLedgerView.On("GetLedgerView",
		mock.Anything, suite.requestedUserID, partyID, false,
	).Return(rows, "", nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/ledger", partyID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(partyID, resp.PartyID)
	suite.False(resp.ShowOldRecords)
	suite.Len(resp.Rows, 2)
	suite.Equal(1, resp.SelectedCount)
	suite.Empty(resp.EmptyMessage)
	suite.mockLedgerView.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerView_OldRecordsToggle() {
	partyID := uuid.NewString()

	suite.mockLedgerView.On("GetLedgerView",
		mock.Anything, suite.requestedUserID, partyID, true,
	).Return([]ledgerview.EntryRow{}, ledgerview.MsgNoOldRecords, nil).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/ledger?showOldRecords=true", partyID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp dto.LedgerViewResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.ShowOldRecords)
	suite.Empty(resp.Rows)
	suite.Equal(ledgerview.MsgNoOldRecords, resp.EmptyMessage)
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerView_UpstreamUnavailable() {
	partyID := uuid.NewString()

	suite.mockLedgerView.On("GetLedgerView",
		mock.Anything, suite.requestedUserID, partyID, false,
	).Return(nil, "", fmt.Errorf("fetch: %w", apperrors.ErrUpstream)).Once()

	w := suite.doRequest(http.MethodGet, fmt.Sprintf("/api/v1/parties/%s/ledger", partyID), nil)

	suite.Equal(http.StatusBadGateway, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestGetLedgerView_Unauthenticated() {
	req, _ := http.NewRequest(http.MethodGet, "/api/v1/parties/p1/ledger", nil)
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAddTransaction_RestrictedParty() {
	partyID := uuid.NewString()
	body := gin.H{"date": "2024-03-15", "amount": "100", "type": "CR"}

	suite.mockLedgerView.On("AddTransaction",
		mock.Anything, suite.requestedUserID, partyID, mock.AnythingOfType("dto.CreateEntryRequest"),
	).Return(nil, fmt.Errorf("restricted: %w", apperrors.ErrForbidden)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/entries", partyID), body)

	suite.Equal(http.StatusForbidden, w.Code)
}

func (suite *LedgerHandlerTestSuite) TestAddTransaction_InvalidType() {
	partyID := uuid.NewString()
	// "XX" fails the crdr binding tag before the service is consulted.
	body := gin.H{"date": "2024-03-15", "amount": "100", "type": "XX"}

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/entries", partyID), body)

	suite.Equal(http.StatusBadRequest, w.Code)
	suite.mockLedgerView.AssertNotCalled(suite.T(), "AddTransaction", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *LedgerHandlerTestSuite) TestSelectEntry_Success() {
	partyID := uuid.NewString()
	body := dto.SelectEntryRequest{EntryID: "e1", Checked: true}

	suite.mockLedgerView.On("Select",
		mock.Anything, suite.requestedUserID, partyID, "e1", true,
	).Return(nil).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/entries/select", partyID), body)

	suite.Equal(http.StatusNoContent, w.Code)
	suite.mockLedgerView.AssertExpectations(suite.T())
}

func (suite *LedgerHandlerTestSuite) TestDeleteSelected_Success() {
	partyID := uuid.NewString()

	suite.mockLedgerView.On("DeleteSelected",
		mock.Anything, suite.requestedUserID, partyID,
	).Return(3, nil).Once()

	w := suite.doRequest(http.MethodDelete, fmt.Sprintf("/api/v1/parties/%s/entries", partyID), nil)

	suite.Equal(http.StatusOK, w.Code)

	var resp map[string]int
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(3, resp["deleted"])
}

func (suite *LedgerHandlerTestSuite) TestSettleMondayFinal_Restricted() {
	partyID := uuid.NewString()

	suite.mockLedgerView.On("SettleMondayFinal",
		mock.Anything, suite.requestedUserID, partyID,
	).Return(fmt.Errorf("excluded: %w", apperrors.ErrForbidden)).Once()

	w := suite.doRequest(http.MethodPost, fmt.Sprintf("/api/v1/parties/%s/monday-final", partyID), nil)

	suite.Equal(http.StatusForbidden, w.Code)
}

func TestLedgerHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(LedgerHandlerTestSuite))
}
