package services_test

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/hisabline/party_ledger_app/internal/apperrors"
	"github.com/hisabline/party_ledger_app/internal/core/domain"
	portssvc "github.com/hisabline/party_ledger_app/internal/core/ports/services"
	"github.com/hisabline/party_ledger_app/internal/core/services"
	"github.com/hisabline/party_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock PartyDirectory ---

type MockPartyDirectory struct {
	mock.Mock
	FindAllPartiesFn func(ctx context.Context) ([]domain.Party, error)
}

func (m *MockPartyDirectory) FindAllParties(ctx context.Context) ([]domain.Party, error) {
	if m.FindAllPartiesFn != nil {
		return m.FindAllPartiesFn(ctx)
	}
	args := m.Called(ctx)
	var parties []domain.Party
	if args.Get(0) != nil {
		parties = args.Get(0).([]domain.Party)
	}
	return parties, args.Error(1)
}

func (m *MockPartyDirectory) FindPartyByID(ctx context.Context, partyID string) (*domain.Party, error) {
	args := m.Called(ctx, partyID)
	var party *domain.Party
	if args.Get(0) != nil {
		party = args.Get(0).(*domain.Party)
	}
	return party, args.Error(1)
}

func (m *MockPartyDirectory) SaveParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyDirectory) UpdateParty(ctx context.Context, party domain.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyDirectory) DeleteParty(ctx context.Context, partyID string) error {
	args := m.Called(ctx, partyID)
	return args.Error(0)
}

// --- Test Suite ---

type PartyCatalogServiceTestSuite struct {
	suite.Suite
	mockDirectory *MockPartyDirectory
	service       portssvc.PartyCatalogSvcFacade
}

func (suite *PartyCatalogServiceTestSuite) SetupTest() {
	suite.mockDirectory = new(MockPartyDirectory)
	suite.service = services.NewPartyCatalogService(suite.mockDirectory, "My Firm")
}

func (suite *PartyCatalogServiceTestSuite) TestLoadAll_NormalizesAndIndexes() {
	ctx := context.Background()
	records := []domain.Party{
		{PartyID: "p1", Name: "  Acme  ", CompanyName: ""},
		{PartyID: "p2", Name: "Globex", CompanyName: "Globex Holdings"},
	}
	suite.mockDirectory.On("FindAllParties", ctx).Return(records, nil).Once()

	err := suite.service.LoadAll(ctx)

	suite.Require().NoError(err)
	parties := suite.service.Parties()
	suite.Require().Len(parties, 2)
	suite.Equal("Acme", parties[0].Name)
	// A missing company name defaults to the party name.
	suite.Equal("Acme", parties[0].CompanyName)
	suite.Equal("Acme", parties[0].DisplayName())
	suite.Equal("Globex (Globex Holdings)", parties[1].DisplayName())
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *PartyCatalogServiceTestSuite) TestLoadAll_FailureLeavesPreviousState() {
	ctx := context.Background()
	suite.mockDirectory.On("FindAllParties", ctx).
		Return([]domain.Party{{PartyID: "p1", Name: "Acme"}}, nil).Once()
	suite.Require().NoError(suite.service.LoadAll(ctx))

	suite.mockDirectory.On("FindAllParties", ctx).
		Return(nil, assert.AnError).Once()

	err := suite.service.LoadAll(ctx)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUpstream)
	// The previously loaded catalog is still served.
	suite.Len(suite.service.Parties(), 1)
	_, ok := suite.service.FindByID("p1")
	suite.True(ok)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *PartyCatalogServiceTestSuite) TestLoadAll_ConcurrentLoadSuppressed() {
	ctx := context.Background()
	started := make(chan struct{})
	release := make(chan struct{})

	var calls int
	var callsMu sync.Mutex
	suite.mockDirectory.FindAllPartiesFn = func(ctx context.Context) ([]domain.Party, error) {
		callsMu.Lock()
		calls++
		callsMu.Unlock()
		close(started)
		<-release
		return []domain.Party{{PartyID: "p1", Name: "Acme"}}, nil
	}

	done := make(chan error, 1)
	go func() { done <- suite.service.LoadAll(ctx) }()
	<-started

	// The in-flight load suppresses this one without blocking.
	suite.Require().NoError(suite.service.LoadAll(ctx))

	close(release)
	suite.Require().NoError(<-done)

	callsMu.Lock()
	defer callsMu.Unlock()
	suite.Equal(1, calls)
}

func (suite *PartyCatalogServiceTestSuite) TestFindByDisplayName_RoundTrip() {
	ctx := context.Background()
	records := []domain.Party{
		{PartyID: "p1", Name: "Acme", CompanyName: "Acme Industries"},
	}
	suite.mockDirectory.On("FindAllParties", ctx).Return(records, nil).Once()
	suite.Require().NoError(suite.service.LoadAll(ctx))

	parties := suite.service.Parties()
	suite.Require().Len(parties, 1)

	found, ok := suite.service.FindByDisplayName(parties[0].DisplayName())

	suite.Require().True(ok)
	suite.Equal("p1", found.PartyID)
}

func (suite *PartyCatalogServiceTestSuite) TestFindByDisplayName_Unknown() {
	_, ok := suite.service.FindByDisplayName("Nobody (Nowhere)")
	suite.False(ok)
}

func (suite *PartyCatalogServiceTestSuite) TestCreateParty_SavesAndRefreshes() {
	ctx := context.Background()
	req := dto.CreatePartyRequest{Name: "New Trader"}
	userID := uuid.NewString()

	suite.mockDirectory.On("SaveParty", ctx, mock.MatchedBy(func(p domain.Party) bool {
		return p.Name == "New Trader" && p.CompanyName == "New Trader" && p.PartyID != "" && p.CreatedBy == userID
	})).Return(nil).Once()
	suite.mockDirectory.On("FindAllParties", ctx).
		Return([]domain.Party{{PartyID: "p1", Name: "New Trader"}}, nil).Once()

	created, err := suite.service.CreateParty(ctx, req, userID)

	suite.Require().NoError(err)
	suite.Require().NotNil(created)
	suite.NotEmpty(created.PartyID)
	suite.Len(suite.service.Parties(), 1)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func (suite *PartyCatalogServiceTestSuite) TestUpdateParty_RestrictedRefused() {
	ctx := context.Background()
	company := &domain.Party{PartyID: "pc", Name: "My Firm", CompanyName: "My Firm"}
	suite.mockDirectory.On("FindPartyByID", ctx, "pc").Return(company, nil).Once()

	newName := "Renamed"
	_, err := suite.service.UpdateParty(ctx, "pc", dto.UpdatePartyRequest{Name: &newName}, "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDirectory.AssertNotCalled(suite.T(), "UpdateParty", mock.Anything, mock.Anything)
}

func (suite *PartyCatalogServiceTestSuite) TestUpdateParty_CommissionRefused() {
	ctx := context.Background()
	commission := &domain.Party{PartyID: "pm", Name: "COMMISSION", CompanyName: "COMMISSION"}
	suite.mockDirectory.On("FindPartyByID", ctx, "pm").Return(commission, nil).Once()

	newName := "Renamed"
	_, err := suite.service.UpdateParty(ctx, "pm", dto.UpdatePartyRequest{Name: &newName}, "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
}

func (suite *PartyCatalogServiceTestSuite) TestDeleteParty_RestrictedRefused() {
	ctx := context.Background()
	company := &domain.Party{PartyID: "pc", Name: "My Firm", CompanyName: "My Firm"}
	suite.mockDirectory.On("FindPartyByID", ctx, "pc").Return(company, nil).Once()

	err := suite.service.DeleteParty(ctx, "pc", "u1")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.mockDirectory.AssertNotCalled(suite.T(), "DeleteParty", mock.Anything, mock.Anything)
}

func (suite *PartyCatalogServiceTestSuite) TestDeleteParty_Success() {
	ctx := context.Background()
	trader := &domain.Party{PartyID: "p1", Name: "Trader", CompanyName: "Trader"}
	suite.mockDirectory.On("FindPartyByID", ctx, "p1").Return(trader, nil).Once()
	suite.mockDirectory.On("DeleteParty", ctx, "p1").Return(nil).Once()
	suite.mockDirectory.On("FindAllParties", ctx).Return([]domain.Party{}, nil).Once()

	err := suite.service.DeleteParty(ctx, "p1", "u1")

	suite.Require().NoError(err)
	suite.mockDirectory.AssertExpectations(suite.T())
}

func TestPartyCatalogServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PartyCatalogServiceTestSuite))
}
