package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

type JournalServiceTestSuite struct {
	suite.Suite
	mockJournalRepo *MockJournalRepository
	mockAccountSvc  *MockAccountService
	mockFYSvc       *MockFinancialYearService
	service         portssvc.JournalSvcFacade
	cashAccount     domain.Account
	salesAccount    domain.Account
	userID          string
}

func (suite *JournalServiceTestSuite) SetupTest() {
	suite.mockJournalRepo = new(MockJournalRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockFYSvc = new(MockFinancialYearService)
	suite.service = services.NewJournalService(suite.mockJournalRepo, suite.mockAccountSvc, suite.mockFYSvc)

	suite.userID = uuid.NewString()
	suite.cashAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.salesAccount = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "4000",
		Name:        "Sales",
		AccountType: domain.Income,
		IsActive:    true,
	}
}

func (suite *JournalServiceTestSuite) balancedRequest() dto.CreateJournalEntryRequest {
	return dto.CreateJournalEntryRequest{
		EntryDate:   time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC),
		Description: "Cash sale",
		Lines: []dto.JournalLineRequest{
			{AccountID: suite.cashAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: suite.salesAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	}
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Success() {
	req := suite.balancedRequest()

	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.EntryDate, "").Return(nil)
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}, nil)
	suite.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	entry, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.Posted, entry.Status)
	suite.True(entry.TotalDebit.Equal(decimal.NewFromInt(100)))
	suite.True(entry.TotalCredit.Equal(decimal.NewFromInt(100)))
	suite.Len(entry.Lines, 2)
	suite.mockJournalRepo.AssertExpectations(suite.T())
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_Unbalanced() {
	req := suite.balancedRequest()
	req.Lines[1].Amount = decimal.RequireFromString("99.98")

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnbalanced)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_WithinTolerance() {
	req := suite.balancedRequest()
	req.Lines[1].Amount = decimal.RequireFromString("99.995")

	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.EntryDate, "").Return(nil)
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		suite.cashAccount.AccountID:  suite.cashAccount,
		suite.salesAccount.AccountID: suite.salesAccount,
	}, nil)
	suite.mockJournalRepo.On("SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything).Return(nil)

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.NoError(err)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_SingleLine() {
	req := suite.balancedRequest()
	req.Lines = req.Lines[:1]

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_SameAccountBothSides() {
	req := suite.balancedRequest()
	req.Lines[1].AccountID = suite.cashAccount.AccountID

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_DateOutOfWindow() {
	req := suite.balancedRequest()

	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.EntryDate, "").
		Return(apperrors.ErrDateOutOfWindow)

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDateOutOfWindow)
	suite.mockJournalRepo.AssertNotCalled(suite.T(), "SaveJournalEntry", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *JournalServiceTestSuite) TestCreateJournalEntry_InactiveAccount() {
	req := suite.balancedRequest()
	inactive := suite.salesAccount
	inactive.IsActive = false

	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.EntryDate, "").Return(nil)
	suite.mockAccountSvc.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{
		suite.cashAccount.AccountID: suite.cashAccount,
		inactive.AccountID:          inactive,
	}, nil)

	_, err := suite.service.CreateJournalEntry(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestCancelJournalEntry_AlreadyCancelled() {
	entryID := uuid.NewString()
	suite.mockJournalRepo.On("FindJournalEntryByID", mock.Anything, entryID).Return(&domain.JournalEntry{
		JournalEntryID: entryID,
		Status:         domain.Cancelled,
	}, nil)

	err := suite.service.CancelJournalEntry(context.Background(), entryID, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *JournalServiceTestSuite) TestGetJournalEntryByID_LoadsLines() {
	entryID := uuid.NewString()
	lines := []domain.JournalLine{
		{JournalLineID: uuid.NewString(), JournalEntryID: entryID, AccountID: suite.cashAccount.AccountID, LineType: domain.Debit, Amount: decimal.NewFromInt(50)},
		{JournalLineID: uuid.NewString(), JournalEntryID: entryID, AccountID: suite.salesAccount.AccountID, LineType: domain.Credit, Amount: decimal.NewFromInt(50)},
	}
	suite.mockJournalRepo.On("FindJournalEntryByID", mock.Anything, entryID).Return(&domain.JournalEntry{JournalEntryID: entryID}, nil)
	suite.mockJournalRepo.On("FindLinesByEntryID", mock.Anything, entryID).Return(lines, nil)

	entry, err := suite.service.GetJournalEntryByID(context.Background(), entryID)

	suite.Require().NoError(err)
	suite.Len(entry.Lines, 2)
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func TestCreateJournalEntry_NotFoundAccount(t *testing.T) {
	mockRepo := new(MockJournalRepository)
	mockAccounts := new(MockAccountService)
	mockFY := new(MockFinancialYearService)
	svc := services.NewJournalService(mockRepo, mockAccounts, mockFY)

	req := dto.CreateJournalEntryRequest{
		EntryDate:   time.Now(),
		Description: "orphan line",
		Lines: []dto.JournalLineRequest{
			{AccountID: "missing-a", LineType: domain.Debit, Amount: decimal.NewFromInt(10)},
			{AccountID: "missing-b", LineType: domain.Credit, Amount: decimal.NewFromInt(10)},
		},
	}
	mockFY.On("ValidateDocumentDate", mock.Anything, mock.Anything, "").Return(nil)
	mockAccounts.On("GetAccountsByIDs", mock.Anything, mock.Anything).Return(map[string]domain.Account{}, nil)

	_, err := svc.CreateJournalEntry(context.Background(), req, "user-1")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
