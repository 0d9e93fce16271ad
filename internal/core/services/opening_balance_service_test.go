package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

type OpeningBalanceServiceTestSuite struct {
	suite.Suite
	mockOBRepo     *MockOpeningBalanceRepository
	mockAccountSvc *MockAccountService
	mockFYSvc      *MockFinancialYearService
	service        portssvc.OpeningBalanceSvcFacade
	account        domain.Account
	year           domain.FinancialYear
	userID         string
}

func (suite *OpeningBalanceServiceTestSuite) SetupTest() {
	suite.mockOBRepo = new(MockOpeningBalanceRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockFYSvc = new(MockFinancialYearService)
	suite.service = services.NewOpeningBalanceService(suite.mockOBRepo, suite.mockAccountSvc, suite.mockFYSvc)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{
		AccountID:   uuid.NewString(),
		Code:        "1000",
		Name:        "Cash",
		AccountType: domain.Asset,
		IsActive:    true,
	}
	suite.year = domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		Name:            "FY2026",
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsCurrent:       true,
		IsActive:        true,
	}
}

func (suite *OpeningBalanceServiceTestSuite) createRequest() dto.CreateOpeningBalanceRequest {
	return dto.CreateOpeningBalanceRequest{
		AccountID:       suite.account.AccountID,
		FinancialYearID: suite.year.FinancialYearID,
		BalanceDate:     time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LineType:        domain.Debit,
		Amount:          decimal.NewFromInt(5000),
	}
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_Success() {
	req := suite.createRequest()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, req.AccountID).Return(&suite.account, nil)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, req.FinancialYearID).Return(&suite.year, nil)
	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.BalanceDate, suite.year.FinancialYearID).Return(nil)
	suite.mockOBRepo.On("ExistsForAccountAndYear", mock.Anything, req.AccountID, suite.year.FinancialYearID).Return(false, nil)
	suite.mockOBRepo.On("SaveOpeningBalance", mock.Anything, mock.Anything).Return(nil)

	ob, err := suite.service.CreateOpeningBalance(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(req.AccountID, ob.AccountID)
	suite.Equal(suite.year.FinancialYearID, ob.FinancialYearID)
	suite.mockOBRepo.AssertExpectations(suite.T())
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_DuplicateBlocked() {
	req := suite.createRequest()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, req.AccountID).Return(&suite.account, nil)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, req.FinancialYearID).Return(&suite.year, nil)
	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.BalanceDate, suite.year.FinancialYearID).Return(nil)
	suite.mockOBRepo.On("ExistsForAccountAndYear", mock.Anything, req.AccountID, suite.year.FinancialYearID).Return(true, nil)

	_, err := suite.service.CreateOpeningBalance(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Contains(err.Error(), suite.account.Name)
	suite.Contains(err.Error(), suite.year.Name)
	suite.mockOBRepo.AssertNotCalled(suite.T(), "SaveOpeningBalance", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_GateFailsClosed() {
	req := suite.createRequest()

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, req.AccountID).Return(&suite.account, nil)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, req.FinancialYearID).Return(&suite.year, nil)
	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.BalanceDate, suite.year.FinancialYearID).Return(nil)
	suite.mockOBRepo.On("ExistsForAccountAndYear", mock.Anything, req.AccountID, suite.year.FinancialYearID).
		Return(false, errors.New("connection reset"))

	_, err := suite.service.CreateOpeningBalance(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.mockOBRepo.AssertNotCalled(suite.T(), "SaveOpeningBalance", mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestCheckDuplicate_FailsOpen() {
	suite.mockOBRepo.On("ExistsForAccountAndYear", mock.Anything, suite.account.AccountID, suite.year.FinancialYearID).
		Return(false, errors.New("connection reset"))

	exists, err := suite.service.CheckDuplicate(context.Background(), suite.account.AccountID, suite.year.FinancialYearID)

	suite.NoError(err)
	suite.False(exists)
}

func (suite *OpeningBalanceServiceTestSuite) TestCheckDuplicate_EmptyInputsSkipLookup() {
	exists, err := suite.service.CheckDuplicate(context.Background(), "", suite.year.FinancialYearID)

	suite.NoError(err)
	suite.False(exists)
	suite.mockOBRepo.AssertNotCalled(suite.T(), "ExistsForAccountAndYear", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *OpeningBalanceServiceTestSuite) TestCreateOpeningBalance_NonPositiveAmount() {
	req := suite.createRequest()
	req.Amount = decimal.Zero

	_, err := suite.service.CreateOpeningBalance(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *OpeningBalanceServiceTestSuite) TestUpdateOpeningBalance_SkipsDuplicateGuard() {
	obID := uuid.NewString()
	existing := domain.OpeningBalance{
		OpeningBalanceID: obID,
		AccountID:        suite.account.AccountID,
		FinancialYearID:  suite.year.FinancialYearID,
		BalanceDate:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		LineType:         domain.Debit,
		Amount:           decimal.NewFromInt(5000),
	}
	newAmount := decimal.NewFromInt(7500)

	suite.mockOBRepo.On("FindOpeningBalanceByID", mock.Anything, obID).Return(&existing, nil)
	suite.mockOBRepo.On("UpdateOpeningBalance", mock.Anything, mock.Anything).Return(nil)

	updated, err := suite.service.UpdateOpeningBalance(context.Background(), obID, dto.UpdateOpeningBalanceRequest{
		Amount: &newAmount,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.Amount.Equal(newAmount))
	suite.mockOBRepo.AssertNotCalled(suite.T(), "ExistsForAccountAndYear", mock.Anything, mock.Anything, mock.Anything)
}

func TestOpeningBalanceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(OpeningBalanceServiceTestSuite))
}
