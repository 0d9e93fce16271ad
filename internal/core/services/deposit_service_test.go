package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/core/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

type DepositServiceTestSuite struct {
	suite.Suite
	mockDepositRepo *MockDepositRepository
	mockAccountSvc  *MockAccountService
	mockRateSvc     *MockExchangeRateService
	mockFYSvc       *MockFinancialYearService
	service         portssvc.DepositSvcFacade
	account         domain.Account
	year            domain.FinancialYear
	userID          string
}

func (suite *DepositServiceTestSuite) SetupTest() {
	suite.mockDepositRepo = new(MockDepositRepository)
	suite.mockAccountSvc = new(MockAccountService)
	suite.mockRateSvc = new(MockExchangeRateService)
	suite.mockFYSvc = new(MockFinancialYearService)
	suite.service = services.NewDepositService(suite.mockDepositRepo, suite.mockAccountSvc, suite.mockRateSvc, suite.mockFYSvc)

	suite.userID = uuid.NewString()
	suite.account = domain.Account{AccountID: uuid.NewString(), Name: "Customer Deposits", AccountType: domain.Liability, IsActive: true}
	suite.year = domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		Name:            "FY2026",
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsCurrent:       true,
		IsActive:        true,
	}
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_DerivesEquivalent() {
	rateID := uuid.NewString()
	currencyID := uuid.NewString()
	req := dto.CreateDepositRequest{
		CustomerID:     uuid.NewString(),
		AccountID:      suite.account.AccountID,
		CurrencyID:     currencyID,
		OriginalAmount: decimal.NewFromInt(200),
		DepositDate:    time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC),
	}

	suite.mockAccountSvc.On("GetAccountByID", mock.Anything, req.AccountID).Return(&suite.account, nil)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)
	suite.mockFYSvc.On("ValidateDocumentDate", mock.Anything, req.DepositDate, suite.year.FinancialYearID).Return(nil)
	suite.mockRateSvc.On("ResolveToDefault", mock.Anything, currencyID).
		Return(rules.RateResolution{Rate: decimal.NewFromInt(2500), RateID: rateID}, nil)
	suite.mockDepositRepo.On("SaveDeposit", mock.Anything, mock.Anything).Return(nil)

	deposit, err := suite.service.CreateDeposit(context.Background(), req, suite.userID)

	suite.Require().NoError(err)
	suite.True(deposit.EquivalentAmount.Equal(decimal.NewFromInt(500000)))
	suite.Equal(rateID, deposit.ExchangeRateID)
	suite.Equal(suite.year.FinancialYearID, deposit.FinancialYearID)
}

func (suite *DepositServiceTestSuite) TestCreateDeposit_NonPositiveAmount() {
	req := dto.CreateDepositRequest{
		CustomerID:     uuid.NewString(),
		AccountID:      suite.account.AccountID,
		OriginalAmount: decimal.Zero,
		DepositDate:    time.Now(),
	}

	_, err := suite.service.CreateDeposit(context.Background(), req, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *DepositServiceTestSuite) existingDeposit() *domain.CustomerDeposit {
	return &domain.CustomerDeposit{
		DepositID:        uuid.NewString(),
		ExchangeRateID:   uuid.NewString(),
		ExchangeRate:     decimal.NewFromInt(2500),
		OriginalAmount:   decimal.NewFromInt(200),
		EquivalentAmount: decimal.NewFromInt(500000),
		Status:           domain.Posted,
	}
}

func (suite *DepositServiceTestSuite) TestRecalculateAmounts_EditRate() {
	deposit := suite.existingDeposit()
	newRate := decimal.NewFromInt(3000)

	suite.mockDepositRepo.On("FindDepositByID", mock.Anything, deposit.DepositID).Return(deposit, nil)
	suite.mockDepositRepo.On("UpdateDeposit", mock.Anything, mock.Anything).Return(nil)

	updated, err := suite.service.RecalculateAmounts(context.Background(), deposit.DepositID, dto.UpdateDepositAmountsRequest{
		ExchangeRate: &newRate,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.EquivalentAmount.Equal(decimal.NewFromInt(600000)))
	suite.Empty(updated.ExchangeRateID, "manual rate detaches stored rate reference")
}

func (suite *DepositServiceTestSuite) TestRecalculateAmounts_EditOriginal() {
	deposit := suite.existingDeposit()
	newOriginal := decimal.NewFromInt(100)

	suite.mockDepositRepo.On("FindDepositByID", mock.Anything, deposit.DepositID).Return(deposit, nil)
	suite.mockDepositRepo.On("UpdateDeposit", mock.Anything, mock.Anything).Return(nil)

	updated, err := suite.service.RecalculateAmounts(context.Background(), deposit.DepositID, dto.UpdateDepositAmountsRequest{
		OriginalAmount: &newOriginal,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.EquivalentAmount.Equal(decimal.NewFromInt(250000)))
}

func (suite *DepositServiceTestSuite) TestRecalculateAmounts_EditEquivalent() {
	deposit := suite.existingDeposit()
	newEquivalent := decimal.NewFromInt(750000)

	suite.mockDepositRepo.On("FindDepositByID", mock.Anything, deposit.DepositID).Return(deposit, nil)
	suite.mockDepositRepo.On("UpdateDeposit", mock.Anything, mock.Anything).Return(nil)

	updated, err := suite.service.RecalculateAmounts(context.Background(), deposit.DepositID, dto.UpdateDepositAmountsRequest{
		EquivalentAmount: &newEquivalent,
	}, suite.userID)

	suite.Require().NoError(err)
	suite.True(updated.OriginalAmount.Equal(decimal.NewFromInt(300)))
	suite.True(updated.ExchangeRate.Equal(decimal.NewFromInt(2500)), "rate is held when equivalent is edited")
}

func (suite *DepositServiceTestSuite) TestRecalculateAmounts_RequiresExactlyOneField() {
	rate := decimal.NewFromInt(2)
	amount := decimal.NewFromInt(10)

	_, err := suite.service.RecalculateAmounts(context.Background(), uuid.NewString(), dto.UpdateDepositAmountsRequest{
		ExchangeRate:   &rate,
		OriginalAmount: &amount,
	}, suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.RecalculateAmounts(context.Background(), uuid.NewString(), dto.UpdateDepositAmountsRequest{}, suite.userID)
	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
}

func TestDepositServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DepositServiceTestSuite))
}
