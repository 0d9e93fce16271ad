package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/core/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

type ValidationServiceTestSuite struct {
	suite.Suite
	mockFYSvc   *MockFinancialYearService
	mockRateSvc *MockExchangeRateService
	mockOBSvc   *MockOpeningBalanceService
	service     portssvc.ValidationSvcFacade
	year        domain.FinancialYear
}

func (suite *ValidationServiceTestSuite) SetupTest() {
	suite.mockFYSvc = new(MockFinancialYearService)
	suite.mockRateSvc = new(MockExchangeRateService)
	suite.mockOBSvc = new(MockOpeningBalanceService)
	suite.service = services.NewValidationService(suite.mockFYSvc, suite.mockRateSvc, suite.mockOBSvc)

	suite.year = domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		Name:            "FY2026",
		StartDate:       time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:         time.Date(2026, 12, 31, 0, 0, 0, 0, time.UTC),
		IsCurrent:       true,
		IsActive:        true,
	}
}

func (suite *ValidationServiceTestSuite) identityRate() {
	suite.mockRateSvc.On("ResolveToDefault", mock.Anything, mock.Anything).
		Return(rules.RateResolution{Rate: decimal.NewFromInt(1)}, nil)
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_CleanFormCanSubmit() {
	entryDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)
	suite.identityRate()

	result, err := suite.service.ValidateJournalEntry(context.Background(), dto.ValidateJournalEntryRequest{
		EntryDate:   &entryDate,
		Description: "Monthly rent",
		Lines: []dto.JournalLineInput{
			{AccountID: "acc-1", LineType: domain.Debit, Amount: decimal.NewFromInt(100)},
			{AccountID: "acc-2", LineType: domain.Credit, Amount: decimal.NewFromInt(100)},
		},
	})

	suite.Require().NoError(err)
	suite.True(result.CanSubmit)
	suite.Empty(result.FieldErrors)
	suite.Empty(result.DocumentErrors)
	suite.False(result.DateClamped)
	suite.Require().NotNil(result.Reconciliation)
	suite.True(result.Reconciliation.IsBalanced)
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_MissingFieldsReported() {
	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)
	suite.identityRate()

	result, err := suite.service.ValidateJournalEntry(context.Background(), dto.ValidateJournalEntryRequest{})

	suite.Require().NoError(err)
	suite.False(result.CanSubmit)
	suite.Contains(result.FieldErrors, "description")
	suite.Contains(result.FieldErrors, "entryDate")
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_DateClampedToWindowStart() {
	outside := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, suite.year.FinancialYearID).Return(&suite.year, nil)
	suite.identityRate()

	result, err := suite.service.ValidateJournalEntry(context.Background(), dto.ValidateJournalEntryRequest{
		EntryDate:       &outside,
		FinancialYearID: suite.year.FinancialYearID,
		Description:     "Late entry",
		Lines: []dto.JournalLineInput{
			{AccountID: "acc-1", LineType: domain.Debit, Amount: decimal.NewFromInt(10)},
			{AccountID: "acc-2", LineType: domain.Credit, Amount: decimal.NewFromInt(10)},
		},
	})

	suite.Require().NoError(err)
	suite.True(result.DateClamped)
	suite.Require().NotNil(result.NormalizedDate)
	suite.True(result.NormalizedDate.Equal(suite.year.StartDate))
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_ClosedYearBlocks() {
	closed := suite.year
	closed.IsClosed = true
	entryDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, closed.FinancialYearID).Return(&closed, nil)
	suite.identityRate()

	result, err := suite.service.ValidateJournalEntry(context.Background(), dto.ValidateJournalEntryRequest{
		EntryDate:       &entryDate,
		FinancialYearID: closed.FinancialYearID,
		Description:     "Entry into closed year",
		Lines: []dto.JournalLineInput{
			{AccountID: "acc-1", LineType: domain.Debit, Amount: decimal.NewFromInt(10)},
			{AccountID: "acc-2", LineType: domain.Credit, Amount: decimal.NewFromInt(10)},
		},
	})

	suite.Require().NoError(err)
	suite.False(result.CanSubmit)
	suite.NotEmpty(result.DocumentErrors)
}

func (suite *ValidationServiceTestSuite) TestValidateJournalEntry_UnbalancedReported() {
	entryDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)
	suite.identityRate()

	result, err := suite.service.ValidateJournalEntry(context.Background(), dto.ValidateJournalEntryRequest{
		EntryDate:   &entryDate,
		Description: "Off by a cent",
		Lines: []dto.JournalLineInput{
			{AccountID: "acc-1", LineType: domain.Debit, Amount: decimal.RequireFromString("100.00")},
			{AccountID: "acc-2", LineType: domain.Credit, Amount: decimal.RequireFromString("99.98")},
		},
	})

	suite.Require().NoError(err)
	suite.False(result.CanSubmit)
	suite.Require().NotNil(result.Reconciliation)
	suite.False(result.Reconciliation.IsBalanced)
	suite.True(result.Reconciliation.Difference.Equal(decimal.RequireFromString("0.02")))
}

func (suite *ValidationServiceTestSuite) TestValidateDeposit_ComputesEquivalent() {
	depositDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(200)
	currencyID := uuid.NewString()

	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)
	suite.mockRateSvc.On("ResolveToDefault", mock.Anything, currencyID).
		Return(rules.RateResolution{Rate: decimal.NewFromInt(2500), RateID: "rate-1"}, nil)

	result, err := suite.service.ValidateDeposit(context.Background(), dto.ValidateDepositRequest{
		CustomerID:     "cust-1",
		AccountID:      "acc-1",
		CurrencyID:     currencyID,
		OriginalAmount: &amount,
		DepositDate:    &depositDate,
	})

	suite.Require().NoError(err)
	suite.True(result.CanSubmit)
	suite.Require().NotNil(result.EquivalentAmount)
	suite.True(result.EquivalentAmount.Equal(decimal.NewFromInt(500000)))
	suite.Require().NotNil(result.RateResolution)
	suite.Equal("rate-1", result.RateResolution.RateID)
}

func (suite *ValidationServiceTestSuite) TestValidateOpeningBalance_DuplicateReported() {
	balanceDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(5000)

	suite.mockFYSvc.On("ResolveYear", mock.Anything, suite.year.FinancialYearID).Return(&suite.year, nil)
	suite.mockOBSvc.On("CheckDuplicate", mock.Anything, "acc-1", suite.year.FinancialYearID).Return(true, nil)

	result, err := suite.service.ValidateOpeningBalance(context.Background(), dto.ValidateOpeningBalanceRequest{
		AccountID:       "acc-1",
		FinancialYearID: suite.year.FinancialYearID,
		BalanceDate:     &balanceDate,
		LineType:        domain.Debit,
		Amount:          &amount,
	}, false)

	suite.Require().NoError(err)
	suite.False(result.CanSubmit)
	suite.True(result.DuplicateExists)
}

func (suite *ValidationServiceTestSuite) TestValidateOpeningBalance_EditSkipsDuplicateGuard() {
	balanceDate := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	amount := decimal.NewFromInt(5000)

	suite.mockFYSvc.On("ResolveYear", mock.Anything, suite.year.FinancialYearID).Return(&suite.year, nil)

	result, err := suite.service.ValidateOpeningBalance(context.Background(), dto.ValidateOpeningBalanceRequest{
		AccountID:       "acc-1",
		FinancialYearID: suite.year.FinancialYearID,
		BalanceDate:     &balanceDate,
		LineType:        domain.Debit,
		Amount:          &amount,
	}, true)

	suite.Require().NoError(err)
	suite.True(result.CanSubmit)
	suite.False(result.DuplicateExists)
	suite.mockOBSvc.AssertNotCalled(suite.T(), "CheckDuplicate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ValidationServiceTestSuite) TestValidateStoreRequest_SameStoresRejected() {
	requestDate := time.Date(2026, 5, 10, 0, 0, 0, 0, time.UTC)
	suite.mockFYSvc.On("ResolveYear", mock.Anything, "").Return(&suite.year, nil)

	result, err := suite.service.ValidateStoreRequest(context.Background(), dto.ValidateStoreRequestRequest{
		FromStoreID: "store-1",
		ToStoreID:   "store-1",
		RequestDate: &requestDate,
	})

	suite.Require().NoError(err)
	suite.False(result.CanSubmit)
	suite.Contains(result.FieldErrors, "toStoreID")
}

func TestValidationServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ValidationServiceTestSuite))
}
