package services_test

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/mock"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// --- Mock JournalRepository ---

type MockJournalRepository struct {
	mock.Mock
}

var _ portsrepo.JournalRepositoryWithTx = (*MockJournalRepository)(nil)

func (m *MockJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	args := m.Called(ctx, entry, lines)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *MockJournalRepository) UpdateJournalEntryStatus(ctx context.Context, entryID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	args := m.Called(ctx, entryID, status, updatedBy, updatedAt)
	return args.Error(0)
}

func (m *MockJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.JournalEntry), args.Error(1)
}

func (m *MockJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	args := m.Called(ctx, entryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.JournalLine), args.Error(1)
}

func (m *MockJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.JournalEntry), next, args.Error(2)
}

func (m *MockJournalRepository) Begin(ctx context.Context) (pgx.Tx, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(pgx.Tx), args.Error(1)
}

func (m *MockJournalRepository) Commit(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

func (m *MockJournalRepository) Rollback(ctx context.Context, tx pgx.Tx) error {
	args := m.Called(ctx, tx)
	return args.Error(0)
}

// --- Mock ExchangeRateRepository ---

type MockExchangeRateRepository struct {
	mock.Mock
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*MockExchangeRateRepository)(nil)

func (m *MockExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, fromCurrencyID, toCurrencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

func (m *MockExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error {
	args := m.Called(ctx, rateID, updatedBy)
	return args.Error(0)
}

// --- Mock OpeningBalanceRepository ---

type MockOpeningBalanceRepository struct {
	mock.Mock
}

var _ portsrepo.OpeningBalanceRepositoryFacade = (*MockOpeningBalanceRepository)(nil)

func (m *MockOpeningBalanceRepository) FindOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, openingBalanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceRepository) ExistsForAccountAndYear(ctx context.Context, accountID, financialYearID string) (bool, error) {
	args := m.Called(ctx, accountID, financialYearID)
	return args.Bool(0), args.Error(1)
}

func (m *MockOpeningBalanceRepository) ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error) {
	args := m.Called(ctx, financialYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceRepository) SaveOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	args := m.Called(ctx, ob)
	return args.Error(0)
}

func (m *MockOpeningBalanceRepository) UpdateOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	args := m.Called(ctx, ob)
	return args.Error(0)
}

func (m *MockOpeningBalanceRepository) DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error {
	args := m.Called(ctx, openingBalanceID)
	return args.Error(0)
}

// --- Mock DepositRepository ---

type MockDepositRepository struct {
	mock.Mock
}

var _ portsrepo.DepositRepositoryFacade = (*MockDepositRepository)(nil)

func (m *MockDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.CustomerDeposit, error) {
	args := m.Called(ctx, depositID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CustomerDeposit), args.Error(1)
}

func (m *MockDepositRepository) ListDeposits(ctx context.Context, limit int, nextToken *string) ([]domain.CustomerDeposit, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	var next *string
	if args.Get(1) != nil {
		token := args.Get(1).(string)
		next = &token
	}
	return args.Get(0).([]domain.CustomerDeposit), next, args.Error(2)
}

func (m *MockDepositRepository) SaveDeposit(ctx context.Context, deposit domain.CustomerDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

func (m *MockDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.CustomerDeposit) error {
	args := m.Called(ctx, deposit)
	return args.Error(0)
}

// --- Mock AccountService ---

type MockAccountService struct {
	mock.Mock
}

var _ portssvc.AccountSvcFacade = (*MockAccountService)(nil)

func (m *MockAccountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error) {
	args := m.Called(ctx, accountIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]domain.Account), args.Error(1)
}

func (m *MockAccountService) ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error) {
	args := m.Called(ctx, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Account), args.Error(1)
}

func (m *MockAccountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error) {
	args := m.Called(ctx, accountID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Account), args.Error(1)
}

func (m *MockAccountService) DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error {
	args := m.Called(ctx, accountID, updaterUserID)
	return args.Error(0)
}

// --- Mock FinancialYearService ---

type MockFinancialYearService struct {
	mock.Mock
}

var _ portssvc.FinancialYearSvcFacade = (*MockFinancialYearService)(nil)

func (m *MockFinancialYearService) CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest, creatorUserID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) GetFinancialYearByID(ctx context.Context, financialYearID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, financialYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) GetCurrentFinancialYear(ctx context.Context) (*domain.FinancialYear, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) ListFinancialYears(ctx context.Context, activeOnly bool) ([]domain.FinancialYear, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) UpdateFinancialYear(ctx context.Context, financialYearID string, req dto.UpdateFinancialYearRequest, updaterUserID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, financialYearID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) ResolveYear(ctx context.Context, financialYearID string) (*domain.FinancialYear, error) {
	args := m.Called(ctx, financialYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FinancialYear), args.Error(1)
}

func (m *MockFinancialYearService) ValidateDocumentDate(ctx context.Context, date time.Time, financialYearID string) error {
	args := m.Called(ctx, date, financialYearID)
	return args.Error(0)
}

// --- Mock CurrencyService ---

type MockCurrencyService struct {
	mock.Mock
}

var _ portssvc.CurrencySvcFacade = (*MockCurrencyService)(nil)

func (m *MockCurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) GetDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	args := m.Called(ctx, activeOnly)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

func (m *MockCurrencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateService ---

type MockExchangeRateService struct {
	mock.Mock
}

var _ portssvc.ExchangeRateSvcFacade = (*MockExchangeRateService)(nil)

func (m *MockExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, rateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, updaterUserID string) error {
	args := m.Called(ctx, rateID, updaterUserID)
	return args.Error(0)
}

func (m *MockExchangeRateService) ResolveToDefault(ctx context.Context, selectedCurrencyID string) (rules.RateResolution, error) {
	args := m.Called(ctx, selectedCurrencyID)
	return args.Get(0).(rules.RateResolution), args.Error(1)
}

// --- Mock OpeningBalanceService ---

type MockOpeningBalanceService struct {
	mock.Mock
}

var _ portssvc.OpeningBalanceSvcFacade = (*MockOpeningBalanceService)(nil)

func (m *MockOpeningBalanceService) CreateOpeningBalance(ctx context.Context, req dto.CreateOpeningBalanceRequest, creatorUserID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceService) GetOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, openingBalanceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceService) ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error) {
	args := m.Called(ctx, financialYearID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceService) UpdateOpeningBalance(ctx context.Context, openingBalanceID string, req dto.UpdateOpeningBalanceRequest, updaterUserID string) (*domain.OpeningBalance, error) {
	args := m.Called(ctx, openingBalanceID, req, updaterUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OpeningBalance), args.Error(1)
}

func (m *MockOpeningBalanceService) DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error {
	args := m.Called(ctx, openingBalanceID)
	return args.Error(0)
}

func (m *MockOpeningBalanceService) CheckDuplicate(ctx context.Context, accountID, financialYearID string) (bool, error) {
	args := m.Called(ctx, accountID, financialYearID)
	return args.Bool(0), args.Error(1)
}
