package services

import (
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/platform/cache"
	"github.com/mocustoms/railway-ledger/pkg/config"
)

// NewServiceContainer creates a service container with properly initialized
// dependencies. Reference caches are shared per entity so invalidation seen
// by one service is seen by all.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	currencyCache := cache.NewReference[domain.Currency](cfg.ReferenceSize, cfg.ReferenceTTL)
	yearCache := cache.NewReference[domain.FinancialYear](cfg.ReferenceSize, cfg.ReferenceTTL)
	ratesCache := cache.NewReference[[]domain.ExchangeRate](cfg.ReferenceSize, cfg.ReferenceTTL)

	container.Currency = NewCurrencyService(repos.CurrencyRepo, currencyCache)
	container.FinancialYear = NewFinancialYearService(repos.FinancialYearRepo, yearCache)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, container.Currency, ratesCache, cfg.FXLookup)
	container.Account = NewAccountService(repos.AccountRepo, repos.CurrencyRepo)
	container.Journal = NewJournalService(repos.JournalRepo, container.Account, container.FinancialYear)
	container.OpeningBalance = NewOpeningBalanceService(repos.OpeningBalanceRepo, container.Account, container.FinancialYear)
	container.Deposit = NewDepositService(repos.DepositRepo, container.Account, container.ExchangeRate, container.FinancialYear)
	container.StoreRequest = NewStoreRequestService(repos.StoreRequestRepo, container.FinancialYear)
	container.Preference = NewPreferenceService(repos.PreferenceRepo)
	container.Validation = NewValidationService(container.FinancialYear, container.ExchangeRate, container.OpeningBalance)

	return container
}
