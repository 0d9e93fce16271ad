package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	CurrencyRepo       CurrencyRepositoryFacade
	FinancialYearRepo  FinancialYearRepositoryFacade
	ExchangeRateRepo   ExchangeRateRepositoryFacade
	AccountRepo        AccountRepositoryFacade
	JournalRepo        JournalRepositoryWithTx
	OpeningBalanceRepo OpeningBalanceRepositoryFacade
	DepositRepo        DepositRepositoryFacade
	StoreRequestRepo   StoreRequestRepositoryFacade
	PreferenceRepo     PreferenceRepositoryFacade
}
