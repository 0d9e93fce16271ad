package services

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Currency       CurrencySvcFacade
	FinancialYear  FinancialYearSvcFacade
	ExchangeRate   ExchangeRateSvcFacade
	Account        AccountSvcFacade
	Journal        JournalSvcFacade
	OpeningBalance OpeningBalanceSvcFacade
	Deposit        DepositSvcFacade
	StoreRequest   StoreRequestSvcFacade
	Preference     PreferenceSvcFacade
	Validation     ValidationSvcFacade
}
