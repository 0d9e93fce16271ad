package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerDeposit is a single-amount document. OriginalAmount is expressed in
// the selected currency; EquivalentAmount is OriginalAmount converted into the
// default currency via ExchangeRate. Editing the rate or the original amount
// recomputes the equivalent from the other held value.
type CustomerDeposit struct {
	DepositID        string          `json:"depositID"` // Primary Key (UUID)
	CustomerID       string          `json:"customerID"`
	AccountID        string          `json:"accountID"`       // Deposit liability account
	FinancialYearID  string          `json:"financialYearID"` // FK -> FinancialYear
	CurrencyID       string          `json:"currencyID"`      // FK -> Currency
	ExchangeRateID   string          `json:"exchangeRateID"`  // Empty when rate is 1:1
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`   // Selected currency
	EquivalentAmount decimal.Decimal `json:"equivalentAmount"` // Default currency
	DepositDate      time.Time       `json:"depositDate"`
	Reference        string          `json:"reference"`
	Notes            string          `json:"notes"`
	Status           DocumentStatus  `json:"status"`
	AuditFields
}
