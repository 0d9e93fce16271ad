package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// CustomerDeposit is the persistence model for the customer_deposits table.
type CustomerDeposit struct {
	DepositID        string          `json:"depositID"`
	CustomerID       string          `json:"customerID"`
	AccountID        string          `json:"accountID"`
	FinancialYearID  string          `json:"financialYearID"`
	CurrencyID       string          `json:"currencyID"`
	ExchangeRateID   *string         `json:"exchangeRateID"` // Nullable column
	ExchangeRate     decimal.Decimal `json:"exchangeRate"`
	OriginalAmount   decimal.Decimal `json:"originalAmount"`
	EquivalentAmount decimal.Decimal `json:"equivalentAmount"`
	DepositDate      time.Time       `json:"depositDate"`
	Reference        string          `json:"reference"`
	Notes            string          `json:"notes"`
	Status           string          `json:"status"`
	AuditFields
}
