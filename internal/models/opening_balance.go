package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is the persistence model for the opening_balances table.
// A unique constraint on (account_id, financial_year_id) backs the duplicate
// guard at the storage level.
type OpeningBalance struct {
	OpeningBalanceID string          `json:"openingBalanceID"`
	AccountID        string          `json:"accountID"`
	FinancialYearID  string          `json:"financialYearID"`
	BalanceDate      time.Time       `json:"balanceDate"`
	LineType         string          `json:"lineType"`
	Amount           decimal.Decimal `json:"amount"`
	Notes            string          `json:"notes"`
	AuditFields
}
