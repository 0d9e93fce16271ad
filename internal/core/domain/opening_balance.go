package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OpeningBalance is a one-time balance record for an account within a
// financial year. At most one may exist per (account, financial year) pair.
type OpeningBalance struct {
	OpeningBalanceID string          `json:"openingBalanceID"` // Primary Key (UUID)
	AccountID        string          `json:"accountID"`        // FK -> Account
	FinancialYearID  string          `json:"financialYearID"`  // FK -> FinancialYear
	BalanceDate      time.Time       `json:"balanceDate"`
	LineType         LineType        `json:"lineType"` // DEBIT or CREDIT side
	Amount           decimal.Decimal `json:"amount"`
	Notes            string          `json:"notes"`
	AuditFields
}
