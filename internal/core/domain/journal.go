package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LineType indicates whether a journal line is a debit or a credit.
type LineType string

const (
	Debit  LineType = "DEBIT"
	Credit LineType = "CREDIT"
)

// JournalEntry is a multi-line financial document. Its lines must balance:
// the absolute difference between total debits and total credits has to stay
// below the reconciliation tolerance before the entry can be posted.
type JournalEntry struct {
	JournalEntryID  string          `json:"journalEntryID"` // Primary Key (UUID)
	EntryDate       time.Time       `json:"entryDate"`
	FinancialYearID string          `json:"financialYearID"` // FK -> FinancialYear
	CurrencyID      string          `json:"currencyID"`      // FK -> Currency
	Reference       string          `json:"reference"`
	Description     string          `json:"description"`
	Status          DocumentStatus  `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	Lines           []JournalLine   `json:"lines,omitempty"`
	AuditFields
}

// JournalLine is a single debit- or credit-tagged line within a journal entry.
type JournalLine struct {
	JournalLineID  string          `json:"journalLineID"` // Primary Key (UUID)
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"` // FK -> Account (Not Null)
	LineType       LineType        `json:"lineType"`  // DEBIT or CREDIT
	Amount         decimal.Decimal `json:"amount"`    // Positive, document currency
	Description    string          `json:"description"`
	AuditFields
}
