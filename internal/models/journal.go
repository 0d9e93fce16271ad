package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// JournalEntry is the persistence model for the journal_entries table.
// Totals are denormalised at write time so list views never re-sum lines.
type JournalEntry struct {
	JournalEntryID  string          `json:"journalEntryID"`
	EntryDate       time.Time       `json:"entryDate"`
	FinancialYearID string          `json:"financialYearID"`
	CurrencyID      string          `json:"currencyID"`
	Reference       string          `json:"reference"`
	Description     string          `json:"description"`
	Status          string          `json:"status"`
	TotalDebit      decimal.Decimal `json:"totalDebit"`
	TotalCredit     decimal.Decimal `json:"totalCredit"`
	AuditFields
}

// JournalLine is the persistence model for the journal_lines table.
type JournalLine struct {
	JournalLineID  string          `json:"journalLineID"`
	JournalEntryID string          `json:"journalEntryID"`
	AccountID      string          `json:"accountID"`
	LineType       string          `json:"lineType"`
	Amount         decimal.Decimal `json:"amount"`
	Description    string          `json:"description"`
	AuditFields
}
