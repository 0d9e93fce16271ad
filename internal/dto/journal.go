package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// JournalLineRequest is a single debit/credit line in a create payload.
type JournalLineRequest struct {
	AccountID   string          `json:"accountID" binding:"required"`
	LineType    domain.LineType `json:"lineType" binding:"required,drcr"`
	Amount      decimal.Decimal `json:"amount" binding:"required"`
	Description string          `json:"description" binding:"max=255"`
}

// CreateJournalEntryRequest defines the payload for creating a journal entry.
type CreateJournalEntryRequest struct {
	EntryDate       time.Time            `json:"entryDate" binding:"required"`
	FinancialYearID string               `json:"financialYearID"`
	CurrencyID      string               `json:"currencyID"`
	Reference       string               `json:"reference" binding:"max=50"`
	Description     string               `json:"description" binding:"required,max=255"`
	Lines           []JournalLineRequest `json:"lines" binding:"required,min=2,dive"`
}

// UpdateJournalEntryRequest defines the header-only update payload.
type UpdateJournalEntryRequest struct {
	EntryDate   *time.Time `json:"entryDate"`
	Reference   *string    `json:"reference" binding:"omitempty,max=50"`
	Description *string    `json:"description" binding:"omitempty,max=255"`
}

// ListJournalEntriesParams carries pagination parameters for entry listing.
type ListJournalEntriesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// JournalLineResponse defines the API representation of a journal line.
type JournalLineResponse struct {
	JournalLineID string          `json:"journalLineID"`
	AccountID     string          `json:"accountID"`
	LineType      domain.LineType `json:"lineType"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description,omitempty"`
}

// JournalEntryResponse defines the API representation of a journal entry.
type JournalEntryResponse struct {
	JournalEntryID  string                `json:"journalEntryID"`
	EntryDate       time.Time             `json:"entryDate"`
	FinancialYearID string                `json:"financialYearID"`
	CurrencyID      string                `json:"currencyID"`
	Reference       string                `json:"reference,omitempty"`
	Description     string                `json:"description"`
	Status          domain.DocumentStatus `json:"status"`
	TotalDebit      decimal.Decimal       `json:"totalDebit"`
	TotalCredit     decimal.Decimal       `json:"totalCredit"`
	Lines           []JournalLineResponse `json:"lines,omitempty"`
}

// ListJournalEntriesResponse is a page of journal entries.
type ListJournalEntriesResponse struct {
	Entries   []JournalEntryResponse `json:"entries"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToJournalLineResponses converts domain journal lines.
func ToJournalLineResponses(lines []domain.JournalLine) []JournalLineResponse {
	out := make([]JournalLineResponse, len(lines))
	for i, l := range lines {
		out[i] = JournalLineResponse{
			JournalLineID: l.JournalLineID,
			AccountID:     l.AccountID,
			LineType:      l.LineType,
			Amount:        l.Amount,
			Description:   l.Description,
		}
	}
	return out
}

// ToJournalEntryResponse converts a domain.JournalEntry to its API representation.
func ToJournalEntryResponse(e *domain.JournalEntry) JournalEntryResponse {
	return JournalEntryResponse{
		JournalEntryID:  e.JournalEntryID,
		EntryDate:       e.EntryDate,
		FinancialYearID: e.FinancialYearID,
		CurrencyID:      e.CurrencyID,
		Reference:       e.Reference,
		Description:     e.Description,
		Status:          e.Status,
		TotalDebit:      e.TotalDebit,
		TotalCredit:     e.TotalCredit,
		Lines:           ToJournalLineResponses(e.Lines),
	}
}
