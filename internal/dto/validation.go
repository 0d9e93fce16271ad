package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

// Validation payloads deliberately carry no `binding:"required"` tags: the
// point of a validate call is to report missing fields as field errors, not
// to reject the request outright.

// JournalLineInput is a journal line as entered in the form, pre-validation.
type JournalLineInput struct {
	AccountID   string          `json:"accountID"`
	LineType    domain.LineType `json:"lineType"`
	Amount      decimal.Decimal `json:"amount"`
	Description string          `json:"description"`
}

// ValidateJournalEntryRequest is the form state of a journal entry.
type ValidateJournalEntryRequest struct {
	EntryDate       *time.Time         `json:"entryDate"`
	FinancialYearID string             `json:"financialYearID"`
	CurrencyID      string             `json:"currencyID"`
	Reference       string             `json:"reference"`
	Description     string             `json:"description"`
	Lines           []JournalLineInput `json:"lines"`
}

// ValidateDepositRequest is the form state of a customer deposit.
type ValidateDepositRequest struct {
	CustomerID      string           `json:"customerID"`
	AccountID       string           `json:"accountID"`
	FinancialYearID string           `json:"financialYearID"`
	CurrencyID      string           `json:"currencyID"`
	OriginalAmount  *decimal.Decimal `json:"originalAmount"`
	DepositDate     *time.Time       `json:"depositDate"`
}

// ValidateOpeningBalanceRequest is the form state of an opening balance.
type ValidateOpeningBalanceRequest struct {
	AccountID       string           `json:"accountID"`
	FinancialYearID string           `json:"financialYearID"`
	BalanceDate     *time.Time       `json:"balanceDate"`
	LineType        domain.LineType  `json:"lineType"`
	Amount          *decimal.Decimal `json:"amount"`
}

// ValidateStoreRequestRequest is the form state of a store request.
type ValidateStoreRequestRequest struct {
	FromStoreID     string     `json:"fromStoreID"`
	ToStoreID       string     `json:"toStoreID"`
	FinancialYearID string     `json:"financialYearID"`
	RequestDate     *time.Time `json:"requestDate"`
}

// ValidationResult aggregates every gate's outcome plus the normalized values
// a compliant client should adopt before submitting.
type ValidationResult struct {
	FieldErrors    rules.FieldErrors     `json:"fieldErrors"`
	DocumentErrors []string              `json:"documentErrors"`
	Reconciliation *rules.ReconcileResult `json:"reconciliation,omitempty"`

	// Normalized values
	NormalizedDate   *time.Time              `json:"normalizedDate,omitempty"`
	DateClamped      bool                    `json:"dateClamped"`
	RateResolution   *RateResolutionResponse `json:"rateResolution,omitempty"`
	EquivalentAmount *decimal.Decimal        `json:"equivalentAmount,omitempty"`
	DuplicateExists  bool                    `json:"duplicateExists"`

	CanSubmit bool `json:"canSubmit"`
}

// AddDocumentError appends a document-level error and blocks submission.
func (r *ValidationResult) AddDocumentError(msg string) {
	r.DocumentErrors = append(r.DocumentErrors, msg)
}

// Finalize computes CanSubmit from the accumulated errors.
func (r *ValidationResult) Finalize() {
	r.CanSubmit = !r.FieldErrors.HasErrors() && len(r.DocumentErrors) == 0
}
