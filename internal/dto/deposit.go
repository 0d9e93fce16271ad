package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CreateDepositRequest defines the payload for creating a customer deposit.
// ExchangeRate and EquivalentAmount are optional client-side values; the
// service re-resolves the rate and re-derives the equivalent regardless.
type CreateDepositRequest struct {
	CustomerID      string          `json:"customerID" binding:"required"`
	AccountID       string          `json:"accountID" binding:"required"`
	FinancialYearID string          `json:"financialYearID"`
	CurrencyID      string          `json:"currencyID"`
	OriginalAmount  decimal.Decimal `json:"originalAmount" binding:"required"`
	DepositDate     time.Time       `json:"depositDate" binding:"required"`
	Reference       string          `json:"reference" binding:"max=50"`
	Notes           string          `json:"notes" binding:"max=255"`
}

// UpdateDepositAmountsRequest carries a single edited amount field. Exactly
// one of Rate, OriginalAmount or EquivalentAmount should be set; the other
// two are recomputed from the held values.
type UpdateDepositAmountsRequest struct {
	ExchangeRate     *decimal.Decimal `json:"exchangeRate"`
	OriginalAmount   *decimal.Decimal `json:"originalAmount"`
	EquivalentAmount *decimal.Decimal `json:"equivalentAmount"`
}

// ListDepositsParams carries pagination parameters for deposit listing.
type ListDepositsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// DepositResponse defines the API representation of a customer deposit.
type DepositResponse struct {
	DepositID        string                `json:"depositID"`
	CustomerID       string                `json:"customerID"`
	AccountID        string                `json:"accountID"`
	FinancialYearID  string                `json:"financialYearID"`
	CurrencyID       string                `json:"currencyID"`
	ExchangeRateID   string                `json:"exchangeRateID,omitempty"`
	ExchangeRate     decimal.Decimal       `json:"exchangeRate"`
	OriginalAmount   decimal.Decimal       `json:"originalAmount"`
	EquivalentAmount decimal.Decimal       `json:"equivalentAmount"`
	DepositDate      time.Time             `json:"depositDate"`
	Reference        string                `json:"reference,omitempty"`
	Notes            string                `json:"notes,omitempty"`
	Status           domain.DocumentStatus `json:"status"`
}

// ListDepositsResponse is a page of deposits.
type ListDepositsResponse struct {
	Deposits  []DepositResponse `json:"deposits"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// ToDepositResponse converts a domain.CustomerDeposit to its API representation.
func ToDepositResponse(d *domain.CustomerDeposit) DepositResponse {
	return DepositResponse{
		DepositID:        d.DepositID,
		CustomerID:       d.CustomerID,
		AccountID:        d.AccountID,
		FinancialYearID:  d.FinancialYearID,
		CurrencyID:       d.CurrencyID,
		ExchangeRateID:   d.ExchangeRateID,
		ExchangeRate:     d.ExchangeRate,
		OriginalAmount:   d.OriginalAmount,
		EquivalentAmount: d.EquivalentAmount,
		DepositDate:      d.DepositDate,
		Reference:        d.Reference,
		Notes:            d.Notes,
		Status:           d.Status,
	}
}

// ToDepositResponses converts a slice of deposits.
func ToDepositResponses(deposits []domain.CustomerDeposit) []DepositResponse {
	out := make([]DepositResponse, len(deposits))
	for i := range deposits {
		out[i] = ToDepositResponse(&deposits[i])
	}
	return out
}
