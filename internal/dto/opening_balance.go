package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CreateOpeningBalanceRequest defines the payload for creating an opening balance.
type CreateOpeningBalanceRequest struct {
	AccountID       string          `json:"accountID" binding:"required"`
	FinancialYearID string          `json:"financialYearID" binding:"required"`
	BalanceDate     time.Time       `json:"balanceDate" binding:"required"`
	LineType        domain.LineType `json:"lineType" binding:"required,drcr"`
	Amount          decimal.Decimal `json:"amount" binding:"required"`
	Notes           string          `json:"notes" binding:"max=255"`
}

// UpdateOpeningBalanceRequest defines the payload for updating an opening
// balance. The (account, financial year) pair is immutable; only the amount
// side and notes may change.
type UpdateOpeningBalanceRequest struct {
	BalanceDate *time.Time       `json:"balanceDate"`
	LineType    *domain.LineType `json:"lineType" binding:"omitempty,drcr"`
	Amount      *decimal.Decimal `json:"amount"`
	Notes       *string          `json:"notes" binding:"omitempty,max=255"`
}

// OpeningBalanceCheckResponse is the duplicate guard's check outcome.
type OpeningBalanceCheckResponse struct {
	AccountID       string `json:"accountID"`
	FinancialYearID string `json:"financialYearID"`
	Exists          bool   `json:"exists"`
}

// OpeningBalanceResponse defines the API representation of an opening balance.
type OpeningBalanceResponse struct {
	OpeningBalanceID string          `json:"openingBalanceID"`
	AccountID        string          `json:"accountID"`
	FinancialYearID  string          `json:"financialYearID"`
	BalanceDate      time.Time       `json:"balanceDate"`
	LineType         domain.LineType `json:"lineType"`
	Amount           decimal.Decimal `json:"amount"`
	Notes            string          `json:"notes,omitempty"`
}

// ToOpeningBalanceResponse converts a domain.OpeningBalance to its API representation.
func ToOpeningBalanceResponse(ob *domain.OpeningBalance) OpeningBalanceResponse {
	return OpeningBalanceResponse{
		OpeningBalanceID: ob.OpeningBalanceID,
		AccountID:        ob.AccountID,
		FinancialYearID:  ob.FinancialYearID,
		BalanceDate:      ob.BalanceDate,
		LineType:         ob.LineType,
		Amount:           ob.Amount,
		Notes:            ob.Notes,
	}
}

// ToOpeningBalanceResponses converts a slice of opening balances.
func ToOpeningBalanceResponses(balances []domain.OpeningBalance) []OpeningBalanceResponse {
	out := make([]OpeningBalanceResponse, len(balances))
	for i := range balances {
		out[i] = ToOpeningBalanceResponse(&balances[i])
	}
	return out
}
