package dto

import (
	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CreateCurrencyRequest defines the payload for creating a currency.
type CreateCurrencyRequest struct {
	Code      string `json:"code" binding:"required,len=3,uppercase"`
	Name      string `json:"name" binding:"required,max=100"`
	Symbol    string `json:"symbol" binding:"required,max=8"`
	IsDefault bool   `json:"isDefault"`
}

// UpdateCurrencyRequest defines the payload for updating a currency.
type UpdateCurrencyRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=100"`
	Symbol    *string `json:"symbol" binding:"omitempty,max=8"`
	IsDefault *bool   `json:"isDefault"`
	IsActive  *bool   `json:"isActive"`
}

// CurrencyResponse defines the API representation of a currency.
type CurrencyResponse struct {
	CurrencyID string `json:"currencyID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	IsDefault  bool   `json:"isDefault"`
	IsActive   bool   `json:"isActive"`
}

// ToCurrencyResponse converts a domain.Currency to its API representation.
func ToCurrencyResponse(c *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyID: c.CurrencyID,
		Code:       c.Code,
		Name:       c.Name,
		Symbol:     c.Symbol,
		IsDefault:  c.IsDefault,
		IsActive:   c.IsActive,
	}
}

// ToCurrencyResponses converts a slice of currencies.
func ToCurrencyResponses(currencies []domain.Currency) []CurrencyResponse {
	out := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		out[i] = ToCurrencyResponse(&currencies[i])
	}
	return out
}
