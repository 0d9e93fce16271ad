package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
)

// CreateExchangeRateRequest defines the payload for creating an exchange rate.
type CreateExchangeRateRequest struct {
	FromCurrencyID string          `json:"fromCurrencyID" binding:"required"`
	ToCurrencyID   string          `json:"toCurrencyID" binding:"required"`
	Rate           decimal.Decimal `json:"rate" binding:"required"`
	DateEffective  time.Time       `json:"dateEffective" binding:"required"`
}

// ExchangeRateResponse defines the API representation of an exchange rate.
type ExchangeRateResponse struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	IsActive       bool            `json:"isActive"`
}

// RateResolutionResponse is the outcome of resolving a currency against the
// default currency.
type RateResolutionResponse struct {
	CurrencyID string          `json:"currencyID"`
	Rate       decimal.Decimal `json:"rate"`
	RateID     string          `json:"rateID,omitempty"`
	Fallback   bool            `json:"fallback"`
}

// ToExchangeRateResponse converts a domain.ExchangeRate to its API representation.
func ToExchangeRateResponse(r *domain.ExchangeRate) ExchangeRateResponse {
	return ExchangeRateResponse{
		ExchangeRateID: r.ExchangeRateID,
		FromCurrencyID: r.FromCurrencyID,
		ToCurrencyID:   r.ToCurrencyID,
		Rate:           r.Rate,
		DateEffective:  r.DateEffective,
		IsActive:       r.IsActive,
	}
}

// ToExchangeRateResponses converts a slice of exchange rates.
func ToExchangeRateResponses(ratesList []domain.ExchangeRate) []ExchangeRateResponse {
	out := make([]ExchangeRateResponse, len(ratesList))
	for i := range ratesList {
		out[i] = ToExchangeRateResponse(&ratesList[i])
	}
	return out
}

// ToRateResolutionResponse converts a rules.RateResolution for a currency.
func ToRateResolutionResponse(currencyID string, res rules.RateResolution) RateResolutionResponse {
	return RateResolutionResponse{
		CurrencyID: currencyID,
		Rate:       res.Rate,
		RateID:     res.RateID,
		Fallback:   res.Fallback,
	}
}
