package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is the persistence model for the exchange_rates table.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"`
	FromCurrencyID string          `json:"fromCurrencyID"`
	ToCurrencyID   string          `json:"toCurrencyID"`
	Rate           decimal.Decimal `json:"rate"`
	DateEffective  time.Time       `json:"dateEffective"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
