package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed conversion edge between two currencies.
// Resolution against the default currency is exact-pair only; there is no
// transitive multi-hop lookup.
type ExchangeRate struct {
	ExchangeRateID string          `json:"exchangeRateID"` // Primary Key (UUID)
	FromCurrencyID string          `json:"fromCurrencyID"` // FK -> Currency.currencyID
	ToCurrencyID   string          `json:"toCurrencyID"`   // FK -> Currency.currencyID
	Rate           decimal.Decimal `json:"rate"`           // Positive
	DateEffective  time.Time       `json:"dateEffective"`
	IsActive       bool            `json:"isActive"`
	AuditFields
}
