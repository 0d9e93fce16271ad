package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CurrencyReader defines read operations for currency data.
type CurrencyReader interface {
	// FindCurrencyByID retrieves a specific currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)

	// FindDefaultCurrency retrieves the currency flagged as the default.
	FindDefaultCurrency(ctx context.Context) (*domain.Currency, error)

	// ListCurrencies retrieves all currencies, optionally only active ones.
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for currency data.
type CurrencyWriter interface {
	// SaveCurrency persists a new or updated currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	// ClearDefaultCurrency removes the default flag from every currency.
	// Used before promoting a new default so at most one remains flagged.
	ClearDefaultCurrency(ctx context.Context, updatedBy string) error
}

// CurrencyRepositoryFacade combines all currency repository interfaces.
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
