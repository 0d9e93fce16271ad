package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindExchangeRateByID retrieves an exchange rate by its ID.
	FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)

	// FindExchangeRate retrieves the active rate for an exact currency pair.
	FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error)

	// ListActiveExchangeRates retrieves all currently active rates.
	ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveExchangeRate inserts a rate or updates the rate for an existing pair.
	SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error

	// DeactivateExchangeRate soft-deletes a rate.
	DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error
}

// ExchangeRateRepositoryFacade combines all exchange rate repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
