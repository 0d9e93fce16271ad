package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// ExchangeRateSvcFacade defines the operations of the exchange rate service.
type ExchangeRateSvcFacade interface {
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
	GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error)
	ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
	DeactivateExchangeRate(ctx context.Context, rateID string, updaterUserID string) error

	// ResolveToDefault resolves the conversion rate from the selected currency
	// into the default currency, honouring the configured lookup policy when
	// no usable pair rate exists.
	ResolveToDefault(ctx context.Context, selectedCurrencyID string) (rules.RateResolution, error)
}
