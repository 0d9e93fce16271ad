package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// CurrencySvcFacade defines the operations of the currency service.
type CurrencySvcFacade interface {
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error)
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error)
	GetDefaultCurrency(ctx context.Context) (*domain.Currency, error)
	ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error)
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error)
}
