package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
	"github.com/mocustoms/railway-ledger/internal/platform/cache"
)

const defaultCurrencyCacheKey = "default-currency"

// currencyService provides currency master-data operations. The default
// currency is read on nearly every validation, so it sits behind the
// reference cache.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
	defaultCache *cache.Reference[domain.Currency]
}

// NewCurrencyService creates a new currency service.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade, defaultCache *cache.Reference[domain.Currency]) portssvc.CurrencySvcFacade {
	return &currencyService{
		currencyRepo: currencyRepo,
		defaultCache: defaultCache,
	}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	now := time.Now()

	currency := domain.Currency{
		CurrencyID: uuid.NewString(),
		Code:       req.Code,
		Name:       req.Name,
		Symbol:     req.Symbol,
		IsDefault:  req.IsDefault,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.IsDefault {
		if err := s.currencyRepo.ClearDefaultCurrency(ctx, creatorUserID); err != nil {
			logger.Error("Failed to clear previous default currency", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to clear previous default currency: %w", err)
		}
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", slog.String("error", err.Error()), slog.String("code", req.Code))
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	s.defaultCache.Invalidate(defaultCurrencyCacheKey)
	logger.Info("Currency created", slog.String("currency_id", currency.CurrencyID), slog.String("code", currency.Code))
	return &currency, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	return currency, nil
}

// GetDefaultCurrency returns the single currency flagged as default, cached
// for the reference TTL.
func (s *currencyService) GetDefaultCurrency(ctx context.Context) (*domain.Currency, error) {
	currency, err := s.defaultCache.GetOrLoad(ctx, defaultCurrencyCacheKey, func(ctx context.Context) (domain.Currency, error) {
		c, err := s.currencyRepo.FindDefaultCurrency(ctx)
		if err != nil {
			return domain.Currency{}, err
		}
		return *c, nil
	})
	if err != nil {
		return nil, err
	}
	return &currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, activeOnly bool) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		currencies = []domain.Currency{}
	}
	return currencies, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Name != nil {
		currency.Name = *req.Name
	}
	if req.Symbol != nil {
		currency.Symbol = *req.Symbol
	}
	if req.IsActive != nil {
		currency.IsActive = *req.IsActive
	}
	if req.IsDefault != nil && *req.IsDefault && !currency.IsDefault {
		if err := s.currencyRepo.ClearDefaultCurrency(ctx, updaterUserID); err != nil {
			logger.Error("Failed to clear previous default currency", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to clear previous default currency: %w", err)
		}
		currency.IsDefault = true
	}
	currency.LastUpdatedAt = now
	currency.LastUpdatedBy = updaterUserID

	if err := s.currencyRepo.SaveCurrency(ctx, *currency); err != nil {
		logger.Error("Failed to update currency", slog.String("error", err.Error()), slog.String("currency_id", currencyID))
		return nil, fmt.Errorf("failed to update currency: %w", err)
	}

	s.defaultCache.Invalidate(defaultCurrencyCacheKey)
	logger.Info("Currency updated", slog.String("currency_id", currencyID))
	return currency, nil
}
