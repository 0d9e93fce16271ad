package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
	"github.com/mocustoms/railway-ledger/internal/platform/cache"
	"github.com/mocustoms/railway-ledger/pkg/config"
)

const activeRatesCacheKey = "active-rates"

// exchangeRateService provides exchange rate operations and the resolution
// gate that converts document amounts into the default currency.
type exchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
	ratesCache  *cache.Reference[[]domain.ExchangeRate]
	policy      config.LookupPolicy
}

// NewExchangeRateService creates a new exchange rate service.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencySvc portssvc.CurrencySvcFacade, ratesCache *cache.Reference[[]domain.ExchangeRate], policy config.LookupPolicy) portssvc.ExchangeRateSvcFacade {
	return &exchangeRateService{
		rateRepo:    rateRepo,
		currencySvc: currencySvc,
		ratesCache:  ratesCache,
		policy:      policy,
	}
}

var _ portssvc.ExchangeRateSvcFacade = (*exchangeRateService)(nil)

func (s *exchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromCurrencyID == req.ToCurrencyID {
		return nil, apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("rate must be positive")
	}

	// Both ends must exist before a rate can connect them.
	if _, err := s.currencySvc.GetCurrencyByID(ctx, req.FromCurrencyID); err != nil {
		return nil, fmt.Errorf("from currency: %w", err)
	}
	if _, err := s.currencySvc.GetCurrencyByID(ctx, req.ToCurrencyID); err != nil {
		return nil, fmt.Errorf("to currency: %w", err)
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		FromCurrencyID: req.FromCurrencyID,
		ToCurrencyID:   req.ToCurrencyID,
		Rate:           req.Rate,
		DateEffective:  req.DateEffective,
		IsActive:       true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, rate); err != nil {
		logger.Error("Failed to save exchange rate", slog.String("error", err.Error()),
			slog.String("from", req.FromCurrencyID), slog.String("to", req.ToCurrencyID))
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	s.ratesCache.Invalidate(activeRatesCacheKey)
	logger.Info("Exchange rate saved", slog.String("exchange_rate_id", rate.ExchangeRateID),
		slog.String("from", rate.FromCurrencyID), slog.String("to", rate.ToCurrencyID))
	return &rate, nil
}

func (s *exchangeRateService) GetExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	return s.rateRepo.FindExchangeRateByID(ctx, rateID)
}

// ListActiveExchangeRates returns every active rate, cached for the reference
// TTL. This is the rate table validations resolve against.
func (s *exchangeRateService) ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	ratesList, err := s.ratesCache.GetOrLoad(ctx, activeRatesCacheKey, func(ctx context.Context) ([]domain.ExchangeRate, error) {
		return s.rateRepo.ListActiveExchangeRates(ctx)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list active exchange rates: %w", err)
	}
	if ratesList == nil {
		ratesList = []domain.ExchangeRate{}
	}
	return ratesList, nil
}

func (s *exchangeRateService) DeactivateExchangeRate(ctx context.Context, rateID string, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.rateRepo.DeactivateExchangeRate(ctx, rateID, updaterUserID); err != nil {
		return err
	}
	s.ratesCache.Invalidate(activeRatesCacheKey)
	logger.Info("Exchange rate deactivated", slog.String("exchange_rate_id", rateID))
	return nil
}

// ResolveToDefault resolves the conversion rate from the selected currency
// into the default currency. When no usable pair rate exists the configured
// lookup policy decides: "fallback" accepts the 1:1 identity rate (flagged so
// the caller can surface it), "block" rejects with ErrRateUnavailable.
func (s *exchangeRateService) ResolveToDefault(ctx context.Context, selectedCurrencyID string) (rules.RateResolution, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	defaultCurrency, err := s.currencySvc.GetDefaultCurrency(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			// No default currency configured: every amount is already in base
			// terms, the identity rate applies.
			return rules.RateResolution{Rate: decimal.NewFromInt(1)}, nil
		}
		return rules.RateResolution{}, fmt.Errorf("failed to resolve default currency: %w", err)
	}

	activeRates, err := s.ListActiveExchangeRates(ctx)
	if err != nil {
		return rules.RateResolution{}, err
	}

	res := rules.ResolveRate(selectedCurrencyID, *defaultCurrency, activeRates)
	if res.Fallback {
		if s.policy == config.LookupBlock {
			return rules.RateResolution{}, fmt.Errorf("%w: no active rate from %s to %s",
				apperrors.ErrRateUnavailable, selectedCurrencyID, defaultCurrency.CurrencyID)
		}
		logger.Warn("No exchange rate found, falling back to 1:1",
			slog.String("from", selectedCurrencyID), slog.String("to", defaultCurrency.CurrencyID))
	}
	return res, nil
}
