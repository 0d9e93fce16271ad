package services

import (
	"context"
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
)

const defaultDepositPageSize = 20

// depositService provides customer deposit operations. The service always
// re-resolves the exchange rate and re-derives the equivalent amount on
// create; client-supplied conversion values are never trusted.
type depositService struct {
	depositRepo portsrepo.DepositRepositoryFacade
	accountSvc  portssvc.AccountSvcFacade
	rateSvc     portssvc.ExchangeRateSvcFacade
	fySvc       portssvc.FinancialYearSvcFacade
}

// NewDepositService creates a new customer deposit service.
func NewDepositService(depositRepo portsrepo.DepositRepositoryFacade, accountSvc portssvc.AccountSvcFacade, rateSvc portssvc.ExchangeRateSvcFacade, fySvc portssvc.FinancialYearSvcFacade) portssvc.DepositSvcFacade {
	return &depositService{
		depositRepo: depositRepo,
		accountSvc:  accountSvc,
		rateSvc:     rateSvc,
		fySvc:       fySvc,
	}
}

var _ portssvc.DepositSvcFacade = (*depositService)(nil)

func (s *depositService) CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, creatorUserID string) (*domain.CustomerDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("original amount must be positive")
	}

	if _, err := s.accountSvc.GetAccountByID(ctx, req.AccountID); err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		return nil, fmt.Errorf("financial year: %w", err)
	}
	financialYearID := req.FinancialYearID
	if fy != nil {
		financialYearID = fy.FinancialYearID
	}

	if err := s.fySvc.ValidateDocumentDate(ctx, req.DepositDate, financialYearID); err != nil {
		return nil, err
	}

	res, err := s.rateSvc.ResolveToDefault(ctx, req.CurrencyID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	deposit := domain.CustomerDeposit{
		DepositID:        uuid.NewString(),
		CustomerID:       req.CustomerID,
		AccountID:        req.AccountID,
		FinancialYearID:  financialYearID,
		CurrencyID:       req.CurrencyID,
		ExchangeRateID:   res.RateID,
		ExchangeRate:     res.Rate,
		OriginalAmount:   req.OriginalAmount,
		EquivalentAmount: rules.EquivalentAmount(req.OriginalAmount, res.Rate),
		DepositDate:      req.DepositDate,
		Reference:        req.Reference,
		Notes:            req.Notes,
		Status:           domain.Posted,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.depositRepo.SaveDeposit(ctx, deposit); err != nil {
		logger.Error("Failed to save deposit", slog.String("error", err.Error()), slog.String("customer_id", req.CustomerID))
		return nil, fmt.Errorf("failed to create deposit: %w", err)
	}

	logger.Info("Deposit created", slog.String("deposit_id", deposit.DepositID),
		slog.String("original_amount", deposit.OriginalAmount.String()),
		slog.String("equivalent_amount", deposit.EquivalentAmount.String()),
		slog.Bool("rate_fallback", res.Fallback))
	return &deposit, nil
}

func (s *depositService) GetDepositByID(ctx context.Context, depositID string) (*domain.CustomerDeposit, error) {
	return s.depositRepo.FindDepositByID(ctx, depositID)
}

func (s *depositService) ListDeposits(ctx context.Context, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultDepositPageSize
	}
	deposits, next, err := s.depositRepo.ListDeposits(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListDepositsResponse{
		Deposits:  dto.ToDepositResponses(deposits),
		NextToken: next,
	}, nil
}

// RecalculateAmounts applies a single edited amount field and recomputes the
// other side from the held values. Editing the rate or the original amount
// re-derives the equivalent; editing the equivalent re-derives the original
// while the rate is held. Exactly one field may be set per call.
func (s *depositService) RecalculateAmounts(ctx context.Context, depositID string, req dto.UpdateDepositAmountsRequest, updaterUserID string) (*domain.CustomerDeposit, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	set := 0
	if req.ExchangeRate != nil {
		set++
	}
	if req.OriginalAmount != nil {
		set++
	}
	if req.EquivalentAmount != nil {
		set++
	}
	if set != 1 {
		return nil, apperrors.NewValidationError("exactly one of exchangeRate, originalAmount or equivalentAmount must be set")
	}

	deposit, err := s.depositRepo.FindDepositByID(ctx, depositID)
	if err != nil {
		return nil, err
	}

	switch {
	case req.ExchangeRate != nil:
		if req.ExchangeRate.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError("exchange rate must be positive")
		}
		deposit.ExchangeRate = *req.ExchangeRate
		// A manually entered rate detaches the deposit from any stored rate.
		deposit.ExchangeRateID = ""
		deposit.EquivalentAmount = rules.EquivalentAmount(deposit.OriginalAmount, deposit.ExchangeRate)
	case req.OriginalAmount != nil:
		if req.OriginalAmount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError("original amount must be positive")
		}
		deposit.OriginalAmount = *req.OriginalAmount
		deposit.EquivalentAmount = rules.EquivalentAmount(deposit.OriginalAmount, deposit.ExchangeRate)
	case req.EquivalentAmount != nil:
		if req.EquivalentAmount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError("equivalent amount must be positive")
		}
		deposit.EquivalentAmount = *req.EquivalentAmount
		deposit.OriginalAmount = rules.AmountFromEquivalent(deposit.EquivalentAmount, deposit.ExchangeRate)
	}

	deposit.LastUpdatedAt = time.Now()
	deposit.LastUpdatedBy = updaterUserID

	if err := s.depositRepo.UpdateDeposit(ctx, *deposit); err != nil {
		logger.Error("Failed to update deposit amounts", slog.String("error", err.Error()), slog.String("deposit_id", depositID))
		return nil, fmt.Errorf("failed to update deposit amounts: %w", err)
	}

	logger.Info("Deposit amounts recalculated", slog.String("deposit_id", depositID),
		slog.String("exchange_rate", deposit.ExchangeRate.String()),
		slog.String("original_amount", deposit.OriginalAmount.String()),
		slog.String("equivalent_amount", deposit.EquivalentAmount.String()))
	return deposit, nil
}
