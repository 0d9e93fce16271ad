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
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

// openingBalanceService provides opening balance operations, in particular
// the duplicate guard: at most one opening balance per (account, financial
// year) pair.
type openingBalanceService struct {
	obRepo     portsrepo.OpeningBalanceRepositoryFacade
	accountSvc portssvc.AccountSvcFacade
	fySvc      portssvc.FinancialYearSvcFacade
}

// NewOpeningBalanceService creates a new opening balance service.
func NewOpeningBalanceService(obRepo portsrepo.OpeningBalanceRepositoryFacade, accountSvc portssvc.AccountSvcFacade, fySvc portssvc.FinancialYearSvcFacade) portssvc.OpeningBalanceSvcFacade {
	return &openingBalanceService{
		obRepo:     obRepo,
		accountSvc: accountSvc,
		fySvc:      fySvc,
	}
}

var _ portssvc.OpeningBalanceSvcFacade = (*openingBalanceService)(nil)

// CheckDuplicate is the field-change path of the duplicate guard. A lookup
// failure is reported as "no duplicate" so a transient storage problem never
// freezes the form; the final gate in CreateOpeningBalance stays strict.
func (s *openingBalanceService) CheckDuplicate(ctx context.Context, accountID, financialYearID string) (bool, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	if accountID == "" || financialYearID == "" {
		return false, nil
	}
	exists, err := s.obRepo.ExistsForAccountAndYear(ctx, accountID, financialYearID)
	if err != nil {
		logger.Warn("Duplicate check failed, reporting no duplicate",
			slog.String("error", err.Error()),
			slog.String("account_id", accountID),
			slog.String("financial_year_id", financialYearID))
		return false, nil
	}
	return exists, nil
}

func (s *openingBalanceService) CreateOpeningBalance(ctx context.Context, req dto.CreateOpeningBalanceRequest, creatorUserID string) (*domain.OpeningBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, apperrors.NewValidationError("amount must be positive")
	}

	account, err := s.accountSvc.GetAccountByID(ctx, req.AccountID)
	if err != nil {
		return nil, fmt.Errorf("account: %w", err)
	}
	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		return nil, fmt.Errorf("financial year: %w", err)
	}
	if fy == nil {
		return nil, fmt.Errorf("%w: financial year %s", apperrors.ErrNotFound, req.FinancialYearID)
	}

	if err := s.fySvc.ValidateDocumentDate(ctx, req.BalanceDate, fy.FinancialYearID); err != nil {
		return nil, err
	}

	// Final duplicate gate. Unlike CheckDuplicate this blocks on lookup
	// errors: a record must never be created when existence is unknown.
	exists, err := s.obRepo.ExistsForAccountAndYear(ctx, req.AccountID, fy.FinancialYearID)
	if err != nil {
		logger.Error("Duplicate gate lookup failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to verify opening balance uniqueness: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: an opening balance for %s already exists in %s",
			apperrors.ErrDuplicate, account.Name, fy.Name)
	}

	now := time.Now()
	ob := domain.OpeningBalance{
		OpeningBalanceID: uuid.NewString(),
		AccountID:        req.AccountID,
		FinancialYearID:  fy.FinancialYearID,
		BalanceDate:      req.BalanceDate,
		LineType:         req.LineType,
		Amount:           req.Amount,
		Notes:            req.Notes,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.obRepo.SaveOpeningBalance(ctx, ob); err != nil {
		logger.Error("Failed to save opening balance", slog.String("error", err.Error()),
			slog.String("account_id", req.AccountID), slog.String("financial_year_id", fy.FinancialYearID))
		return nil, err
	}

	logger.Info("Opening balance created", slog.String("opening_balance_id", ob.OpeningBalanceID),
		slog.String("account_id", ob.AccountID), slog.String("financial_year_id", ob.FinancialYearID))
	return &ob, nil
}

func (s *openingBalanceService) GetOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error) {
	return s.obRepo.FindOpeningBalanceByID(ctx, openingBalanceID)
}

func (s *openingBalanceService) ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error) {
	balances, err := s.obRepo.ListOpeningBalancesByYear(ctx, financialYearID)
	if err != nil {
		return nil, err
	}
	if balances == nil {
		balances = []domain.OpeningBalance{}
	}
	return balances, nil
}

// UpdateOpeningBalance edits an existing record. The (account, financial
// year) pair is immutable, so the duplicate guard does not apply here.
func (s *openingBalanceService) UpdateOpeningBalance(ctx context.Context, openingBalanceID string, req dto.UpdateOpeningBalanceRequest, updaterUserID string) (*domain.OpeningBalance, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	ob, err := s.obRepo.FindOpeningBalanceByID(ctx, openingBalanceID)
	if err != nil {
		return nil, err
	}

	if req.BalanceDate != nil {
		if err := s.fySvc.ValidateDocumentDate(ctx, *req.BalanceDate, ob.FinancialYearID); err != nil {
			return nil, err
		}
		ob.BalanceDate = *req.BalanceDate
	}
	if req.LineType != nil {
		ob.LineType = *req.LineType
	}
	if req.Amount != nil {
		if req.Amount.LessThanOrEqual(decimal.Zero) {
			return nil, apperrors.NewValidationError("amount must be positive")
		}
		ob.Amount = *req.Amount
	}
	if req.Notes != nil {
		ob.Notes = *req.Notes
	}
	ob.LastUpdatedAt = time.Now()
	ob.LastUpdatedBy = updaterUserID

	if err := s.obRepo.UpdateOpeningBalance(ctx, *ob); err != nil {
		logger.Error("Failed to update opening balance", slog.String("error", err.Error()), slog.String("opening_balance_id", openingBalanceID))
		return nil, fmt.Errorf("failed to update opening balance: %w", err)
	}

	logger.Info("Opening balance updated", slog.String("opening_balance_id", openingBalanceID))
	return ob, nil
}

func (s *openingBalanceService) DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.obRepo.DeleteOpeningBalance(ctx, openingBalanceID); err != nil {
		return err
	}
	logger.Info("Opening balance deleted", slog.String("opening_balance_id", openingBalanceID))
	return nil
}
