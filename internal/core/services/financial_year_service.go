package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/core/rules"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
	"github.com/mocustoms/railway-ledger/internal/platform/cache"
)

const currentYearCacheKey = "current-year"

// financialYearService provides financial year operations, including the
// date-window gate every document service runs before persisting.
type financialYearService struct {
	fyRepo    portsrepo.FinancialYearRepositoryFacade
	yearCache *cache.Reference[domain.FinancialYear]
}

// NewFinancialYearService creates a new financial year service.
func NewFinancialYearService(fyRepo portsrepo.FinancialYearRepositoryFacade, yearCache *cache.Reference[domain.FinancialYear]) portssvc.FinancialYearSvcFacade {
	return &financialYearService{
		fyRepo:    fyRepo,
		yearCache: yearCache,
	}
}

var _ portssvc.FinancialYearSvcFacade = (*financialYearService)(nil)

func (s *financialYearService) CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest, creatorUserID string) (*domain.FinancialYear, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !req.EndDate.After(req.StartDate) {
		return nil, apperrors.NewValidationError("end date must be after start date")
	}

	now := time.Now()
	fy := domain.FinancialYear{
		FinancialYearID: uuid.NewString(),
		Name:            req.Name,
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		IsCurrent:       req.IsCurrent,
		IsActive:        true,
		IsClosed:        false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if req.IsCurrent {
		if err := s.fyRepo.ClearCurrentFinancialYear(ctx, creatorUserID); err != nil {
			logger.Error("Failed to clear previous current financial year", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to clear previous current financial year: %w", err)
		}
	}

	if err := s.fyRepo.SaveFinancialYear(ctx, fy); err != nil {
		logger.Error("Failed to save financial year", slog.String("error", err.Error()), slog.String("name", req.Name))
		return nil, fmt.Errorf("failed to create financial year: %w", err)
	}

	s.yearCache.Purge()
	logger.Info("Financial year created", slog.String("financial_year_id", fy.FinancialYearID), slog.String("name", fy.Name))
	return &fy, nil
}

func (s *financialYearService) GetFinancialYearByID(ctx context.Context, financialYearID string) (*domain.FinancialYear, error) {
	fy, err := s.yearCache.GetOrLoad(ctx, financialYearID, func(ctx context.Context) (domain.FinancialYear, error) {
		found, err := s.fyRepo.FindFinancialYearByID(ctx, financialYearID)
		if err != nil {
			return domain.FinancialYear{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &fy, nil
}

func (s *financialYearService) GetCurrentFinancialYear(ctx context.Context) (*domain.FinancialYear, error) {
	fy, err := s.yearCache.GetOrLoad(ctx, currentYearCacheKey, func(ctx context.Context) (domain.FinancialYear, error) {
		found, err := s.fyRepo.FindCurrentFinancialYear(ctx)
		if err != nil {
			return domain.FinancialYear{}, err
		}
		return *found, nil
	})
	if err != nil {
		return nil, err
	}
	return &fy, nil
}

func (s *financialYearService) ListFinancialYears(ctx context.Context, activeOnly bool) ([]domain.FinancialYear, error) {
	years, err := s.fyRepo.ListFinancialYears(ctx, activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial years: %w", err)
	}
	if years == nil {
		years = []domain.FinancialYear{}
	}
	return years, nil
}

func (s *financialYearService) UpdateFinancialYear(ctx context.Context, financialYearID string, req dto.UpdateFinancialYearRequest, updaterUserID string) (*domain.FinancialYear, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	fy, err := s.fyRepo.FindFinancialYearByID(ctx, financialYearID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	if req.Name != nil {
		fy.Name = *req.Name
	}
	if req.IsActive != nil {
		fy.IsActive = *req.IsActive
	}
	if req.IsClosed != nil {
		fy.IsClosed = *req.IsClosed
	}
	if req.IsCurrent != nil && *req.IsCurrent && !fy.IsCurrent {
		if err := s.fyRepo.ClearCurrentFinancialYear(ctx, updaterUserID); err != nil {
			logger.Error("Failed to clear previous current financial year", slog.String("error", err.Error()))
			return nil, fmt.Errorf("failed to clear previous current financial year: %w", err)
		}
		fy.IsCurrent = true
	}
	fy.LastUpdatedAt = now
	fy.LastUpdatedBy = updaterUserID

	if err := s.fyRepo.SaveFinancialYear(ctx, *fy); err != nil {
		logger.Error("Failed to update financial year", slog.String("error", err.Error()), slog.String("financial_year_id", financialYearID))
		return nil, fmt.Errorf("failed to update financial year: %w", err)
	}

	s.yearCache.Purge()
	logger.Info("Financial year updated", slog.String("financial_year_id", financialYearID))
	return fy, nil
}

// ResolveYear returns the year for the given ID, or the current year when the
// ID is empty. When no year is selected and no current year exists, both
// return values are nil: the caller skips date-window checks entirely.
func (s *financialYearService) ResolveYear(ctx context.Context, financialYearID string) (*domain.FinancialYear, error) {
	if financialYearID != "" {
		return s.GetFinancialYearByID(ctx, financialYearID)
	}
	fy, err := s.GetCurrentFinancialYear(ctx)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return fy, nil
}

// ValidateDocumentDate runs the date-window gate for a document date against
// the resolved year.
func (s *financialYearService) ValidateDocumentDate(ctx context.Context, date time.Time, financialYearID string) error {
	fy, err := s.ResolveYear(ctx, financialYearID)
	if err != nil {
		return err
	}
	return rules.CheckDateWindow(date, fy)
}
