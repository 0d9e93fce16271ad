package services

import (
	"context"
	"time"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// FinancialYearSvcFacade defines the operations of the financial year service.
type FinancialYearSvcFacade interface {
	CreateFinancialYear(ctx context.Context, req dto.CreateFinancialYearRequest, creatorUserID string) (*domain.FinancialYear, error)
	GetFinancialYearByID(ctx context.Context, financialYearID string) (*domain.FinancialYear, error)
	GetCurrentFinancialYear(ctx context.Context) (*domain.FinancialYear, error)
	ListFinancialYears(ctx context.Context, activeOnly bool) ([]domain.FinancialYear, error)
	UpdateFinancialYear(ctx context.Context, financialYearID string, req dto.UpdateFinancialYearRequest, updaterUserID string) (*domain.FinancialYear, error)

	// ResolveYear returns the year for the given ID, or the current year when
	// the ID is empty. A nil result with nil error means no year is resolvable
	// and date-window checks are skipped.
	ResolveYear(ctx context.Context, financialYearID string) (*domain.FinancialYear, error)

	// ValidateDocumentDate runs the date-window gate for a document date
	// against the resolved year.
	ValidateDocumentDate(ctx context.Context, date time.Time, financialYearID string) error
}
