package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// FinancialYearReader defines read operations for financial year data.
type FinancialYearReader interface {
	// FindFinancialYearByID retrieves a financial year by its ID.
	FindFinancialYearByID(ctx context.Context, financialYearID string) (*domain.FinancialYear, error)

	// FindCurrentFinancialYear retrieves the year flagged current and active.
	FindCurrentFinancialYear(ctx context.Context) (*domain.FinancialYear, error)

	// ListFinancialYears retrieves all financial years ordered by start date.
	ListFinancialYears(ctx context.Context, activeOnly bool) ([]domain.FinancialYear, error)
}

// FinancialYearWriter defines write operations for financial year data.
type FinancialYearWriter interface {
	// SaveFinancialYear persists a new or updated financial year.
	SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error

	// ClearCurrentFinancialYear removes the current flag from every year.
	ClearCurrentFinancialYear(ctx context.Context, updatedBy string) error
}

// FinancialYearRepositoryFacade combines all financial year repository interfaces.
type FinancialYearRepositoryFacade interface {
	FinancialYearReader
	FinancialYearWriter
}
