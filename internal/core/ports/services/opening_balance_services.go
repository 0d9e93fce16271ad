package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// OpeningBalanceSvcFacade defines the operations of the opening balance service.
type OpeningBalanceSvcFacade interface {
	CreateOpeningBalance(ctx context.Context, req dto.CreateOpeningBalanceRequest, creatorUserID string) (*domain.OpeningBalance, error)
	GetOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error)
	ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error)
	UpdateOpeningBalance(ctx context.Context, openingBalanceID string, req dto.UpdateOpeningBalanceRequest, updaterUserID string) (*domain.OpeningBalance, error)
	DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error

	// CheckDuplicate is the field-change path of the duplicate guard. Lookup
	// failures are downgraded to "no duplicate" (fail-open); only the final
	// gate inside CreateOpeningBalance is allowed to block on lookup errors.
	CheckDuplicate(ctx context.Context, accountID, financialYearID string) (bool, error)
}
