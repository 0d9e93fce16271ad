package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// OpeningBalanceReader defines read operations for opening balance data.
type OpeningBalanceReader interface {
	// FindOpeningBalanceByID retrieves an opening balance by its ID.
	FindOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error)

	// ExistsForAccountAndYear reports whether an opening balance already
	// exists for the (account, financial year) pair. This is the duplicate
	// guard's lookup.
	ExistsForAccountAndYear(ctx context.Context, accountID, financialYearID string) (bool, error)

	// ListOpeningBalancesByYear retrieves the opening balances of a financial year.
	ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error)
}

// OpeningBalanceWriter defines write operations for opening balance data.
type OpeningBalanceWriter interface {
	// SaveOpeningBalance persists a new opening balance.
	SaveOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error

	// UpdateOpeningBalance persists changes to an existing opening balance.
	UpdateOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error

	// DeleteOpeningBalance removes an opening balance.
	DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error
}

// OpeningBalanceRepositoryFacade combines all opening balance repository interfaces.
type OpeningBalanceRepositoryFacade interface {
	OpeningBalanceReader
	OpeningBalanceWriter
}
