package repositories

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// DepositReader defines read operations for customer deposits.
type DepositReader interface {
	// FindDepositByID retrieves a deposit by its ID.
	FindDepositByID(ctx context.Context, depositID string) (*domain.CustomerDeposit, error)

	// ListDeposits retrieves deposits newest-first using token pagination.
	ListDeposits(ctx context.Context, limit int, nextToken *string) ([]domain.CustomerDeposit, *string, error)
}

// DepositWriter defines write operations for customer deposits.
type DepositWriter interface {
	// SaveDeposit persists a new deposit.
	SaveDeposit(ctx context.Context, deposit domain.CustomerDeposit) error

	// UpdateDeposit persists changes to an existing deposit.
	UpdateDeposit(ctx context.Context, deposit domain.CustomerDeposit) error
}

// DepositRepositoryFacade combines all deposit repository interfaces.
type DepositRepositoryFacade interface {
	DepositReader
	DepositWriter
}
