package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// DepositSvcFacade defines the operations of the customer deposit service.
type DepositSvcFacade interface {
	CreateDeposit(ctx context.Context, req dto.CreateDepositRequest, creatorUserID string) (*domain.CustomerDeposit, error)
	GetDepositByID(ctx context.Context, depositID string) (*domain.CustomerDeposit, error)
	ListDeposits(ctx context.Context, params dto.ListDepositsParams) (*dto.ListDepositsResponse, error)

	// RecalculateAmounts applies a single edited amount field (rate, original
	// amount or equivalent amount) and recomputes the other two from the held
	// values, persisting the result.
	RecalculateAmounts(ctx context.Context, depositID string, req dto.UpdateDepositAmountsRequest, updaterUserID string) (*domain.CustomerDeposit, error)
}
