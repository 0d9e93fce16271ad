package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// AccountSvcFacade defines the operations of the chart-of-accounts service.
type AccountSvcFacade interface {
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
	GetAccountsByIDs(ctx context.Context, accountIDs []string) (map[string]domain.Account, error)
	ListAccounts(ctx context.Context, limit, offset int) ([]domain.Account, error)
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, updaterUserID string) (*domain.Account, error)
	DeactivateAccount(ctx context.Context, accountID string, updaterUserID string) error
}
