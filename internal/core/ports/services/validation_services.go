package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/dto"
)

// ValidationSvcFacade aggregates the per-document validation gates: field
// rules, date window, rate resolution, balance reconciliation and the
// duplicate guard. The create paths reuse the same gates, so a document can
// never be persisted in a state a validate call would reject.
type ValidationSvcFacade interface {
	ValidateJournalEntry(ctx context.Context, req dto.ValidateJournalEntryRequest) (*dto.ValidationResult, error)
	ValidateDeposit(ctx context.Context, req dto.ValidateDepositRequest) (*dto.ValidationResult, error)
	ValidateOpeningBalance(ctx context.Context, req dto.ValidateOpeningBalanceRequest, isEdit bool) (*dto.ValidationResult, error)
	ValidateStoreRequest(ctx context.Context, req dto.ValidateStoreRequestRequest) (*dto.ValidationResult, error)
}
