package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// JournalSvcFacade defines the operations of the journal entry service.
type JournalSvcFacade interface {
	CreateJournalEntry(ctx context.Context, req dto.CreateJournalEntryRequest, creatorUserID string) (*domain.JournalEntry, error)
	GetJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)
	ListJournalEntries(ctx context.Context, params dto.ListJournalEntriesParams) (*dto.ListJournalEntriesResponse, error)
	UpdateJournalEntry(ctx context.Context, entryID string, req dto.UpdateJournalEntryRequest, updaterUserID string) (*domain.JournalEntry, error)
	CancelJournalEntry(ctx context.Context, entryID string, updaterUserID string) error
}
