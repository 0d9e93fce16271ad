package repositories

import (
	"context"
	"time"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// JournalReader defines read operations for journal entries.
type JournalReader interface {
	// FindJournalEntryByID retrieves an entry header without lines.
	FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error)

	// FindLinesByEntryID retrieves the lines of a journal entry.
	FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error)

	// ListJournalEntries retrieves entries newest-first using token pagination.
	ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error)
}

// JournalWriter defines write operations for journal entries.
type JournalWriter interface {
	// SaveJournalEntry persists an entry and its lines atomically.
	SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error

	// UpdateJournalEntry persists header changes to an existing entry.
	UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error

	// UpdateJournalEntryStatus transitions an entry's lifecycle status.
	UpdateJournalEntryStatus(ctx context.Context, entryID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error
}

// JournalRepositoryFacade combines all journal repository interfaces.
type JournalRepositoryFacade interface {
	JournalReader
	JournalWriter
}

// JournalRepositoryWithTx extends the facade with transaction capabilities.
type JournalRepositoryWithTx interface {
	JournalRepositoryFacade
	TransactionManager
}
