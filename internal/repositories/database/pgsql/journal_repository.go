package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	"github.com/mocustoms/railway-ledger/internal/models"
	"github.com/mocustoms/railway-ledger/internal/utils/mapping"
	"github.com/mocustoms/railway-ledger/internal/utils/pagination"
)

const journalEntryColumns = `journal_entry_id, entry_date, financial_year_id, currency_id,
	reference, description, status, total_debit, total_credit,
	created_at, created_by, last_updated_at, last_updated_by`

const journalLineColumns = `journal_line_id, journal_entry_id, account_id, line_type,
	amount, description,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxJournalRepository implements the journal repository using pgxpool.
type PgxJournalRepository struct {
	BaseRepository
}

func newPgxJournalRepository(pool *pgxpool.Pool) portsrepo.JournalRepositoryWithTx {
	return &PgxJournalRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JournalRepositoryWithTx = (*PgxJournalRepository)(nil)

func scanJournalEntryModel(row pgx.Row) (models.JournalEntry, error) {
	var m models.JournalEntry
	err := row.Scan(
		&m.JournalEntryID, &m.EntryDate, &m.FinancialYearID, &m.CurrencyID,
		&m.Reference, &m.Description, &m.Status, &m.TotalDebit, &m.TotalCredit,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveJournalEntry persists an entry header and its lines in one transaction.
// Balance and structure checks happen in the service layer before this is
// called; the repository only guarantees atomicity.
func (r *PgxJournalRepository) SaveJournalEntry(ctx context.Context, entry domain.JournalEntry, lines []domain.JournalLine) error {
	em := mapping.ToModelJournalEntry(entry)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO journal_entries (`+journalEntryColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)`,
		em.JournalEntryID, em.EntryDate, em.FinancialYearID, em.CurrencyID,
		em.Reference, em.Description, em.Status, em.TotalDebit, em.TotalCredit,
		em.CreatedAt, em.CreatedBy, em.LastUpdatedAt, em.LastUpdatedBy,
	)
	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save journal entry", err)
	}

	for _, line := range lines {
		lm := mapping.ToModelJournalLine(line)
		_, err = tx.Exec(ctx, `
			INSERT INTO journal_lines (`+journalLineColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			lm.JournalLineID, em.JournalEntryID, lm.AccountID, lm.LineType,
			lm.Amount, lm.Description,
			lm.CreatedAt, lm.CreatedBy, lm.LastUpdatedAt, lm.LastUpdatedBy,
		)
		if err != nil {
			_ = r.Rollback(ctx, tx)
			return apperrors.NewAppError(500, "failed to save journal line", err)
		}
	}

	return r.Commit(ctx, tx)
}

// UpdateJournalEntry persists header changes to an existing entry.
func (r *PgxJournalRepository) UpdateJournalEntry(ctx context.Context, entry domain.JournalEntry) error {
	m := mapping.ToModelJournalEntry(entry)
	query := `
		UPDATE journal_entries
		SET entry_date = $1, financial_year_id = $2, currency_id = $3,
			reference = $4, description = $5, status = $6,
			total_debit = $7, total_credit = $8,
			last_updated_at = $9, last_updated_by = $10
		WHERE journal_entry_id = $11;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.EntryDate, m.FinancialYearID, m.CurrencyID,
		m.Reference, m.Description, m.Status,
		m.TotalDebit, m.TotalCredit,
		m.LastUpdatedAt, m.LastUpdatedBy, m.JournalEntryID,
	)
	if err != nil {
		return fmt.Errorf("failed to update journal entry %s: %w", m.JournalEntryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// UpdateJournalEntryStatus transitions an entry's lifecycle status.
func (r *PgxJournalRepository) UpdateJournalEntryStatus(ctx context.Context, entryID string, status domain.DocumentStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE journal_entries
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE journal_entry_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), updatedAt, updatedBy, entryID)
	if err != nil {
		return fmt.Errorf("failed to update journal entry status %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindJournalEntryByID retrieves an entry header without lines.
func (r *PgxJournalRepository) FindJournalEntryByID(ctx context.Context, entryID string) (*domain.JournalEntry, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries WHERE journal_entry_id = $1;`
	m, err := scanJournalEntryModel(r.Pool.QueryRow(ctx, query, entryID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find journal entry by id %s: %w", entryID, err)
	}
	d := mapping.ToDomainJournalEntry(m)
	return &d, nil
}

// FindLinesByEntryID retrieves the lines of a journal entry.
func (r *PgxJournalRepository) FindLinesByEntryID(ctx context.Context, entryID string) ([]domain.JournalLine, error) {
	query := `SELECT ` + journalLineColumns + ` FROM journal_lines WHERE journal_entry_id = $1 ORDER BY created_at ASC, journal_line_id ASC;`
	rows, err := r.Pool.Query(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to find lines for entry %s: %w", entryID, err)
	}
	defer rows.Close()

	var out []domain.JournalLine
	for rows.Next() {
		var m models.JournalLine
		if err := rows.Scan(
			&m.JournalLineID, &m.JournalEntryID, &m.AccountID, &m.LineType,
			&m.Amount, &m.Description,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan journal line row: %w", err)
		}
		out = append(out, mapping.ToDomainJournalLine(m))
	}
	return out, rows.Err()
}

// ListJournalEntries retrieves entries newest-first using token pagination.
// The cursor pins (created_at, journal_entry_id) of the last row returned.
func (r *PgxJournalRepository) ListJournalEntries(ctx context.Context, limit int, nextToken *string) ([]domain.JournalEntry, *string, error) {
	query := `SELECT ` + journalEntryColumns + ` FROM journal_entries`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += ` WHERE (created_at, journal_entry_id) < ($1, $2)`
		args = append(args, createdAt, id)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, journal_entry_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list journal entries: %w", err)
	}
	defer rows.Close()

	var entries []domain.JournalEntry
	for rows.Next() {
		m, err := scanJournalEntryModel(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan journal entry row: %w", err)
		}
		entries = append(entries, mapping.ToDomainJournalEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var next *string
	if len(entries) > limit {
		entries = entries[:limit]
		last := entries[len(entries)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.JournalEntryID)
		next = &token
	}
	return entries, next, nil
}
