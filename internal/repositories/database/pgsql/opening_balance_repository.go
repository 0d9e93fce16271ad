package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	"github.com/mocustoms/railway-ledger/internal/models"
	"github.com/mocustoms/railway-ledger/internal/utils/mapping"
)

const openingBalanceColumns = `opening_balance_id, account_id, financial_year_id,
	balance_date, line_type, amount, notes,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxOpeningBalanceRepository implements the opening balance repository using pgxpool.
type PgxOpeningBalanceRepository struct {
	BaseRepository
}

func newPgxOpeningBalanceRepository(pool *pgxpool.Pool) portsrepo.OpeningBalanceRepositoryFacade {
	return &PgxOpeningBalanceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.OpeningBalanceRepositoryFacade = (*PgxOpeningBalanceRepository)(nil)

func scanOpeningBalanceModel(row pgx.Row) (models.OpeningBalance, error) {
	var m models.OpeningBalance
	err := row.Scan(
		&m.OpeningBalanceID, &m.AccountID, &m.FinancialYearID,
		&m.BalanceDate, &m.LineType, &m.Amount, &m.Notes,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveOpeningBalance persists a new opening balance. The unique index on
// (account_id, financial_year_id) is the last line of defence against a
// duplicate slipping past the service-level guard.
func (r *PgxOpeningBalanceRepository) SaveOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	m := mapping.ToModelOpeningBalance(ob)
	query := `
		INSERT INTO opening_balances (` + openingBalanceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.OpeningBalanceID, m.AccountID, m.FinancialYearID,
		m.BalanceDate, m.LineType, m.Amount, m.Notes,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return apperrors.ErrDuplicate
		}
		return fmt.Errorf("failed to save opening balance %s: %w", m.OpeningBalanceID, err)
	}
	return nil
}

// UpdateOpeningBalance persists changes to an existing opening balance.
func (r *PgxOpeningBalanceRepository) UpdateOpeningBalance(ctx context.Context, ob domain.OpeningBalance) error {
	m := mapping.ToModelOpeningBalance(ob)
	query := `
		UPDATE opening_balances
		SET balance_date = $1, line_type = $2, amount = $3, notes = $4,
			last_updated_at = $5, last_updated_by = $6
		WHERE opening_balance_id = $7;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.BalanceDate, m.LineType, m.Amount, m.Notes,
		m.LastUpdatedAt, m.LastUpdatedBy, m.OpeningBalanceID,
	)
	if err != nil {
		return fmt.Errorf("failed to update opening balance %s: %w", m.OpeningBalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// DeleteOpeningBalance removes an opening balance.
func (r *PgxOpeningBalanceRepository) DeleteOpeningBalance(ctx context.Context, openingBalanceID string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM opening_balances WHERE opening_balance_id = $1;`, openingBalanceID)
	if err != nil {
		return fmt.Errorf("failed to delete opening balance %s: %w", openingBalanceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindOpeningBalanceByID retrieves an opening balance by its ID.
func (r *PgxOpeningBalanceRepository) FindOpeningBalanceByID(ctx context.Context, openingBalanceID string) (*domain.OpeningBalance, error) {
	query := `SELECT ` + openingBalanceColumns + ` FROM opening_balances WHERE opening_balance_id = $1;`
	m, err := scanOpeningBalanceModel(r.Pool.QueryRow(ctx, query, openingBalanceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find opening balance by id %s: %w", openingBalanceID, err)
	}
	d := mapping.ToDomainOpeningBalance(m)
	return &d, nil
}

// ExistsForAccountAndYear reports whether an opening balance already exists
// for the (account, financial year) pair.
func (r *PgxOpeningBalanceRepository) ExistsForAccountAndYear(ctx context.Context, accountID, financialYearID string) (bool, error) {
	var exists bool
	err := r.Pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM opening_balances WHERE account_id = $1 AND financial_year_id = $2);`,
		accountID, financialYearID,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check opening balance existence: %w", err)
	}
	return exists, nil
}

// ListOpeningBalancesByYear retrieves the opening balances of a financial year.
func (r *PgxOpeningBalanceRepository) ListOpeningBalancesByYear(ctx context.Context, financialYearID string) ([]domain.OpeningBalance, error) {
	query := `SELECT ` + openingBalanceColumns + ` FROM opening_balances WHERE financial_year_id = $1 ORDER BY created_at DESC;`
	rows, err := r.Pool.Query(ctx, query, financialYearID)
	if err != nil {
		return nil, fmt.Errorf("failed to list opening balances for year %s: %w", financialYearID, err)
	}
	defer rows.Close()

	var out []domain.OpeningBalance
	for rows.Next() {
		m, err := scanOpeningBalanceModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan opening balance row: %w", err)
		}
		out = append(out, mapping.ToDomainOpeningBalance(m))
	}
	return out, rows.Err()
}
