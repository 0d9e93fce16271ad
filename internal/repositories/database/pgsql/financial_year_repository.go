package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	"github.com/mocustoms/railway-ledger/internal/models"
	"github.com/mocustoms/railway-ledger/internal/utils/mapping"
)

const financialYearColumns = `financial_year_id, name, start_date, end_date,
	is_current, is_active, is_closed,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxFinancialYearRepository implements the financial year repository using pgxpool.
type PgxFinancialYearRepository struct {
	BaseRepository
}

func newPgxFinancialYearRepository(pool *pgxpool.Pool) portsrepo.FinancialYearRepositoryFacade {
	return &PgxFinancialYearRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.FinancialYearRepositoryFacade = (*PgxFinancialYearRepository)(nil)

func scanFinancialYear(row pgx.Row) (*domain.FinancialYear, error) {
	var m models.FinancialYear
	err := row.Scan(
		&m.FinancialYearID, &m.Name, &m.StartDate, &m.EndDate,
		&m.IsCurrent, &m.IsActive, &m.IsClosed,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	d := mapping.ToDomainFinancialYear(m)
	return &d, nil
}

// SaveFinancialYear inserts or updates a financial year.
func (r *PgxFinancialYearRepository) SaveFinancialYear(ctx context.Context, fy domain.FinancialYear) error {
	m := mapping.ToModelFinancialYear(fy)
	query := `
		INSERT INTO financial_years (` + financialYearColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		ON CONFLICT (financial_year_id) DO UPDATE SET
			name = EXCLUDED.name,
			is_current = EXCLUDED.is_current,
			is_active = EXCLUDED.is_active,
			is_closed = EXCLUDED.is_closed,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.FinancialYearID, m.Name, m.StartDate, m.EndDate,
		m.IsCurrent, m.IsActive, m.IsClosed,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save financial year %s: %w", m.Name, err)
	}
	return nil
}

// ClearCurrentFinancialYear removes the current flag from every year.
func (r *PgxFinancialYearRepository) ClearCurrentFinancialYear(ctx context.Context, updatedBy string) error {
	query := `
		UPDATE financial_years
		SET is_current = FALSE, last_updated_at = NOW(), last_updated_by = $1
		WHERE is_current = TRUE;
	`
	if _, err := r.Pool.Exec(ctx, query, updatedBy); err != nil {
		return fmt.Errorf("failed to clear current financial year: %w", err)
	}
	return nil
}

// FindFinancialYearByID retrieves a financial year by its ID.
func (r *PgxFinancialYearRepository) FindFinancialYearByID(ctx context.Context, financialYearID string) (*domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE financial_year_id = $1;`
	fy, err := scanFinancialYear(r.Pool.QueryRow(ctx, query, financialYearID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find financial year by id %s: %w", financialYearID, err)
	}
	return fy, nil
}

// FindCurrentFinancialYear retrieves the year flagged current and active.
func (r *PgxFinancialYearRepository) FindCurrentFinancialYear(ctx context.Context) (*domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years WHERE is_current = TRUE AND is_active = TRUE LIMIT 1;`
	fy, err := scanFinancialYear(r.Pool.QueryRow(ctx, query))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find current financial year: %w", err)
	}
	return fy, nil
}

// ListFinancialYears retrieves all financial years ordered by start date.
func (r *PgxFinancialYearRepository) ListFinancialYears(ctx context.Context, activeOnly bool) ([]domain.FinancialYear, error) {
	query := `SELECT ` + financialYearColumns + ` FROM financial_years`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY start_date DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list financial years: %w", err)
	}
	defer rows.Close()

	var out []domain.FinancialYear
	for rows.Next() {
		var m models.FinancialYear
		if err := rows.Scan(
			&m.FinancialYearID, &m.Name, &m.StartDate, &m.EndDate,
			&m.IsCurrent, &m.IsActive, &m.IsClosed,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan financial year row: %w", err)
		}
		out = append(out, mapping.ToDomainFinancialYear(m))
	}
	return out, rows.Err()
}
