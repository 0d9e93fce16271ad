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
	"github.com/mocustoms/railway-ledger/internal/utils/pagination"
)

const depositColumns = `deposit_id, customer_id, account_id, financial_year_id, currency_id,
	exchange_rate_id, exchange_rate, original_amount, equivalent_amount,
	deposit_date, reference, notes, status,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxDepositRepository implements the customer deposit repository using pgxpool.
type PgxDepositRepository struct {
	BaseRepository
}

func newPgxDepositRepository(pool *pgxpool.Pool) portsrepo.DepositRepositoryFacade {
	return &PgxDepositRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.DepositRepositoryFacade = (*PgxDepositRepository)(nil)

func scanDepositModel(row pgx.Row) (models.CustomerDeposit, error) {
	var m models.CustomerDeposit
	err := row.Scan(
		&m.DepositID, &m.CustomerID, &m.AccountID, &m.FinancialYearID, &m.CurrencyID,
		&m.ExchangeRateID, &m.ExchangeRate, &m.OriginalAmount, &m.EquivalentAmount,
		&m.DepositDate, &m.Reference, &m.Notes, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveDeposit persists a new deposit.
func (r *PgxDepositRepository) SaveDeposit(ctx context.Context, deposit domain.CustomerDeposit) error {
	m := mapping.ToModelDeposit(deposit)
	query := `
		INSERT INTO customer_deposits (` + depositColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.DepositID, m.CustomerID, m.AccountID, m.FinancialYearID, m.CurrencyID,
		m.ExchangeRateID, m.ExchangeRate, m.OriginalAmount, m.EquivalentAmount,
		m.DepositDate, m.Reference, m.Notes, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save deposit %s: %w", m.DepositID, err)
	}
	return nil
}

// UpdateDeposit persists changes to an existing deposit.
func (r *PgxDepositRepository) UpdateDeposit(ctx context.Context, deposit domain.CustomerDeposit) error {
	m := mapping.ToModelDeposit(deposit)
	query := `
		UPDATE customer_deposits
		SET customer_id = $1, account_id = $2, financial_year_id = $3, currency_id = $4,
			exchange_rate_id = $5, exchange_rate = $6, original_amount = $7, equivalent_amount = $8,
			deposit_date = $9, reference = $10, notes = $11, status = $12,
			last_updated_at = $13, last_updated_by = $14
		WHERE deposit_id = $15;
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.CustomerID, m.AccountID, m.FinancialYearID, m.CurrencyID,
		m.ExchangeRateID, m.ExchangeRate, m.OriginalAmount, m.EquivalentAmount,
		m.DepositDate, m.Reference, m.Notes, m.Status,
		m.LastUpdatedAt, m.LastUpdatedBy, m.DepositID,
	)
	if err != nil {
		return fmt.Errorf("failed to update deposit %s: %w", m.DepositID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindDepositByID retrieves a deposit by its ID.
func (r *PgxDepositRepository) FindDepositByID(ctx context.Context, depositID string) (*domain.CustomerDeposit, error) {
	query := `SELECT ` + depositColumns + ` FROM customer_deposits WHERE deposit_id = $1;`
	m, err := scanDepositModel(r.Pool.QueryRow(ctx, query, depositID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find deposit by id %s: %w", depositID, err)
	}
	d := mapping.ToDomainDeposit(m)
	return &d, nil
}

// ListDeposits retrieves deposits newest-first using token pagination.
func (r *PgxDepositRepository) ListDeposits(ctx context.Context, limit int, nextToken *string) ([]domain.CustomerDeposit, *string, error) {
	query := `SELECT ` + depositColumns + ` FROM customer_deposits`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += ` WHERE (created_at, deposit_id) < ($1, $2)`
		args = append(args, createdAt, id)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, deposit_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []domain.CustomerDeposit
	for rows.Next() {
		m, err := scanDepositModel(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan deposit row: %w", err)
		}
		deposits = append(deposits, mapping.ToDomainDeposit(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var next *string
	if len(deposits) > limit {
		deposits = deposits[:limit]
		last := deposits[len(deposits)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.DepositID)
		next = &token
	}
	return deposits, next, nil
}
