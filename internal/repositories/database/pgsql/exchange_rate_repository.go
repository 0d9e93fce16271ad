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

const exchangeRateColumns = `exchange_rate_id, from_currency_id, to_currency_id, rate,
	date_effective, is_active,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxExchangeRateRepository implements the exchange rate repository using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

func scanExchangeRate(row pgx.Row) (*domain.ExchangeRate, error) {
	var m models.ExchangeRate
	err := row.Scan(
		&m.ExchangeRateID, &m.FromCurrencyID, &m.ToCurrencyID, &m.Rate,
		&m.DateEffective, &m.IsActive,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	d := mapping.ToDomainExchangeRate(m)
	return &d, nil
}

// SaveExchangeRate inserts a rate, or updates the rate value when an active
// rate for the same pair already exists. Only one active rate per directed
// pair is kept.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate domain.ExchangeRate) error {
	if rate.FromCurrencyID == rate.ToCurrencyID {
		return apperrors.NewValidationError("from and to currencies cannot be the same")
	}
	m := mapping.ToModelExchangeRate(rate)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}

	var existingID string
	err = tx.QueryRow(ctx,
		`SELECT exchange_rate_id FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2 AND is_active = TRUE`,
		m.FromCurrencyID, m.ToCurrencyID,
	).Scan(&existingID)

	if err == nil && existingID != "" {
		_, err = tx.Exec(ctx, `
			UPDATE exchange_rates
			SET rate = $1, date_effective = $2, last_updated_at = $3, last_updated_by = $4
			WHERE exchange_rate_id = $5`,
			m.Rate, m.DateEffective, m.LastUpdatedAt, m.LastUpdatedBy, existingID,
		)
	} else if errors.Is(err, pgx.ErrNoRows) {
		_, err = tx.Exec(ctx, `
			INSERT INTO exchange_rates (`+exchangeRateColumns+`)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			m.ExchangeRateID, m.FromCurrencyID, m.ToCurrencyID, m.Rate,
			m.DateEffective, m.IsActive,
			m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
		)
	}

	if err != nil {
		_ = r.Rollback(ctx, tx)
		return apperrors.NewAppError(500, "failed to save exchange rate", err)
	}
	return r.Commit(ctx, tx)
}

// DeactivateExchangeRate soft-deletes a rate.
func (r *PgxExchangeRateRepository) DeactivateExchangeRate(ctx context.Context, rateID string, updatedBy string) error {
	query := `
		UPDATE exchange_rates
		SET is_active = FALSE, last_updated_at = NOW(), last_updated_by = $1
		WHERE exchange_rate_id = $2;
	`
	tag, err := r.Pool.Exec(ctx, query, updatedBy, rateID)
	if err != nil {
		return fmt.Errorf("failed to deactivate exchange rate %s: %w", rateID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindExchangeRateByID retrieves an exchange rate by its ID.
func (r *PgxExchangeRateRepository) FindExchangeRateByID(ctx context.Context, rateID string) (*domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE exchange_rate_id = $1;`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, rateID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find exchange rate by id %s: %w", rateID, err)
	}
	return rate, nil
}

// FindExchangeRate retrieves the active rate for an exact currency pair.
// No inverse or multi-hop resolution happens here.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, fromCurrencyID, toCurrencyID string) (*domain.ExchangeRate, error) {
	query := `
		SELECT ` + exchangeRateColumns + `
		FROM exchange_rates
		WHERE from_currency_id = $1 AND to_currency_id = $2 AND is_active = TRUE
		ORDER BY date_effective DESC
		LIMIT 1;
	`
	rate, err := scanExchangeRate(r.Pool.QueryRow(ctx, query, fromCurrencyID, toCurrencyID))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to find exchange rate %s->%s: %w", fromCurrencyID, toCurrencyID, err)
	}
	return rate, nil
}

// ListActiveExchangeRates retrieves all currently active rates.
func (r *PgxExchangeRateRepository) ListActiveExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `SELECT ` + exchangeRateColumns + ` FROM exchange_rates WHERE is_active = TRUE ORDER BY date_effective DESC;`

	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active exchange rates: %w", err)
	}
	defer rows.Close()

	var out []domain.ExchangeRate
	for rows.Next() {
		var m models.ExchangeRate
		if err := rows.Scan(
			&m.ExchangeRateID, &m.FromCurrencyID, &m.ToCurrencyID, &m.Rate,
			&m.DateEffective, &m.IsActive,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan exchange rate row: %w", err)
		}
		out = append(out, mapping.ToDomainExchangeRate(m))
	}
	return out, rows.Err()
}
