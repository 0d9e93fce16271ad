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

const preferenceColumns = `user_id, key, value,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxPreferenceRepository implements the user preferences store using pgxpool.
type PgxPreferenceRepository struct {
	BaseRepository
}

func newPgxPreferenceRepository(pool *pgxpool.Pool) portsrepo.PreferenceRepositoryFacade {
	return &PgxPreferenceRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PreferenceRepositoryFacade = (*PgxPreferenceRepository)(nil)

func scanPreferenceModel(row pgx.Row) (models.UserPreference, error) {
	var m models.UserPreference
	err := row.Scan(
		&m.UserID, &m.Key, &m.Value,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SavePreference upserts a preference value.
func (r *PgxPreferenceRepository) SavePreference(ctx context.Context, pref domain.UserPreference) error {
	m := mapping.ToModelPreference(pref)
	query := `
		INSERT INTO user_preferences (` + preferenceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (user_id, key) DO UPDATE SET
			value = EXCLUDED.value,
			last_updated_at = EXCLUDED.last_updated_at,
			last_updated_by = EXCLUDED.last_updated_by;
	`
	_, err := r.Pool.Exec(ctx, query,
		m.UserID, m.Key, m.Value,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save preference %s/%s: %w", m.UserID, m.Key, err)
	}
	return nil
}

// DeletePreference removes a preference.
func (r *PgxPreferenceRepository) DeletePreference(ctx context.Context, userID, key string) error {
	tag, err := r.Pool.Exec(ctx, `DELETE FROM user_preferences WHERE user_id = $1 AND key = $2;`, userID, key)
	if err != nil {
		return fmt.Errorf("failed to delete preference %s/%s: %w", userID, key, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPreference retrieves a single preference by user and key.
func (r *PgxPreferenceRepository) FindPreference(ctx context.Context, userID, key string) (*domain.UserPreference, error) {
	query := `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = $1 AND key = $2;`
	m, err := scanPreferenceModel(r.Pool.QueryRow(ctx, query, userID, key))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find preference %s/%s: %w", userID, key, err)
	}
	d := mapping.ToDomainPreference(m)
	return &d, nil
}

// ListPreferences retrieves all preferences of a user.
func (r *PgxPreferenceRepository) ListPreferences(ctx context.Context, userID string) ([]domain.UserPreference, error) {
	query := `SELECT ` + preferenceColumns + ` FROM user_preferences WHERE user_id = $1 ORDER BY key ASC;`
	rows, err := r.Pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list preferences for user %s: %w", userID, err)
	}
	defer rows.Close()

	var out []domain.UserPreference
	for rows.Next() {
		m, err := scanPreferenceModel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan preference row: %w", err)
		}
		out = append(out, mapping.ToDomainPreference(m))
	}
	return out, rows.Err()
}
