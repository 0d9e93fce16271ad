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

const storeRequestColumns = `store_request_id, from_store_id, to_store_id, financial_year_id,
	request_date, reference, notes, status,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxStoreRequestRepository implements the store request repository using pgxpool.
type PgxStoreRequestRepository struct {
	BaseRepository
}

func newPgxStoreRequestRepository(pool *pgxpool.Pool) portsrepo.StoreRequestRepositoryFacade {
	return &PgxStoreRequestRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.StoreRequestRepositoryFacade = (*PgxStoreRequestRepository)(nil)

func scanStoreRequestModel(row pgx.Row) (models.StoreRequest, error) {
	var m models.StoreRequest
	err := row.Scan(
		&m.StoreRequestID, &m.FromStoreID, &m.ToStoreID, &m.FinancialYearID,
		&m.RequestDate, &m.Reference, &m.Notes, &m.Status,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// SaveStoreRequest persists a new store request.
func (r *PgxStoreRequestRepository) SaveStoreRequest(ctx context.Context, req domain.StoreRequest) error {
	m := mapping.ToModelStoreRequest(req)
	query := `
		INSERT INTO store_requests (` + storeRequestColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.StoreRequestID, m.FromStoreID, m.ToStoreID, m.FinancialYearID,
		m.RequestDate, m.Reference, m.Notes, m.Status,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save store request %s: %w", m.StoreRequestID, err)
	}
	return nil
}

// UpdateStoreRequestStatus transitions a request's status.
func (r *PgxStoreRequestRepository) UpdateStoreRequestStatus(ctx context.Context, storeRequestID string, status domain.StoreRequestStatus, updatedBy string, updatedAt time.Time) error {
	query := `
		UPDATE store_requests
		SET status = $1, last_updated_at = $2, last_updated_by = $3
		WHERE store_request_id = $4;
	`
	tag, err := r.Pool.Exec(ctx, query, string(status), updatedAt, updatedBy, storeRequestID)
	if err != nil {
		return fmt.Errorf("failed to update store request status %s: %w", storeRequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindStoreRequestByID retrieves a store request by its ID.
func (r *PgxStoreRequestRepository) FindStoreRequestByID(ctx context.Context, storeRequestID string) (*domain.StoreRequest, error) {
	query := `SELECT ` + storeRequestColumns + ` FROM store_requests WHERE store_request_id = $1;`
	m, err := scanStoreRequestModel(r.Pool.QueryRow(ctx, query, storeRequestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find store request by id %s: %w", storeRequestID, err)
	}
	d := mapping.ToDomainStoreRequest(m)
	return &d, nil
}

// ListStoreRequests retrieves requests newest-first using token pagination.
func (r *PgxStoreRequestRepository) ListStoreRequests(ctx context.Context, limit int, nextToken *string) ([]domain.StoreRequest, *string, error) {
	query := `SELECT ` + storeRequestColumns + ` FROM store_requests`
	args := []interface{}{}

	if nextToken != nil && *nextToken != "" {
		createdAt, id, err := pagination.DecodeCursor(*nextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError("invalid pagination token")
		}
		query += ` WHERE (created_at, store_request_id) < ($1, $2)`
		args = append(args, createdAt, id)
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC, store_request_id DESC LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list store requests: %w", err)
	}
	defer rows.Close()

	var requests []domain.StoreRequest
	for rows.Next() {
		m, err := scanStoreRequestModel(rows)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to scan store request row: %w", err)
		}
		requests = append(requests, mapping.ToDomainStoreRequest(m))
	}
	if err := rows.Err(); err != nil {
		return nil, nil, err
	}

	var next *string
	if len(requests) > limit {
		requests = requests[:limit]
		last := requests[len(requests)-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.StoreRequestID)
		next = &token
	}
	return requests, next, nil
}
