package repositories

import (
	"context"
	"time"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// StoreRequestReader defines read operations for store-to-store requests.
type StoreRequestReader interface {
	// FindStoreRequestByID retrieves a store request by its ID.
	FindStoreRequestByID(ctx context.Context, storeRequestID string) (*domain.StoreRequest, error)

	// ListStoreRequests retrieves requests newest-first using token pagination.
	ListStoreRequests(ctx context.Context, limit int, nextToken *string) ([]domain.StoreRequest, *string, error)
}

// StoreRequestWriter defines write operations for store-to-store requests.
type StoreRequestWriter interface {
	// SaveStoreRequest persists a new store request.
	SaveStoreRequest(ctx context.Context, req domain.StoreRequest) error

	// UpdateStoreRequestStatus transitions a request's status.
	UpdateStoreRequestStatus(ctx context.Context, storeRequestID string, status domain.StoreRequestStatus, updatedBy string, updatedAt time.Time) error
}

// StoreRequestRepositoryFacade combines all store request repository interfaces.
type StoreRequestRepositoryFacade interface {
	StoreRequestReader
	StoreRequestWriter
}
