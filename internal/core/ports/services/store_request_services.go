package services

import (
	"context"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
	"github.com/mocustoms/railway-ledger/internal/dto"
)

// StoreRequestSvcFacade defines the operations of the store request service.
type StoreRequestSvcFacade interface {
	CreateStoreRequest(ctx context.Context, req dto.CreateStoreRequestRequest, creatorUserID string) (*domain.StoreRequest, error)
	GetStoreRequestByID(ctx context.Context, storeRequestID string) (*domain.StoreRequest, error)
	ListStoreRequests(ctx context.Context, params dto.ListStoreRequestsParams) (*dto.ListStoreRequestsResponse, error)
	UpdateStoreRequestStatus(ctx context.Context, storeRequestID string, req dto.UpdateStoreRequestStatusRequest, updaterUserID string) error
}
