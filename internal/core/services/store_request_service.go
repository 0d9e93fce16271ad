package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/mocustoms/railway-ledger/internal/apperrors"
	"github.com/mocustoms/railway-ledger/internal/core/domain"
	portsrepo "github.com/mocustoms/railway-ledger/internal/core/ports/repositories"
	portssvc "github.com/mocustoms/railway-ledger/internal/core/ports/services"
	"github.com/mocustoms/railway-ledger/internal/dto"
	"github.com/mocustoms/railway-ledger/internal/middleware"
)

const defaultStoreRequestPageSize = 20

// validStoreRequestTransitions maps each status to the statuses it may move to.
var validStoreRequestTransitions = map[domain.StoreRequestStatus][]domain.StoreRequestStatus{
	domain.RequestPending:  {domain.RequestApproved, domain.RequestRejected},
	domain.RequestApproved: {domain.RequestFulfilled, domain.RequestRejected},
}

// storeRequestService provides store-to-store stock request operations.
type storeRequestService struct {
	srRepo portsrepo.StoreRequestRepositoryFacade
	fySvc  portssvc.FinancialYearSvcFacade
}

// NewStoreRequestService creates a new store request service.
func NewStoreRequestService(srRepo portsrepo.StoreRequestRepositoryFacade, fySvc portssvc.FinancialYearSvcFacade) portssvc.StoreRequestSvcFacade {
	return &storeRequestService{
		srRepo: srRepo,
		fySvc:  fySvc,
	}
}

var _ portssvc.StoreRequestSvcFacade = (*storeRequestService)(nil)

func (s *storeRequestService) CreateStoreRequest(ctx context.Context, req dto.CreateStoreRequestRequest, creatorUserID string) (*domain.StoreRequest, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.FromStoreID == req.ToStoreID {
		return nil, apperrors.NewValidationError("from and to stores cannot be the same")
	}

	fy, err := s.fySvc.ResolveYear(ctx, req.FinancialYearID)
	if err != nil {
		return nil, fmt.Errorf("financial year: %w", err)
	}
	financialYearID := req.FinancialYearID
	if fy != nil {
		financialYearID = fy.FinancialYearID
	}

	if err := s.fySvc.ValidateDocumentDate(ctx, req.RequestDate, financialYearID); err != nil {
		return nil, err
	}

	now := time.Now()
	sr := domain.StoreRequest{
		StoreRequestID:  uuid.NewString(),
		FromStoreID:     req.FromStoreID,
		ToStoreID:       req.ToStoreID,
		FinancialYearID: financialYearID,
		RequestDate:     req.RequestDate,
		Reference:       req.Reference,
		Notes:           req.Notes,
		Status:          domain.RequestPending,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.srRepo.SaveStoreRequest(ctx, sr); err != nil {
		logger.Error("Failed to save store request", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to create store request: %w", err)
	}

	logger.Info("Store request created", slog.String("store_request_id", sr.StoreRequestID),
		slog.String("from_store", sr.FromStoreID), slog.String("to_store", sr.ToStoreID))
	return &sr, nil
}

func (s *storeRequestService) GetStoreRequestByID(ctx context.Context, storeRequestID string) (*domain.StoreRequest, error) {
	return s.srRepo.FindStoreRequestByID(ctx, storeRequestID)
}

func (s *storeRequestService) ListStoreRequests(ctx context.Context, params dto.ListStoreRequestsParams) (*dto.ListStoreRequestsResponse, error) {
	limit := params.Limit
	if limit <= 0 || limit > 100 {
		limit = defaultStoreRequestPageSize
	}
	requests, next, err := s.srRepo.ListStoreRequests(ctx, limit, params.NextToken)
	if err != nil {
		return nil, err
	}
	return &dto.ListStoreRequestsResponse{
		Requests:  dto.ToStoreRequestResponses(requests),
		NextToken: next,
	}, nil
}

func (s *storeRequestService) UpdateStoreRequestStatus(ctx context.Context, storeRequestID string, req dto.UpdateStoreRequestStatusRequest, updaterUserID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)

	sr, err := s.srRepo.FindStoreRequestByID(ctx, storeRequestID)
	if err != nil {
		return err
	}

	allowed := false
	for _, next := range validStoreRequestTransitions[sr.Status] {
		if next == req.Status {
			allowed = true
			break
		}
	}
	if !allowed {
		return apperrors.NewValidationError(fmt.Sprintf("cannot transition store request from %s to %s", sr.Status, req.Status))
	}

	if err := s.srRepo.UpdateStoreRequestStatus(ctx, storeRequestID, req.Status, updaterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to update store request status: %w", err)
	}

	logger.Info("Store request status updated", slog.String("store_request_id", storeRequestID),
		slog.String("from", string(sr.Status)), slog.String("to", string(req.Status)))
	return nil
}
