package dto

import (
	"time"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CreateStoreRequestRequest defines the payload for creating a store request.
type CreateStoreRequestRequest struct {
	FromStoreID     string    `json:"fromStoreID" binding:"required"`
	ToStoreID       string    `json:"toStoreID" binding:"required,nefield=FromStoreID"`
	FinancialYearID string    `json:"financialYearID"`
	RequestDate     time.Time `json:"requestDate" binding:"required"`
	Reference       string    `json:"reference" binding:"max=50"`
	Notes           string    `json:"notes" binding:"max=255"`
}

// UpdateStoreRequestStatusRequest transitions a request's status.
type UpdateStoreRequestStatusRequest struct {
	Status domain.StoreRequestStatus `json:"status" binding:"required,oneof=PENDING APPROVED REJECTED FULFILLED"`
}

// ListStoreRequestsParams carries pagination parameters for request listing.
type ListStoreRequestsParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// StoreRequestResponse defines the API representation of a store request.
type StoreRequestResponse struct {
	StoreRequestID  string                    `json:"storeRequestID"`
	FromStoreID     string                    `json:"fromStoreID"`
	ToStoreID       string                    `json:"toStoreID"`
	FinancialYearID string                    `json:"financialYearID"`
	RequestDate     time.Time                 `json:"requestDate"`
	Reference       string                    `json:"reference,omitempty"`
	Notes           string                    `json:"notes,omitempty"`
	Status          domain.StoreRequestStatus `json:"status"`
}

// ListStoreRequestsResponse is a page of store requests.
type ListStoreRequestsResponse struct {
	Requests  []StoreRequestResponse `json:"requests"`
	NextToken *string                `json:"nextToken,omitempty"`
}

// ToStoreRequestResponse converts a domain.StoreRequest to its API representation.
func ToStoreRequestResponse(r *domain.StoreRequest) StoreRequestResponse {
	return StoreRequestResponse{
		StoreRequestID:  r.StoreRequestID,
		FromStoreID:     r.FromStoreID,
		ToStoreID:       r.ToStoreID,
		FinancialYearID: r.FinancialYearID,
		RequestDate:     r.RequestDate,
		Reference:       r.Reference,
		Notes:           r.Notes,
		Status:          r.Status,
	}
}

// ToStoreRequestResponses converts a slice of store requests.
func ToStoreRequestResponses(reqs []domain.StoreRequest) []StoreRequestResponse {
	out := make([]StoreRequestResponse, len(reqs))
	for i := range reqs {
		out[i] = ToStoreRequestResponse(&reqs[i])
	}
	return out
}
