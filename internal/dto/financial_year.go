package dto

import (
	"time"

	"github.com/mocustoms/railway-ledger/internal/core/domain"
)

// CreateFinancialYearRequest defines the payload for creating a financial year.
type CreateFinancialYearRequest struct {
	Name      string    `json:"name" binding:"required,max=50"`
	StartDate time.Time `json:"startDate" binding:"required"`
	EndDate   time.Time `json:"endDate" binding:"required"`
	IsCurrent bool      `json:"isCurrent"`
}

// UpdateFinancialYearRequest defines the payload for updating a financial year.
// The window itself is immutable once documents reference it; only flags and
// the display name may change.
type UpdateFinancialYearRequest struct {
	Name      *string `json:"name" binding:"omitempty,max=50"`
	IsCurrent *bool   `json:"isCurrent"`
	IsActive  *bool   `json:"isActive"`
	IsClosed  *bool   `json:"isClosed"`
}

// FinancialYearResponse defines the API representation of a financial year.
type FinancialYearResponse struct {
	FinancialYearID string    `json:"financialYearID"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsCurrent       bool      `json:"isCurrent"`
	IsActive        bool      `json:"isActive"`
	IsClosed        bool      `json:"isClosed"`
}

// ToFinancialYearResponse converts a domain.FinancialYear to its API representation.
func ToFinancialYearResponse(fy *domain.FinancialYear) FinancialYearResponse {
	return FinancialYearResponse{
		FinancialYearID: fy.FinancialYearID,
		Name:            fy.Name,
		StartDate:       fy.StartDate,
		EndDate:         fy.EndDate,
		IsCurrent:       fy.IsCurrent,
		IsActive:        fy.IsActive,
		IsClosed:        fy.IsClosed,
	}
}

// ToFinancialYearResponses converts a slice of financial years.
func ToFinancialYearResponses(years []domain.FinancialYear) []FinancialYearResponse {
	out := make([]FinancialYearResponse, len(years))
	for i := range years {
		out[i] = ToFinancialYearResponse(&years[i])
	}
	return out
}
