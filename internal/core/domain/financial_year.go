package domain

import "time"

// FinancialYear is an accounting period window that bounds valid document
// dates. The window is immutable once documents reference it; at most one
// active year is flagged as current at a time.
type FinancialYear struct {
	FinancialYearID string    `json:"financialYearID"` // Primary Key (UUID)
	Name            string    `json:"name"`            // e.g. "FY2026"
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsCurrent       bool      `json:"isCurrent"`
	IsActive        bool      `json:"isActive"`
	IsClosed        bool      `json:"isClosed"`
	AuditFields
}

// Contains reports whether d falls within the year's [StartDate, EndDate]
// window. StartDate and EndDate are stored at day granularity, so d is
// compared by its calendar date: a timestamp anywhere on the end date still
// belongs to the year.
func (fy FinancialYear) Contains(d time.Time) bool {
	day := time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(fy.StartDate) && !day.After(fy.EndDate)
}
