package models

import "time"

// FinancialYear is the persistence model for the financial_years table.
type FinancialYear struct {
	FinancialYearID string    `json:"financialYearID"`
	Name            string    `json:"name"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	IsCurrent       bool      `json:"isCurrent"`
	IsActive        bool      `json:"isActive"`
	IsClosed        bool      `json:"isClosed"`
	AuditFields
}
