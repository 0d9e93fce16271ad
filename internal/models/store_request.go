package models

import "time"

// StoreRequest is the persistence model for the store_requests table.
type StoreRequest struct {
	StoreRequestID  string    `json:"storeRequestID"`
	FromStoreID     string    `json:"fromStoreID"`
	ToStoreID       string    `json:"toStoreID"`
	FinancialYearID string    `json:"financialYearID"`
	RequestDate     time.Time `json:"requestDate"`
	Reference       string    `json:"reference"`
	Notes           string    `json:"notes"`
	Status          string    `json:"status"`
	AuditFields
}

// UserPreference is the persistence model for the user_preferences table.
type UserPreference struct {
	UserID string `json:"userID"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	AuditFields
}
