package domain

import "time"

// StoreRequestStatus tracks a store-to-store stock request through its flow.
type StoreRequestStatus string

const (
	RequestPending   StoreRequestStatus = "PENDING"
	RequestApproved  StoreRequestStatus = "APPROVED"
	RequestRejected  StoreRequestStatus = "REJECTED"
	RequestFulfilled StoreRequestStatus = "FULFILLED"
)

// StoreRequest is a stock transfer request between two stores. Its request
// date is bound to the selected financial year window like any other document.
type StoreRequest struct {
	StoreRequestID  string             `json:"storeRequestID"` // Primary Key (UUID)
	FromStoreID     string             `json:"fromStoreID"`
	ToStoreID       string             `json:"toStoreID"`
	FinancialYearID string             `json:"financialYearID"` // FK -> FinancialYear
	RequestDate     time.Time          `json:"requestDate"`
	Reference       string             `json:"reference"`
	Notes           string             `json:"notes"`
	Status          StoreRequestStatus `json:"status"`
	AuditFields
}
