package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// DocumentStatus indicates the lifecycle state of a financial document.
type DocumentStatus string

const (
	Draft     DocumentStatus = "DRAFT"
	Posted    DocumentStatus = "POSTED"
	Cancelled DocumentStatus = "CANCELLED"
)
