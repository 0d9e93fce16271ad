package domain

// Currency represents a supported currency. Exactly one active currency is
// expected to be flagged as the default; it is the base currency that all
// equivalent amounts are expressed in.
type Currency struct {
	CurrencyID string `json:"currencyID"` // Primary Key (UUID)
	Code       string `json:"code"`       // e.g. "USD"
	Name       string `json:"name"`       // e.g. "US Dollar"
	Symbol     string `json:"symbol"`     // e.g. "$"
	IsDefault  bool   `json:"isDefault"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
