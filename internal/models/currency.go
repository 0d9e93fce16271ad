package models

// Currency is the persistence model for the currencies table.
type Currency struct {
	CurrencyID string `json:"currencyID"`
	Code       string `json:"code"`
	Name       string `json:"name"`
	Symbol     string `json:"symbol"`
	IsDefault  bool   `json:"isDefault"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
