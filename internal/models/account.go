package models

// Account is the persistence model for the accounts table.
type Account struct {
	AccountID       string  `json:"accountID"`
	Code            string  `json:"code"`
	Name            string  `json:"name"`
	AccountType     string  `json:"accountType"`
	CurrencyID      string  `json:"currencyID"`
	ParentAccountID *string `json:"parentAccountID"` // Nullable column
	Description     string  `json:"description"`
	IsActive        bool    `json:"isActive"`
	AuditFields
}
