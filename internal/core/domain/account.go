package domain

// AccountType defines the fundamental accounting type of an account.
type AccountType string

const (
	Asset     AccountType = "ASSET"
	Liability AccountType = "LIABILITY"
	Equity    AccountType = "EQUITY"
	Income    AccountType = "INCOME"
	Expense   AccountType = "EXPENSE"
)

// Account is a node in the chart of accounts.
type Account struct {
	AccountID       string      `json:"accountID"` // Primary Key (UUID)
	Code            string      `json:"code"`      // User-visible account code
	Name            string      `json:"name"`
	AccountType     AccountType `json:"accountType"`
	CurrencyID      string      `json:"currencyID"`      // FK -> Currency.currencyID
	ParentAccountID string      `json:"parentAccountID"` // Nullable, self-referencing
	Description     string      `json:"description"`
	IsActive        bool        `json:"isActive"`
	AuditFields
}
