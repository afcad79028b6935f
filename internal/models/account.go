package models

// Account represents a row of the accounts table.
type Account struct {
	AccountID    string `json:"accountID"` // Primary Key (UUID)
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currencyCode"`
	IsDefault    bool   `json:"isDefault"`
	Enabled      bool   `json:"enabled"`
	AuditFields
}
