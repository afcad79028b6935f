package models

import "github.com/shopspring/decimal"

// Currency represents a row of the currencies table.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`
	Name         string          `json:"name"`
	Rate         decimal.Decimal `json:"rate"`      // Relative to the base currency
	Precision    int             `json:"precision"` // Fractional digits for comparison
	Enabled      bool            `json:"enabled"`
	AuditFields
}
