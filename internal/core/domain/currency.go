package domain

import "github.com/shopspring/decimal"

// Currency represents a supported currency in the domain.
// Rate expresses the currency's value relative to the company's base currency:
// amount_in_base = amount_in_currency / Rate. The base currency itself has
// rate 1. Precision is the number of fractional digits amounts in this
// currency are compared and displayed at.
type Currency struct {
	CurrencyCode string          `json:"currencyCode"` // Primary Key (e.g., "USD")
	Symbol       string          `json:"symbol"`       // e.g., "$"
	Name         string          `json:"name"`         // e.g., "US Dollar"
	Rate         decimal.Decimal `json:"rate"`
	Precision    int             `json:"precision"`
	Enabled      bool            `json:"enabled"`
	AuditFields
}

// CurrencyTable is the set of enabled currencies keyed by code, loaded fresh
// per request so live administrative rate changes take effect immediately.
type CurrencyTable map[string]Currency

// Lookup returns the currency for code, or ErrUnknownCurrency semantics via ok=false.
func (t CurrencyTable) Lookup(code string) (Currency, bool) {
	c, ok := t[code]
	return c, ok
}
