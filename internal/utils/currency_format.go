package utils

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatMoney renders an amount at the currency's precision, optionally with
// its symbol, for error and history messages. It has no semantic effect on
// the ledger.
// Example: amount 20 with USD (precision 2, symbol "$") returns "$20.00".
func FormatMoney(amount decimal.Decimal, currency domain.Currency, withSymbol bool) string {
	s := amount.StringFixed(int32(currency.Precision))
	if withSymbol && currency.Symbol != "" {
		return currency.Symbol + s
	}
	return s
}
