package moneyconv

import (
	"fmt"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// All conversion goes through the company's base currency. A currency's rate
// expresses its value relative to the base: amount_in_base = amount / rate.
// No rounding happens inside the converters; callers round only when
// comparing, via Comparable. Division uses shopspring's default precision of
// 16 fractional digits, so a convert round-trip is exact to well below any
// practical currency precision.

// ConvertToBase converts an amount denominated in a currency with the given
// rate into the base currency.
func ConvertToBase(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate %s is not positive", apperrors.ErrInvalidCurrencyConfig, rate.String())
	}
	return amount.Div(rate), nil
}

// ConvertFromBase converts a base-currency amount into a currency with the
// given rate.
func ConvertFromBase(amount, rate decimal.Decimal) (decimal.Decimal, error) {
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, fmt.Errorf("%w: rate %s is not positive", apperrors.ErrInvalidCurrencyConfig, rate.String())
	}
	return amount.Mul(rate), nil
}

// Convert converts an amount from a source currency (rate fromRate) into a
// target currency (rate toRate) via the two-step pipeline through the base
// currency. Each step uses the rate of the currency being exited or entered,
// matching how payments snapshot their own rate.
func Convert(amount, fromRate, toRate decimal.Decimal) (decimal.Decimal, error) {
	base, err := ConvertToBase(amount, fromRate)
	if err != nil {
		return decimal.Zero, err
	}
	return ConvertFromBase(base, toRate)
}

// Comparable scales an amount to integer minor units at the given precision
// for exact comparison: round(amount * 10^precision). Rounding is
// half-away-from-zero (shopspring's Round), so an amount exactly equal to an
// outstanding balance at the currency's precision compares as equal rather
// than erroneously over.
func Comparable(amount decimal.Decimal, precision int) int64 {
	return amount.Shift(int32(precision)).Round(0).IntPart()
}

// PaidAmount sums an invoice's existing payments, each converted into the
// invoice's currency. A payment in the invoice currency contributes its
// amount as-is. A foreign-currency payment is divided by its own snapshotted
// rate into the base currency, then multiplied by the invoice currency's
// live rate from the table. Zero payments yield zero. The sum is recomputed
// from the full payment set on every call; it is not a maintained column.
func PaidAmount(invoiceCurrencyCode string, payments []domain.InvoicePayment, table domain.CurrencyTable) (decimal.Decimal, error) {
	paid := decimal.Zero
	if len(payments) == 0 {
		return paid, nil
	}

	invoiceCurrency, ok := table.Lookup(invoiceCurrencyCode)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, invoiceCurrencyCode)
	}

	for _, p := range payments {
		if p.CurrencyCode == invoiceCurrencyCode {
			paid = paid.Add(p.Amount)
			continue
		}
		converted, err := Convert(p.Amount, p.CurrencyRate, invoiceCurrency.Rate)
		if err != nil {
			return decimal.Zero, fmt.Errorf("converting payment %s: %w", p.PaymentID, err)
		}
		paid = paid.Add(converted)
	}
	return paid, nil
}
