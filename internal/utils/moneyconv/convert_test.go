package moneyconv_test

import (
	"testing"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/utils/moneyconv"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestConvertToBase(t *testing.T) {
	got, err := moneyconv.ConvertToBase(dec("10"), dec("0.8"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("12.5")), "got %s", got)
}

func TestConvertFromBase(t *testing.T) {
	got, err := moneyconv.ConvertFromBase(dec("12.5"), dec("0.8"))
	require.NoError(t, err)
	assert.True(t, got.Equal(dec("10")), "got %s", got)
}

func TestConvert_NonPositiveRate(t *testing.T) {
	_, err := moneyconv.Convert(dec("10"), decimal.Zero, dec("1"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyConfig)

	_, err = moneyconv.Convert(dec("10"), dec("1"), dec("-0.5"))
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyConfig)
}

// A from->to->from round trip must return the original amount within the
// division precision (16 fractional digits). We verify at comparable
// precision 8, far tighter than any configured currency precision.
func TestConvert_RoundTrip(t *testing.T) {
	cases := []struct {
		name             string
		amount, r1, r2   string
		comparePrecision int
	}{
		{"simple", "100", "1", "0.85", 8},
		{"repeating decimal", "10", "3", "7", 8},
		{"small rates", "0.01", "0.0001", "1234.5678", 8},
		{"large amount", "98765432.10", "1.1", "0.9", 8},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			amount := dec(tc.amount)
			there, err := moneyconv.Convert(amount, dec(tc.r1), dec(tc.r2))
			require.NoError(t, err)
			back, err := moneyconv.Convert(there, dec(tc.r2), dec(tc.r1))
			require.NoError(t, err)
			assert.Equal(t,
				moneyconv.Comparable(amount, tc.comparePrecision),
				moneyconv.Comparable(back, tc.comparePrecision),
				"round trip drifted: %s -> %s", amount, back)
		})
	}
}

// Pins the rounding rule: half away from zero.
func TestComparable_Rounding(t *testing.T) {
	cases := []struct {
		amount    string
		precision int
		want      int64
	}{
		{"20.00", 2, 2000},
		{"20.004", 2, 2000},
		{"20.005", 2, 2001},
		{"19.995", 2, 2000},
		{"19.9999999999999999", 2, 2000},
		{"20.01", 2, 2001},
		{"-20.005", 2, -2001},
		{"12.3456", 0, 12},
		{"12.5", 0, 13},
		{"0", 2, 0},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, moneyconv.Comparable(dec(tc.amount), tc.precision),
			"Comparable(%s, %d)", tc.amount, tc.precision)
	}
}

// An amount that only differs from the balance below the currency precision
// must compare as equal. This is the boundary that decides paid vs rejected.
func TestComparable_BoundaryEquality(t *testing.T) {
	// 100/3 truncates at division precision, so the product lands a hair
	// under 20 instead of exactly on it.
	remaining := dec("100").Div(dec("3")).Mul(dec("0.6"))
	require.False(t, remaining.Equal(dec("20.00")))
	payment := dec("20.00")
	assert.Equal(t, moneyconv.Comparable(remaining, 2), moneyconv.Comparable(payment, 2))
}

func testTable() domain.CurrencyTable {
	return domain.CurrencyTable{
		"USD": {CurrencyCode: "USD", Rate: dec("1"), Precision: 2, Enabled: true},
		"EUR": {CurrencyCode: "EUR", Rate: dec("0.8"), Precision: 2, Enabled: true},
		"TRY": {CurrencyCode: "TRY", Rate: dec("32.5"), Precision: 2, Enabled: true},
	}
}

func TestPaidAmount_Empty(t *testing.T) {
	paid, err := moneyconv.PaidAmount("USD", nil, testTable())
	require.NoError(t, err)
	assert.True(t, paid.IsZero())
}

func TestPaidAmount_SameCurrencyIdentity(t *testing.T) {
	payments := []domain.InvoicePayment{
		{PaymentID: "p1", Amount: dec("30.33"), CurrencyCode: "USD", CurrencyRate: dec("1")},
	}
	paid, err := moneyconv.PaidAmount("USD", payments, testTable())
	require.NoError(t, err)
	assert.True(t, paid.Equal(dec("30.33")), "amount must pass through unconverted, got %s", paid)
}

// Mixed-currency payments must each be converted through the base currency
// independently, and the sum must not depend on payment order.
func TestPaidAmount_MixedCurrencies(t *testing.T) {
	table := testTable()
	payments := []domain.InvoicePayment{
		{PaymentID: "p1", Amount: dec("10"), CurrencyCode: "USD", CurrencyRate: dec("1")},
		{PaymentID: "p2", Amount: dec("8"), CurrencyCode: "EUR", CurrencyRate: dec("0.8")},
		{PaymentID: "p3", Amount: dec("325"), CurrencyCode: "TRY", CurrencyRate: dec("32.5")},
	}

	want := dec("10")
	for _, p := range payments[1:] {
		converted, err := moneyconv.Convert(p.Amount, p.CurrencyRate, table["USD"].Rate)
		require.NoError(t, err)
		want = want.Add(converted)
	}

	paid, err := moneyconv.PaidAmount("USD", payments, table)
	require.NoError(t, err)
	assert.True(t, paid.Equal(want), "got %s want %s", paid, want)

	// Reversed order, same sum.
	reversed := []domain.InvoicePayment{payments[2], payments[1], payments[0]}
	paidRev, err := moneyconv.PaidAmount("USD", reversed, table)
	require.NoError(t, err)
	assert.True(t, paidRev.Equal(paid))
}

// A foreign payment converts with its own snapshotted rate, so changing the
// live rate of the payment's currency does not change its contribution.
func TestPaidAmount_SnapshotRateFrozen(t *testing.T) {
	payments := []domain.InvoicePayment{
		{PaymentID: "p1", Amount: dec("8"), CurrencyCode: "EUR", CurrencyRate: dec("0.8")},
	}

	table := testTable()
	before, err := moneyconv.PaidAmount("USD", payments, table)
	require.NoError(t, err)

	eur := table["EUR"]
	eur.Rate = dec("0.5")
	table["EUR"] = eur

	after, err := moneyconv.PaidAmount("USD", payments, table)
	require.NoError(t, err)
	assert.True(t, before.Equal(after), "live rate change altered converted amount: %s vs %s", before, after)
}

func TestPaidAmount_UnknownInvoiceCurrency(t *testing.T) {
	payments := []domain.InvoicePayment{
		{PaymentID: "p1", Amount: dec("1"), CurrencyCode: "EUR", CurrencyRate: dec("0.8")},
	}
	_, err := moneyconv.PaidAmount("XXX", payments, testTable())
	assert.ErrorIs(t, err, apperrors.ErrUnknownCurrency)
}

func TestPaidAmount_BadSnapshotRate(t *testing.T) {
	payments := []domain.InvoicePayment{
		{PaymentID: "p1", Amount: dec("1"), CurrencyCode: "EUR", CurrencyRate: decimal.Zero},
	}
	_, err := moneyconv.PaidAmount("USD", payments, testTable())
	assert.ErrorIs(t, err, apperrors.ErrInvalidCurrencyConfig)
}
