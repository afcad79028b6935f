package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrForbidden indicates that the authenticated user may not perform the action.
var ErrForbidden = errors.New("action forbidden")

// ErrUnknownCurrency indicates that a currency code is not configured or not enabled.
var ErrUnknownCurrency = errors.New("unknown or disabled currency")

// ErrInvalidCurrencyConfig indicates that a currency involved in a conversion
// carries a non-positive rate. This is a configuration bug, not a user error,
// and is surfaced rather than silently defaulted.
var ErrInvalidCurrencyConfig = errors.New("invalid currency configuration")

// OverpaymentError reports a payment that exceeds the outstanding balance of
// an invoice. It is an expected outcome, not an internal failure: MaxPayable
// is the remaining balance converted into the currency the caller submitted,
// so the caller can prompt for a corrected amount.
type OverpaymentError struct {
	MaxPayable   decimal.Decimal
	CurrencyCode string
}

func (e *OverpaymentError) Error() string {
	return fmt.Sprintf("payment exceeds outstanding balance: maximum payable is %s %s", e.MaxPayable.String(), e.CurrencyCode)
}
