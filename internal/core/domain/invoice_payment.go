package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePayment records a single payment against an invoice. CurrencyRate is
// the rate of the payment's currency snapshotted at creation time, so
// historical conversions stay reproducible even after the live rate changes.
// A payment is immutable once created except for AttachmentKey, which is set
// when an uploaded receipt is associated with it.
type InvoicePayment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	InvoiceID     string          `json:"invoiceID"`
	CompanyID     string          `json:"companyID"`
	AccountID     string          `json:"accountID"` // Bank account the money landed in
	PaidAt        time.Time       `json:"paidAt"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	CurrencyRate  decimal.Decimal `json:"currencyRate"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	AttachmentKey string          `json:"attachmentKey,omitempty"` // Object storage key
	AuditFields
}
