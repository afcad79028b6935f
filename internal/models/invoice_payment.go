package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoicePayment represents a row of the invoice_payments table.
// currency_rate is the snapshot taken at creation time.
type InvoicePayment struct {
	PaymentID     string          `json:"paymentID"` // Primary Key (UUID)
	InvoiceID     string          `json:"invoiceID"`
	CompanyID     string          `json:"companyID"`
	AccountID     string          `json:"accountID"`
	PaidAt        time.Time       `json:"paidAt"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	CurrencyRate  decimal.Decimal `json:"currencyRate"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	AttachmentKey string          `json:"attachmentKey"`
	AuditFields
}
