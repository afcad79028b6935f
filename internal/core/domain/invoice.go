package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// InvoiceStatus indicates the lifecycle state of an invoice.
type InvoiceStatus string

const (
	InvoiceStatusDraft   InvoiceStatus = "draft"
	InvoiceStatusSent    InvoiceStatus = "sent"
	InvoiceStatusViewed  InvoiceStatus = "viewed"
	InvoiceStatusPartial InvoiceStatus = "partial"
	InvoiceStatusPaid    InvoiceStatus = "paid"
)

// Invoice represents a customer invoice. Total is the grand total in the
// invoice's own currency. The payment ledger only ever moves Status between
// partial and paid; the remaining states belong to the invoicing workflow.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ContactName   string          `json:"contactName"`
	CurrencyCode  string          `json:"currencyCode"`
	Total         decimal.Decimal `json:"total"`
	Status        InvoiceStatus   `json:"status"`
	IssuedAt      time.Time       `json:"issuedAt"`
	DueAt         time.Time       `json:"dueAt"`
	// Payments are loaded eagerly when the invoice is fetched for ledger work.
	Payments []InvoicePayment `json:"payments,omitempty"`
	AuditFields
}
