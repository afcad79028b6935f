package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a row of the invoices table.
type Invoice struct {
	InvoiceID     string          `json:"invoiceID"` // Primary Key (UUID)
	CompanyID     string          `json:"companyID"`
	InvoiceNumber string          `json:"invoiceNumber"`
	ContactName   string          `json:"contactName"`
	CurrencyCode  string          `json:"currencyCode"`
	Total         decimal.Decimal `json:"total"`
	Status        string          `json:"status"`
	IssuedAt      time.Time       `json:"issuedAt"`
	DueAt         time.Time       `json:"dueAt"`
	AuditFields
}
