package models

// InvoiceHistory represents a row of the invoice_histories table.
// Rows are append-only.
type InvoiceHistory struct {
	HistoryID   string `json:"historyID"` // Primary Key (UUID)
	InvoiceID   string `json:"invoiceID"`
	CompanyID   string `json:"companyID"`
	StatusCode  string `json:"statusCode"`
	Description string `json:"description"`
	Notify      bool   `json:"notify"`
	AuditFields
}
