package domain

// InvoiceHistory is an append-only audit entry for an invoice. One entry is
// written per successful payment; entries are never mutated or deleted.
type InvoiceHistory struct {
	HistoryID   string        `json:"historyID"` // Primary Key (UUID)
	InvoiceID   string        `json:"invoiceID"`
	CompanyID   string        `json:"companyID"`
	StatusCode  InvoiceStatus `json:"statusCode"`
	Description string        `json:"description"` // e.g. "20.00 USD payment"
	Notify      bool          `json:"notify"`
	AuditFields
}
