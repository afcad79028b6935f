package dto

import (
	"time"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest defines the data needed to create an invoice (draft).
type CreateInvoiceRequest struct {
	CompanyID     string          `json:"companyID" binding:"required"`
	InvoiceNumber string          `json:"invoiceNumber" binding:"required"`
	ContactName   string          `json:"contactName" binding:"required"`
	CurrencyCode  string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Total         decimal.Decimal `json:"total" binding:"required,positivedecimal"`
	IssuedAt      time.Time       `json:"issuedAt" binding:"required"`
	DueAt         time.Time       `json:"dueAt" binding:"required"`
}

// InvoiceResponse defines the data returned for an invoice.
type InvoiceResponse struct {
	InvoiceID     string            `json:"invoiceID"`
	CompanyID     string            `json:"companyID"`
	InvoiceNumber string            `json:"invoiceNumber"`
	ContactName   string            `json:"contactName"`
	CurrencyCode  string            `json:"currencyCode"`
	Total         decimal.Decimal   `json:"total"`
	Status        string            `json:"status"`
	IssuedAt      time.Time         `json:"issuedAt"`
	DueAt         time.Time         `json:"dueAt"`
	Payments      []PaymentResponse `json:"payments,omitempty"`
}

// ListInvoicesParams holds parameters for listing invoices of a company.
type ListInvoicesParams struct {
	Limit     int     `form:"limit"`
	NextToken *string `form:"nextToken"`
}

// ListInvoicesResponse is a paginated list of invoices.
type ListInvoicesResponse struct {
	Invoices  []InvoiceResponse `json:"invoices"`
	NextToken *string           `json:"nextToken,omitempty"`
}

// InvoiceHistoryResponse defines the data returned for a history entry.
type InvoiceHistoryResponse struct {
	HistoryID   string    `json:"historyID"`
	InvoiceID   string    `json:"invoiceID"`
	StatusCode  string    `json:"statusCode"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ToInvoiceHistoryResponses converts domain history entries to response DTOs
func ToInvoiceHistoryResponses(history []domain.InvoiceHistory) []InvoiceHistoryResponse {
	res := make([]InvoiceHistoryResponse, len(history))
	for i, h := range history {
		res[i] = InvoiceHistoryResponse{
			HistoryID:   h.HistoryID,
			InvoiceID:   h.InvoiceID,
			StatusCode:  string(h.StatusCode),
			Description: h.Description,
			CreatedAt:   h.CreatedAt,
		}
	}
	return res
}

// ToInvoiceResponse converts a domain.Invoice to InvoiceResponse DTO
func ToInvoiceResponse(inv *domain.Invoice) InvoiceResponse {
	resp := InvoiceResponse{
		InvoiceID:     inv.InvoiceID,
		CompanyID:     inv.CompanyID,
		InvoiceNumber: inv.InvoiceNumber,
		ContactName:   inv.ContactName,
		CurrencyCode:  inv.CurrencyCode,
		Total:         inv.Total,
		Status:        string(inv.Status),
		IssuedAt:      inv.IssuedAt,
		DueAt:         inv.DueAt,
	}
	if len(inv.Payments) > 0 {
		resp.Payments = ToPaymentResponses(inv.Payments)
	}
	return resp
}
