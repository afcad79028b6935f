package services

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// InvoiceReaderSvc defines read operations for invoices
type InvoiceReaderSvc interface {
	// GetInvoiceByID retrieves an invoice with its payments loaded.
	GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoices retrieves a paginated list of a company's invoices.
	ListInvoices(ctx context.Context, companyID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error)

	// GetInvoiceHistory retrieves the append-only history of an invoice.
	GetInvoiceHistory(ctx context.Context, invoiceID string) ([]domain.InvoiceHistory, error)
}

// InvoiceWriterSvc defines write operations for invoices
type InvoiceWriterSvc interface {
	// CreateInvoice persists a new draft invoice.
	CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error)
}

// InvoiceSvcFacade combines all invoice-related service interfaces
type InvoiceSvcFacade interface {
	InvoiceReaderSvc
	InvoiceWriterSvc
}
