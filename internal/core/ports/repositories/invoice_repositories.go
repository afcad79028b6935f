package repositories

import (
	"context"
	"time"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// InvoiceReader defines read operations for invoices and their payments.
type InvoiceReader interface {
	// FindInvoiceByID retrieves an invoice header by ID.
	FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error)

	// ListInvoicesByCompany retrieves a token-paginated list of invoices.
	ListInvoicesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error)

	// FindPaymentsByInvoiceID retrieves all payments recorded against an invoice.
	FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error)

	// FindHistoryByInvoiceID retrieves the append-only history of an invoice.
	FindHistoryByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceHistory, error)
}

// InvoiceWriter defines write operations for invoices.
type InvoiceWriter interface {
	// SaveInvoice persists a new invoice.
	SaveInvoice(ctx context.Context, invoice domain.Invoice) error

	// UpdatePaymentAttachment associates a stored-media key with a payment.
	// This is the only mutation allowed on a payment after creation.
	UpdatePaymentAttachment(ctx context.Context, paymentID string, attachmentKey string, updatedBy string, now time.Time) error
}

// PaymentRecorder defines the transaction-scoped operations used to record a
// payment. All methods must be called with the transaction that holds the
// invoice row lock, so concurrent payments against the same invoice
// serialize on FindInvoiceByIDForUpdate.
type PaymentRecorder interface {
	// FindInvoiceByIDForUpdate retrieves an invoice and locks its row.
	FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID string) (*domain.Invoice, error)

	// FindPaymentsByInvoiceIDInTx retrieves existing payments inside the transaction.
	FindPaymentsByInvoiceIDInTx(ctx context.Context, tx pgx.Tx, invoiceID string) ([]domain.InvoicePayment, error)

	// UpdateInvoiceStatusInTx transitions the invoice status.
	UpdateInvoiceStatusInTx(ctx context.Context, tx pgx.Tx, invoiceID string, status domain.InvoiceStatus, updatedBy string, now time.Time) error

	// SavePaymentInTx persists the new payment record.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.InvoicePayment) error

	// SaveHistoryInTx appends an invoice history entry.
	SaveHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.InvoiceHistory) error
}

// InvoiceRepositoryFacade combines all invoice-related repository interfaces
type InvoiceRepositoryFacade interface {
	InvoiceReader
	InvoiceWriter
	PaymentRecorder
}

// InvoiceRepositoryWithTx extends InvoiceRepositoryFacade with transaction capabilities
type InvoiceRepositoryWithTx interface {
	InvoiceRepositoryFacade
	TransactionManager
}
