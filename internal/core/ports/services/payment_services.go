package services

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// PaymentSvcFacade is the API surface of the payment ledger.
type PaymentSvcFacade interface {
	// RecordPayment validates a payment against the invoice's outstanding
	// balance and, if accepted, persists the payment, transitions the invoice
	// status and appends a history entry, all atomically. An amount exceeding
	// the outstanding balance fails with *apperrors.OverpaymentError carrying
	// the maximum payable amount in the request's currency. The optional
	// attachment is stored and associated with the created payment.
	RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, attachment *dto.AttachmentUpload, creatorUserID string) (*domain.InvoicePayment, error)

	// PreparePaymentForm assembles the read-only data a payment form needs:
	// enabled accounts and currencies, the default account's currency, the
	// configured payment methods and the outstanding balance.
	PreparePaymentForm(ctx context.Context, invoiceID string) (*dto.PaymentFormResponse, error)

	// ListPayments retrieves the payments recorded against an invoice.
	ListPayments(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error)
}

// MediaSvcFacade stores uploaded files and returns a stored-media key.
type MediaSvcFacade interface {
	// StorePaymentAttachment uploads an attachment and returns its storage key.
	StorePaymentAttachment(ctx context.Context, invoiceID, paymentID string, upload dto.AttachmentUpload) (string, error)
}
