package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/middleware"
)

var (
	ErrNonPositiveTotal = errors.New("invoice total must be positive")
)

// invoiceService provides invoice lifecycle operations outside the payment
// ledger: creation and retrieval.
type invoiceService struct {
	invoiceRepo  portsrepo.InvoiceRepositoryWithTx
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewInvoiceService creates a new InvoiceService.
func NewInvoiceService(invoiceRepo portsrepo.InvoiceRepositoryWithTx, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.InvoiceSvcFacade {
	return &invoiceService{invoiceRepo: invoiceRepo, currencyRepo: currencyRepo}
}

var _ portssvc.InvoiceSvcFacade = (*invoiceService)(nil)

// CreateInvoice persists a new draft invoice.
func (s *invoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Total.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositiveTotal)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate invoice currency: %w", err)
	}
	if !currency.Enabled {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, req.CurrencyCode)
	}

	now := time.Now().UTC()
	invoice := domain.Invoice{
		InvoiceID:     uuid.NewString(),
		CompanyID:     req.CompanyID,
		InvoiceNumber: req.InvoiceNumber,
		ContactName:   req.ContactName,
		CurrencyCode:  req.CurrencyCode,
		Total:         req.Total,
		Status:        domain.InvoiceStatusDraft,
		IssuedAt:      req.IssuedAt,
		DueAt:         req.DueAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.invoiceRepo.SaveInvoice(ctx, invoice); err != nil {
		logger.Error("Failed to save invoice", "company_id", req.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to save invoice: %w", err)
	}

	logger.Info("Invoice created", "invoice_id", invoice.InvoiceID, "company_id", invoice.CompanyID)
	return &invoice, nil
}

// GetInvoiceByID retrieves an invoice with its payments loaded.
func (s *invoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	payments, err := s.invoiceRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for invoice %s: %w", invoiceID, err)
	}
	invoice.Payments = payments

	return invoice, nil
}

// GetInvoiceHistory retrieves the append-only history of an invoice.
func (s *invoiceService) GetInvoiceHistory(ctx context.Context, invoiceID string) ([]domain.InvoiceHistory, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	history, err := s.invoiceRepo.FindHistoryByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load history for invoice %s: %w", invoiceID, err)
	}
	if history == nil {
		history = []domain.InvoiceHistory{}
	}
	return history, nil
}

// ListInvoices retrieves a paginated list of a company's invoices.
func (s *invoiceService) ListInvoices(ctx context.Context, companyID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	limit := params.Limit
	if limit <= 0 {
		limit = 20
	}

	invoices, nextToken, err := s.invoiceRepo.ListInvoicesByCompany(ctx, companyID, limit, params.NextToken)
	if err != nil {
		logger.Error("Failed to list invoices", "company_id", companyID, "error", err)
		return nil, fmt.Errorf("failed to retrieve invoices: %w", err)
	}

	responses := make([]dto.InvoiceResponse, len(invoices))
	for i := range invoices {
		responses[i] = dto.ToInvoiceResponse(&invoices[i])
	}

	return &dto.ListInvoicesResponse{Invoices: responses, NextToken: nextToken}, nil
}
