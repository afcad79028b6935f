package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/middleware"
	"github.com/invopay/invoicing_backend/internal/utils"
	"github.com/invopay/invoicing_backend/internal/utils/moneyconv"
)

// ErrNonPositiveAmount is returned for a payment request whose amount is zero
// or negative.
var ErrNonPositiveAmount = errors.New("payment amount must be positive")

// paymentService is the payment ledger: it validates payments against the
// outstanding balance, transitions invoice status and writes the payment and
// history records.
type paymentService struct {
	invoiceRepo    portsrepo.InvoiceRepositoryWithTx
	currencyRepo   portsrepo.CurrencyRepositoryFacade
	accountRepo    portsrepo.AccountRepositoryFacade
	media          portssvc.MediaSvcFacade
	paymentMethods []string
}

// NewPaymentService creates a new PaymentService. media may be nil when no
// object storage is configured; attachments are then rejected.
func NewPaymentService(
	invoiceRepo portsrepo.InvoiceRepositoryWithTx,
	currencyRepo portsrepo.CurrencyRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	media portssvc.MediaSvcFacade,
	paymentMethods []string,
) portssvc.PaymentSvcFacade {
	return &paymentService{
		invoiceRepo:    invoiceRepo,
		currencyRepo:   currencyRepo,
		accountRepo:    accountRepo,
		media:          media,
		paymentMethods: paymentMethods,
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment records a payment against an invoice.
//
// The outstanding-balance check is check-then-act against the invoice's
// payment set, so the whole sequence runs in one database transaction with a
// row lock on the invoice: concurrent payments against the same invoice
// serialize, and of two submissions that jointly overpay exactly one
// succeeds. Payments against different invoices do not block each other.
func (s *paymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, attachment *dto.AttachmentUpload, creatorUserID string) (*domain.InvoicePayment, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, ErrNonPositiveAmount)
	}

	if !slices.Contains(s.paymentMethods, req.PaymentMethod) {
		return nil, fmt.Errorf("%w: unknown payment method %q", apperrors.ErrValidation, req.PaymentMethod)
	}

	if _, err := s.accountRepo.FindAccountByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %s not found", apperrors.ErrValidation, req.AccountID)
		}
		return nil, fmt.Errorf("failed to validate account: %w", err)
	}

	// Rates are live administrative settings; read them fresh per request.
	table, err := s.currencyRepo.LoadCurrencyTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency table: %w", err)
	}

	requestCurrency, ok := table.Lookup(req.CurrencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnknownCurrency, req.CurrencyCode)
	}

	tx, err := s.invoiceRepo.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer s.invoiceRepo.Rollback(ctx, tx) // No-op after a successful commit.

	invoice, err := s.invoiceRepo.FindInvoiceByIDForUpdate(ctx, tx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to lock invoice %s: %w", invoiceID, err)
	}

	invoiceCurrency, ok := table.Lookup(invoice.CurrencyCode)
	if !ok {
		return nil, fmt.Errorf("%w: invoice currency %s", apperrors.ErrUnknownCurrency, invoice.CurrencyCode)
	}

	payments, err := s.invoiceRepo.FindPaymentsByInvoiceIDInTx(ctx, tx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for invoice %s: %w", invoiceID, err)
	}

	priorPaid, err := moneyconv.PaidAmount(invoice.CurrencyCode, payments, table)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate paid amount: %w", err)
	}
	remaining := invoice.Total.Sub(priorPaid)

	// Convert the requested amount into the invoice currency; identity when
	// the currencies match, so the amount passes through exactly.
	amountInInvoiceCurrency := req.Amount
	if req.CurrencyCode != invoice.CurrencyCode {
		amountInInvoiceCurrency, err = moneyconv.Convert(req.Amount, requestCurrency.Rate, invoiceCurrency.Rate)
		if err != nil {
			return nil, fmt.Errorf("failed to convert payment amount: %w", err)
		}
	}

	amountCmp := moneyconv.Comparable(amountInInvoiceCurrency, invoiceCurrency.Precision)
	remainingCmp := moneyconv.Comparable(remaining, invoiceCurrency.Precision)

	if amountCmp > remainingCmp {
		// Report the maximum payable amount in the caller's own currency.
		maxPayable := remaining
		if req.CurrencyCode != invoice.CurrencyCode {
			maxPayable, err = moneyconv.Convert(remaining, invoiceCurrency.Rate, requestCurrency.Rate)
			if err != nil {
				return nil, fmt.Errorf("failed to convert outstanding balance: %w", err)
			}
		}
		logger.Info("Payment rejected as overpayment",
			"invoice_id", invoiceID,
			"amount", req.Amount.String(),
			"currency", req.CurrencyCode,
			"max_payable", maxPayable.String())
		return nil, &apperrors.OverpaymentError{
			MaxPayable:   maxPayable.Round(int32(requestCurrency.Precision)),
			CurrencyCode: req.CurrencyCode,
		}
	}

	status := statusForPayment(amountCmp, remainingCmp)

	now := time.Now().UTC()
	if err := s.invoiceRepo.UpdateInvoiceStatusInTx(ctx, tx, invoiceID, status, creatorUserID, now); err != nil {
		return nil, fmt.Errorf("failed to update invoice status: %w", err)
	}

	payment := domain.InvoicePayment{
		PaymentID: uuid.NewString(),
		InvoiceID: invoiceID,
		CompanyID: invoice.CompanyID,
		AccountID: req.AccountID,
		PaidAt:    req.PaidAt,
		Amount:    req.Amount,
		// Rate snapshot taken from the resolved currency row at this moment;
		// frozen for the lifetime of the payment.
		CurrencyCode:  requestCurrency.CurrencyCode,
		CurrencyRate:  requestCurrency.Rate,
		Description:   req.Description,
		PaymentMethod: req.PaymentMethod,
		Reference:     req.Reference,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if attachment != nil {
		if s.media == nil {
			return nil, fmt.Errorf("%w: attachment uploads are not configured", apperrors.ErrValidation)
		}
		// Uploaded before commit so a storage failure aborts the whole
		// payment. A rollback can leave an orphaned object behind, which is
		// harmless.
		key, err := s.media.StorePaymentAttachment(ctx, invoiceID, payment.PaymentID, *attachment)
		if err != nil {
			return nil, fmt.Errorf("failed to store attachment: %w", err)
		}
		payment.AttachmentKey = key
	}

	if err := s.invoiceRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	history := domain.InvoiceHistory{
		HistoryID:   uuid.NewString(),
		InvoiceID:   invoiceID,
		CompanyID:   invoice.CompanyID,
		StatusCode:  status,
		Description: utils.FormatMoney(req.Amount, requestCurrency, true) + " payment",
		Notify:      false,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.invoiceRepo.SaveHistoryInTx(ctx, tx, history); err != nil {
		return nil, fmt.Errorf("failed to append invoice history: %w", err)
	}

	if err := s.invoiceRepo.Commit(ctx, tx); err != nil {
		return nil, fmt.Errorf("failed to commit payment: %w", err)
	}

	logger.Info("Payment recorded",
		"invoice_id", invoiceID,
		"payment_id", payment.PaymentID,
		"amount", payment.Amount.String(),
		"currency", payment.CurrencyCode,
		"new_status", string(status))
	return &payment, nil
}

// PreparePaymentForm assembles the read-only data a payment entry form needs.
func (s *paymentService) PreparePaymentForm(ctx context.Context, invoiceID string) (*dto.PaymentFormResponse, error) {
	invoice, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	table, err := s.currencyRepo.LoadCurrencyTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency table: %w", err)
	}

	payments, err := s.invoiceRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for invoice %s: %w", invoiceID, err)
	}

	priorPaid, err := moneyconv.PaidAmount(invoice.CurrencyCode, payments, table)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate paid amount: %w", err)
	}
	outstanding := invoice.Total.Sub(priorPaid)

	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, invoice.CompanyID, true)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}

	// The default account's currency preselects the form's currency; fall
	// back to the invoice currency when no default is configured.
	defaultCurrency := invoice.CurrencyCode
	defaultAccount, err := s.accountRepo.FindDefaultAccount(ctx, invoice.CompanyID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to find default account: %w", err)
	}
	if defaultAccount != nil {
		defaultCurrency = defaultAccount.CurrencyCode
	}

	currencies := make([]domain.Currency, 0, len(table))
	for _, c := range table {
		currencies = append(currencies, c)
	}
	sort.Slice(currencies, func(i, j int) bool { return currencies[i].CurrencyCode < currencies[j].CurrencyCode })

	return &dto.PaymentFormResponse{
		Accounts:        dto.ToListAccountResponse(accounts),
		Currencies:      dto.ToListCurrencyResponse(currencies),
		DefaultCurrency: defaultCurrency,
		PaymentMethods:  s.paymentMethods,
		Outstanding:     outstanding,
		CurrencyCode:    invoice.CurrencyCode,
	}, nil
}

// ListPayments retrieves the payments recorded against an invoice.
func (s *paymentService) ListPayments(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error) {
	if _, err := s.invoiceRepo.FindInvoiceByID(ctx, invoiceID); err != nil {
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	payments, err := s.invoiceRepo.FindPaymentsByInvoiceID(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments for invoice %s: %w", invoiceID, err)
	}
	if payments == nil {
		payments = []domain.InvoicePayment{}
	}
	return payments, nil
}
