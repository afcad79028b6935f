package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	"github.com/invopay/invoicing_backend/internal/models"
	"github.com/invopay/invoicing_backend/internal/utils/mapping"
	"github.com/invopay/invoicing_backend/internal/utils/pagination"
)

type PgxInvoiceRepository struct {
	BaseRepository
}

// newPgxInvoiceRepository creates a new repository for invoices, their
// payments and their history.
func newPgxInvoiceRepository(pool *pgxpool.Pool) portsrepo.InvoiceRepositoryWithTx {
	return &PgxInvoiceRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.InvoiceRepositoryWithTx = (*PgxInvoiceRepository)(nil)

const invoiceColumns = `invoice_id, company_id, invoice_number, contact_name, currency_code, total, status, issued_at, due_at, created_at, created_by, last_updated_at, last_updated_by, version`

const paymentColumns = `payment_id, invoice_id, company_id, account_id, paid_at, amount, currency_code, currency_rate, description, payment_method, reference, attachment_key, created_at, created_by, last_updated_at, last_updated_by`

func scanInvoice(row pgx.Row) (models.Invoice, error) {
	var inv models.Invoice
	err := row.Scan(
		&inv.InvoiceID,
		&inv.CompanyID,
		&inv.InvoiceNumber,
		&inv.ContactName,
		&inv.CurrencyCode,
		&inv.Total,
		&inv.Status,
		&inv.IssuedAt,
		&inv.DueAt,
		&inv.CreatedAt,
		&inv.CreatedBy,
		&inv.LastUpdatedAt,
		&inv.LastUpdatedBy,
		&inv.Version,
	)
	return inv, err
}

func scanPayment(row pgx.CollectableRow) (models.InvoicePayment, error) {
	var p models.InvoicePayment
	err := row.Scan(
		&p.PaymentID,
		&p.InvoiceID,
		&p.CompanyID,
		&p.AccountID,
		&p.PaidAt,
		&p.Amount,
		&p.CurrencyCode,
		&p.CurrencyRate,
		&p.Description,
		&p.PaymentMethod,
		&p.Reference,
		&p.AttachmentKey,
		&p.CreatedAt,
		&p.CreatedBy,
		&p.LastUpdatedAt,
		&p.LastUpdatedBy,
	)
	return p, err
}

// querier abstracts pool vs transaction so read queries can serve both paths.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// SaveInvoice persists a new invoice.
func (r *PgxInvoiceRepository) SaveInvoice(ctx context.Context, invoice domain.Invoice) error {
	modelInv := mapping.ToModelInvoice(invoice)

	query := `
		INSERT INTO invoices (invoice_id, company_id, invoice_number, contact_name, currency_code, total, status, issued_at, due_at, created_at, created_by, last_updated_at, last_updated_by, version)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, 1);
	`

	_, err := r.Pool.Exec(ctx, query,
		modelInv.InvoiceID,
		modelInv.CompanyID,
		modelInv.InvoiceNumber,
		modelInv.ContactName,
		modelInv.CurrencyCode,
		modelInv.Total,
		modelInv.Status,
		modelInv.IssuedAt,
		modelInv.DueAt,
		modelInv.CreatedAt,
		modelInv.CreatedBy,
		modelInv.LastUpdatedAt,
		modelInv.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: invoice %s already exists", apperrors.ErrDuplicate, modelInv.InvoiceID)
		}
		return fmt.Errorf("failed to save invoice %s: %w", modelInv.InvoiceID, err)
	}
	return nil
}

// FindInvoiceByID retrieves an invoice header by ID.
func (r *PgxInvoiceRepository) FindInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	return r.findInvoice(ctx, r.Pool, invoiceID, false)
}

// FindInvoiceByIDForUpdate retrieves an invoice inside a transaction and
// locks its row. Concurrent payment recordings against the same invoice
// serialize here; other invoices are unaffected.
func (r *PgxInvoiceRepository) FindInvoiceByIDForUpdate(ctx context.Context, tx pgx.Tx, invoiceID string) (*domain.Invoice, error) {
	return r.findInvoice(ctx, tx, invoiceID, true)
}

func (r *PgxInvoiceRepository) findInvoice(ctx context.Context, q querier, invoiceID string, forUpdate bool) (*domain.Invoice, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE invoice_id = $1`
	if forUpdate {
		query += `
		FOR UPDATE`
	}
	query += `;`

	modelInv, err := scanInvoice(q.QueryRow(ctx, query, invoiceID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find invoice %s: %w", invoiceID, err)
	}

	domainInv := mapping.ToDomainInvoice(modelInv)
	return &domainInv, nil
}

// ListInvoicesByCompany retrieves a token-paginated page of a company's
// invoices, newest first.
func (r *PgxInvoiceRepository) ListInvoicesByCompany(ctx context.Context, companyID string, limit int, nextToken *string) ([]domain.Invoice, *string, error) {
	query := `
		SELECT ` + invoiceColumns + `
		FROM invoices
		WHERE company_id = $1`
	args := []any{companyID}

	if nextToken != nil && *nextToken != "" {
		issuedAt, invoiceID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err)
		}
		query += ` AND (issued_at, invoice_id) < ($2, $3)`
		args = append(args, issuedAt, invoiceID)
	}

	// Fetch one extra row to know whether another page exists.
	query += fmt.Sprintf(`
		ORDER BY issued_at DESC, invoice_id DESC
		LIMIT $%d;`, len(args)+1)
	args = append(args, limit+1)

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query invoices for company %s: %w", companyID, err)
	}
	defer rows.Close()

	modelInvoices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Invoice, error) {
		return scanInvoice(row)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to scan invoices: %w", err)
	}

	var newNextToken *string
	if len(modelInvoices) > limit {
		modelInvoices = modelInvoices[:limit]
		last := modelInvoices[len(modelInvoices)-1]
		token := pagination.EncodeToken(last.IssuedAt, last.InvoiceID)
		newNextToken = &token
	}

	return mapping.ToDomainInvoiceSlice(modelInvoices), newNextToken, nil
}

// UpdateInvoiceStatusInTx transitions the invoice status under the row lock
// taken by FindInvoiceByIDForUpdate.
func (r *PgxInvoiceRepository) UpdateInvoiceStatusInTx(ctx context.Context, tx pgx.Tx, invoiceID string, status domain.InvoiceStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE invoices
		SET status = $2, last_updated_at = $3, last_updated_by = $4, version = version + 1
		WHERE invoice_id = $1;
	`
	tag, err := tx.Exec(ctx, query, invoiceID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status of invoice %s: %w", invoiceID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindPaymentsByInvoiceID retrieves all payments recorded against an invoice.
func (r *PgxInvoiceRepository) FindPaymentsByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error) {
	return r.findPayments(ctx, r.Pool, invoiceID)
}

// FindPaymentsByInvoiceIDInTx retrieves existing payments inside the
// transaction holding the invoice row lock.
func (r *PgxInvoiceRepository) FindPaymentsByInvoiceIDInTx(ctx context.Context, tx pgx.Tx, invoiceID string) ([]domain.InvoicePayment, error) {
	return r.findPayments(ctx, tx, invoiceID)
}

func (r *PgxInvoiceRepository) findPayments(ctx context.Context, q querier, invoiceID string) ([]domain.InvoicePayment, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM invoice_payments
		WHERE invoice_id = $1
		ORDER BY paid_at, created_at;
	`
	rows, err := q.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	modelPayments, err := pgx.CollectRows(rows, scanPayment)
	if err != nil {
		return nil, fmt.Errorf("failed to scan payments: %w", err)
	}

	return mapping.ToDomainInvoicePaymentSlice(modelPayments), nil
}

// SavePaymentInTx persists a new payment record.
func (r *PgxInvoiceRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.InvoicePayment) error {
	modelPayment := mapping.ToModelInvoicePayment(payment)

	query := `
		INSERT INTO invoice_payments (payment_id, invoice_id, company_id, account_id, paid_at, amount, currency_code, currency_rate, description, payment_method, reference, attachment_key, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`

	_, err := tx.Exec(ctx, query,
		modelPayment.PaymentID,
		modelPayment.InvoiceID,
		modelPayment.CompanyID,
		modelPayment.AccountID,
		modelPayment.PaidAt,
		modelPayment.Amount,
		modelPayment.CurrencyCode,
		modelPayment.CurrencyRate,
		modelPayment.Description,
		modelPayment.PaymentMethod,
		modelPayment.Reference,
		modelPayment.AttachmentKey,
		modelPayment.CreatedAt,
		modelPayment.CreatedBy,
		modelPayment.LastUpdatedAt,
		modelPayment.LastUpdatedBy,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: payment %s already exists", apperrors.ErrDuplicate, modelPayment.PaymentID)
		}
		return fmt.Errorf("failed to save payment %s: %w", modelPayment.PaymentID, err)
	}
	return nil
}

// UpdatePaymentAttachment associates a stored-media key with a payment.
func (r *PgxInvoiceRepository) UpdatePaymentAttachment(ctx context.Context, paymentID string, attachmentKey string, updatedBy string, now time.Time) error {
	query := `
		UPDATE invoice_payments
		SET attachment_key = $2, last_updated_at = $3, last_updated_by = $4
		WHERE payment_id = $1;
	`
	tag, err := r.Pool.Exec(ctx, query, paymentID, attachmentKey, now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update attachment of payment %s: %w", paymentID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// FindHistoryByInvoiceID retrieves the append-only history of an invoice,
// oldest first.
func (r *PgxInvoiceRepository) FindHistoryByInvoiceID(ctx context.Context, invoiceID string) ([]domain.InvoiceHistory, error) {
	query := `
		SELECT history_id, invoice_id, company_id, status_code, description, notify, created_at, created_by, last_updated_at, last_updated_by
		FROM invoice_histories
		WHERE invoice_id = $1
		ORDER BY created_at;
	`
	rows, err := r.Pool.Query(ctx, query, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("failed to query history for invoice %s: %w", invoiceID, err)
	}
	defer rows.Close()

	modelHistory, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.InvoiceHistory, error) {
		var h models.InvoiceHistory
		err := row.Scan(
			&h.HistoryID,
			&h.InvoiceID,
			&h.CompanyID,
			&h.StatusCode,
			&h.Description,
			&h.Notify,
			&h.CreatedAt,
			&h.CreatedBy,
			&h.LastUpdatedAt,
			&h.LastUpdatedBy,
		)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan invoice history: %w", err)
	}

	history := make([]domain.InvoiceHistory, len(modelHistory))
	for i, m := range modelHistory {
		history[i] = mapping.ToDomainInvoiceHistory(m)
	}
	return history, nil
}

// SaveHistoryInTx appends an invoice history entry.
func (r *PgxInvoiceRepository) SaveHistoryInTx(ctx context.Context, tx pgx.Tx, history domain.InvoiceHistory) error {
	modelHist := mapping.ToModelInvoiceHistory(history)

	query := `
		INSERT INTO invoice_histories (history_id, invoice_id, company_id, status_code, description, notify, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`

	_, err := tx.Exec(ctx, query,
		modelHist.HistoryID,
		modelHist.InvoiceID,
		modelHist.CompanyID,
		modelHist.StatusCode,
		modelHist.Description,
		modelHist.Notify,
		modelHist.CreatedAt,
		modelHist.CreatedBy,
		modelHist.LastUpdatedAt,
		modelHist.LastUpdatedBy,
	)

	if err != nil {
		return fmt.Errorf("failed to save history entry %s: %w", modelHist.HistoryID, err)
	}
	return nil
}
