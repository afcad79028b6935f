package mapping

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/models"
)

// ToModelInvoicePayment converts a domain InvoicePayment to a model InvoicePayment
func ToModelInvoicePayment(d domain.InvoicePayment) models.InvoicePayment {
	return models.InvoicePayment{
		PaymentID:     d.PaymentID,
		InvoiceID:     d.InvoiceID,
		CompanyID:     d.CompanyID,
		AccountID:     d.AccountID,
		PaidAt:        d.PaidAt,
		Amount:        d.Amount,
		CurrencyCode:  d.CurrencyCode,
		CurrencyRate:  d.CurrencyRate,
		Description:   d.Description,
		PaymentMethod: d.PaymentMethod,
		Reference:     d.Reference,
		AttachmentKey: d.AttachmentKey,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoicePayment converts a model InvoicePayment to a domain InvoicePayment
func ToDomainInvoicePayment(m models.InvoicePayment) domain.InvoicePayment {
	return domain.InvoicePayment{
		PaymentID:     m.PaymentID,
		InvoiceID:     m.InvoiceID,
		CompanyID:     m.CompanyID,
		AccountID:     m.AccountID,
		PaidAt:        m.PaidAt,
		Amount:        m.Amount,
		CurrencyCode:  m.CurrencyCode,
		CurrencyRate:  m.CurrencyRate,
		Description:   m.Description,
		PaymentMethod: m.PaymentMethod,
		Reference:     m.Reference,
		AttachmentKey: m.AttachmentKey,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoicePaymentSlice converts a slice of model payments to domain payments
func ToDomainInvoicePaymentSlice(ms []models.InvoicePayment) []domain.InvoicePayment {
	ds := make([]domain.InvoicePayment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoicePayment(m)
	}
	return ds
}

// ToModelInvoiceHistory converts a domain InvoiceHistory to a model InvoiceHistory
func ToModelInvoiceHistory(d domain.InvoiceHistory) models.InvoiceHistory {
	return models.InvoiceHistory{
		HistoryID:   d.HistoryID,
		InvoiceID:   d.InvoiceID,
		CompanyID:   d.CompanyID,
		StatusCode:  string(d.StatusCode),
		Description: d.Description,
		Notify:      d.Notify,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoiceHistory converts a model InvoiceHistory to a domain InvoiceHistory
func ToDomainInvoiceHistory(m models.InvoiceHistory) domain.InvoiceHistory {
	return domain.InvoiceHistory{
		HistoryID:   m.HistoryID,
		InvoiceID:   m.InvoiceID,
		CompanyID:   m.CompanyID,
		StatusCode:  domain.InvoiceStatus(m.StatusCode),
		Description: m.Description,
		Notify:      m.Notify,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
