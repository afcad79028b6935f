package mapping

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/models"
)

// ToModelInvoice converts a domain Invoice to a model Invoice
func ToModelInvoice(d domain.Invoice) models.Invoice {
	return models.Invoice{
		InvoiceID:     d.InvoiceID,
		CompanyID:     d.CompanyID,
		InvoiceNumber: d.InvoiceNumber,
		ContactName:   d.ContactName,
		CurrencyCode:  d.CurrencyCode,
		Total:         d.Total,
		Status:        string(d.Status),
		IssuedAt:      d.IssuedAt,
		DueAt:         d.DueAt,
		AuditFields:   ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainInvoice converts a model Invoice to a domain Invoice
func ToDomainInvoice(m models.Invoice) domain.Invoice {
	return domain.Invoice{
		InvoiceID:     m.InvoiceID,
		CompanyID:     m.CompanyID,
		InvoiceNumber: m.InvoiceNumber,
		ContactName:   m.ContactName,
		CurrencyCode:  m.CurrencyCode,
		Total:         m.Total,
		Status:        domain.InvoiceStatus(m.Status),
		IssuedAt:      m.IssuedAt,
		DueAt:         m.DueAt,
		AuditFields:   ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainInvoiceSlice converts a slice of model Invoices to a slice of domain Invoices
func ToDomainInvoiceSlice(ms []models.Invoice) []domain.Invoice {
	ds := make([]domain.Invoice, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainInvoice(m)
	}
	return ds
}
