package services

import "github.com/invopay/invoicing_backend/internal/core/domain"

// statusForPayment decides the invoice status after an accepted payment,
// comparing precision-scaled integers (see moneyconv.Comparable). The
// overpayment case is rejected before this policy is consulted, so
// paidCmp > totalCmp cannot occur on the accept path; it falls through to
// partial, which keeps the invoice consistent even if it ever did.
func statusForPayment(paidCmp, totalCmp int64) domain.InvoiceStatus {
	if paidCmp == totalCmp {
		return domain.InvoiceStatusPaid
	}
	return domain.InvoiceStatusPartial
}
