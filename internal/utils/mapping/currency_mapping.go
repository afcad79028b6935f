package mapping

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		CurrencyCode: d.CurrencyCode,
		Symbol:       d.Symbol,
		Name:         d.Name,
		Rate:         d.Rate,
		Precision:    d.Precision,
		Enabled:      d.Enabled,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyCode: m.CurrencyCode,
		Symbol:       m.Symbol,
		Name:         m.Name,
		Rate:         m.Rate,
		Precision:    m.Precision,
		Enabled:      m.Enabled,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.Currency {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}

// ToDomainCurrencyTable builds a lookup table keyed by currency code.
func ToDomainCurrencyTable(ms []models.Currency) domain.CurrencyTable {
	table := make(domain.CurrencyTable, len(ms))
	for _, m := range ms {
		table[m.CurrencyCode] = ToDomainCurrency(m)
	}
	return table
}
