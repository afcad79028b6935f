package mapping

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:    d.AccountID,
		CompanyID:    d.CompanyID,
		Name:         d.Name,
		Number:       d.Number,
		CurrencyCode: d.CurrencyCode,
		IsDefault:    d.IsDefault,
		Enabled:      d.Enabled,
		AuditFields:  ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:    m.AccountID,
		CompanyID:    m.CompanyID,
		Name:         m.Name,
		Number:       m.Number,
		CurrencyCode: m.CurrencyCode,
		IsDefault:    m.IsDefault,
		Enabled:      m.Enabled,
		AuditFields:  ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
