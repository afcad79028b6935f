package services

import (
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
)

// NewServiceContainer wires the application services against the repository
// provider. media may be nil when object storage is not configured.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, media portssvc.MediaSvcFacade, paymentMethods []string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency: NewCurrencyService(repos.CurrencyRepo),
		Account:  NewAccountService(repos.AccountRepo, repos.CurrencyRepo),
		Invoice:  NewInvoiceService(repos.InvoiceRepo, repos.CurrencyRepo),
		Payment:  NewPaymentService(repos.InvoiceRepo, repos.CurrencyRepo, repos.AccountRepo, media, paymentMethods),
		User:     NewUserService(repos.UserRepo),
		Media:    media,
	}
}
