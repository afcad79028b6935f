package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	currencyRepo := newPgxCurrencyRepository(dbPool)
	invoiceRepo := newPgxInvoiceRepository(dbPool)
	accountRepo := newPgxAccountRepository(dbPool)
	userRepo := newPgxUserRepository(dbPool)

	return portsrepo.RepositoryProvider{
		CurrencyRepo: currencyRepo,
		InvoiceRepo:  invoiceRepo,
		AccountRepo:  accountRepo,
		UserRepo:     userRepo,
	}
}
