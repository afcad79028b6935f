package repositories

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
)

// AccountReader defines read operations for bank account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its ID.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccountsByCompany retrieves accounts of a company, ordered by name.
	// When enabledOnly is set, disabled accounts are filtered out.
	ListAccountsByCompany(ctx context.Context, companyID string, enabledOnly bool) ([]domain.Account, error)

	// FindDefaultAccount retrieves the company's default deposit account.
	FindDefaultAccount(ctx context.Context, companyID string) (*domain.Account, error)
}

// AccountWriter defines write operations for bank account data
type AccountWriter interface {
	// SaveAccount persists a new account.
	SaveAccount(ctx context.Context, account domain.Account) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
