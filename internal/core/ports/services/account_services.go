package services

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// AccountReaderSvc defines read operations for bank accounts
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a company's accounts; enabledOnly filters disabled ones.
	ListAccounts(ctx context.Context, companyID string, enabledOnly bool) ([]domain.Account, error)

	// GetDefaultAccount retrieves the company's default deposit account.
	GetDefaultAccount(ctx context.Context, companyID string) (*domain.Account, error)
}

// AccountWriterSvc defines write operations for bank accounts
type AccountWriterSvc interface {
	// CreateAccount persists a new account.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error)
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
