package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/middleware"
)

// accountService provides bank account operations.
type accountService struct {
	accountRepo  portsrepo.AccountRepositoryFacade
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewAccountService creates a new AccountService.
func NewAccountService(accountRepo portsrepo.AccountRepositoryFacade, currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.AccountSvcFacade {
	return &accountService{accountRepo: accountRepo, currencyRepo: currencyRepo}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount persists a new bank account after validating its currency.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, creatorUserID string) (*domain.Account, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.currencyRepo.FindCurrencyByCode(ctx, req.CurrencyCode); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: currency %s is not configured", apperrors.ErrValidation, req.CurrencyCode)
		}
		return nil, fmt.Errorf("failed to validate account currency: %w", err)
	}

	now := time.Now().UTC()
	account := domain.Account{
		AccountID:    uuid.NewString(),
		CompanyID:    req.CompanyID,
		Name:         req.Name,
		Number:       req.Number,
		CurrencyCode: req.CurrencyCode,
		IsDefault:    req.IsDefault,
		Enabled:      true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.accountRepo.SaveAccount(ctx, account); err != nil {
		logger.Error("Failed to save account", "company_id", req.CompanyID, "error", err)
		return nil, fmt.Errorf("failed to save account: %w", err)
	}

	logger.Info("Account created", "account_id", account.AccountID, "company_id", account.CompanyID)
	return &account, nil
}

// GetAccountByID retrieves a specific account.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to get account %s: %w", accountID, err)
	}
	return account, nil
}

// ListAccounts retrieves a company's accounts ordered by name.
func (s *accountService) ListAccounts(ctx context.Context, companyID string, enabledOnly bool) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccountsByCompany(ctx, companyID, enabledOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	return accounts, nil
}

// GetDefaultAccount retrieves the company's default deposit account.
func (s *accountService) GetDefaultAccount(ctx context.Context, companyID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindDefaultAccount(ctx, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get default account for company %s: %w", companyID, err)
	}
	return account, nil
}
