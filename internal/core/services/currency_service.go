package services

import (
	"context"
	"fmt"
	"time"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portsrepo "github.com/invopay/invoicing_backend/internal/core/ports/repositories"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/middleware"
	"github.com/shopspring/decimal"
)

// currencyService provides currency administration and lookup operations.
type currencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) portssvc.CurrencySvcFacade {
	return &currencyService{currencyRepo: currencyRepo}
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

// UpsertCurrency creates or updates a currency configuration.
func (s *currencyService) UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest, creatorUserID string) (*domain.Currency, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: currency rate must be positive", apperrors.ErrValidation)
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	now := time.Now().UTC()
	currency := domain.Currency{
		CurrencyCode: req.CurrencyCode,
		Symbol:       req.Symbol,
		Name:         req.Name,
		Rate:         req.Rate,
		Precision:    req.Precision,
		Enabled:      enabled,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		logger.Error("Failed to save currency", "currency_code", req.CurrencyCode, "error", err)
		return nil, fmt.Errorf("failed to save currency: %w", err)
	}

	logger.Info("Currency saved", "currency_code", currency.CurrencyCode, "rate", currency.Rate.String())
	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *currencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code %s: %w", currencyCode, err)
	}
	return currency, nil
}

// ListCurrencies retrieves all configured currencies.
func (s *currencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}

// GetCurrencyTable retrieves the enabled currencies keyed by code. The table
// is loaded fresh per call so live rate changes take effect immediately.
func (s *currencyService) GetCurrencyTable(ctx context.Context) (domain.CurrencyTable, error) {
	table, err := s.currencyRepo.LoadCurrencyTable(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency table: %w", err)
	}
	return table, nil
}
