package services

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all configured currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// GetCurrencyTable retrieves the enabled currencies keyed by code.
	GetCurrencyTable(ctx context.Context) (domain.CurrencyTable, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// UpsertCurrency creates or updates a currency (admin operation).
	UpsertCurrency(ctx context.Context, req dto.UpsertCurrencyRequest, creatorUserID string) (*domain.Currency, error)
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}
