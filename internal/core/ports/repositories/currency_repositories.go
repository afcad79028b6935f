package repositories

import (
	"context"

	"github.com/invopay/invoicing_backend/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all configured currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// LoadCurrencyTable retrieves all enabled currencies keyed by code.
	// It is read fresh per request: rates are live administrative settings.
	LoadCurrencyTable(ctx context.Context) (domain.CurrencyTable, error)
}

// CurrencyWriter defines write operations for currency data
type CurrencyWriter interface {
	// SaveCurrency inserts or updates a currency.
	SaveCurrency(ctx context.Context, currency domain.Currency) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
