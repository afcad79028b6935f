package dto

import (
	"time"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpsertCurrencyRequest defines the data needed to create or update a currency.
// Rate is relative to the base currency and must be positive; precision is the
// number of fractional digits used for comparisons (0 for JPY-like currencies).
type UpsertCurrencyRequest struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,len=3"`
	Symbol       string          `json:"symbol" binding:"required"`
	Name         string          `json:"name" binding:"required"`
	Rate         decimal.Decimal `json:"rate" binding:"required,positivedecimal"`
	Precision    int             `json:"precision" binding:"gte=0,lte=18"`
	Enabled      *bool           `json:"enabled"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	CurrencyCode  string          `json:"currencyCode"`
	Symbol        string          `json:"symbol"`
	Name          string          `json:"name"`
	Rate          decimal.Decimal `json:"rate"`
	Precision     int             `json:"precision"`
	Enabled       bool            `json:"enabled"`
	CreatedAt     time.Time       `json:"createdAt"`
	LastUpdatedAt time.Time       `json:"lastUpdatedAt"`
}

// ToCurrencyResponse converts a domain.Currency to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		CurrencyCode:  curr.CurrencyCode,
		Symbol:        curr.Symbol,
		Name:          curr.Name,
		Rate:          curr.Rate,
		Precision:     curr.Precision,
		Enabled:       curr.Enabled,
		CreatedAt:     curr.CreatedAt,
		LastUpdatedAt: curr.LastUpdatedAt,
	}
}

// ToListCurrencyResponse converts a slice of domain.Currency to response DTOs
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
