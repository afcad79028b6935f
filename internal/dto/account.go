package dto

import (
	"github.com/invopay/invoicing_backend/internal/core/domain"
)

// CreateAccountRequest defines the data needed to create a bank account.
type CreateAccountRequest struct {
	CompanyID    string `json:"companyID" binding:"required"`
	Name         string `json:"name" binding:"required"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currencyCode" binding:"required,uppercase,len=3"`
	IsDefault    bool   `json:"isDefault"`
}

// AccountResponse defines the data returned for a bank account.
type AccountResponse struct {
	AccountID    string `json:"accountID"`
	CompanyID    string `json:"companyID"`
	Name         string `json:"name"`
	Number       string `json:"number"`
	CurrencyCode string `json:"currencyCode"`
	IsDefault    bool   `json:"isDefault"`
	Enabled      bool   `json:"enabled"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(a *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:    a.AccountID,
		CompanyID:    a.CompanyID,
		Name:         a.Name,
		Number:       a.Number,
		CurrencyCode: a.CurrencyCode,
		IsDefault:    a.IsDefault,
		Enabled:      a.Enabled,
	}
}

// ToListAccountResponse converts a slice of domain.Account to response DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, a := range accounts {
		res[i] = ToAccountResponse(&a)
	}
	return res
}
