package dto

import (
	"time"

	"github.com/invopay/invoicing_backend/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record a payment against an
// invoice. Amount positivity is validated at the service layer since binding
// validators cannot inspect decimal values.
type RecordPaymentRequest struct {
	AccountID     string          `json:"accountID" form:"accountID" binding:"required"`
	PaidAt        time.Time       `json:"paidAt" form:"paidAt" time_format:"2006-01-02" binding:"required"`
	Amount        decimal.Decimal `json:"amount" form:"amount" binding:"required,positivedecimal"`
	CurrencyCode  string          `json:"currencyCode" form:"currencyCode" binding:"required,uppercase,len=3"`
	Description   string          `json:"description" form:"description"`
	PaymentMethod string          `json:"paymentMethod" form:"paymentMethod" binding:"required"`
	Reference     string          `json:"reference" form:"reference"`
}

// PaymentResponse defines the data returned for a recorded payment.
type PaymentResponse struct {
	PaymentID     string          `json:"paymentID"`
	InvoiceID     string          `json:"invoiceID"`
	AccountID     string          `json:"accountID"`
	PaidAt        time.Time       `json:"paidAt"`
	Amount        decimal.Decimal `json:"amount"`
	CurrencyCode  string          `json:"currencyCode"`
	CurrencyRate  decimal.Decimal `json:"currencyRate"`
	Description   string          `json:"description"`
	PaymentMethod string          `json:"paymentMethod"`
	Reference     string          `json:"reference"`
	AttachmentKey string          `json:"attachmentKey,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

// OverpaymentResponse is the structured rejection body for a payment that
// exceeds the outstanding balance. MaxPayable is denominated in the currency
// the caller submitted.
type OverpaymentResponse struct {
	Error      string          `json:"error"`
	MaxPayable decimal.Decimal `json:"maxPayable"`
	Currency   string          `json:"currency"`
}

// PaymentFormResponse assembles the data a payment entry form needs.
type PaymentFormResponse struct {
	Accounts        []AccountResponse  `json:"accounts"`
	Currencies      []CurrencyResponse `json:"currencies"`
	DefaultCurrency string             `json:"defaultCurrency"`
	PaymentMethods  []string           `json:"paymentMethods"`
	Outstanding     decimal.Decimal    `json:"outstanding"`
	CurrencyCode    string             `json:"currencyCode"` // Invoice currency of the outstanding amount
}

// ToPaymentResponse converts a domain.InvoicePayment to PaymentResponse DTO
func ToPaymentResponse(p *domain.InvoicePayment) PaymentResponse {
	return PaymentResponse{
		PaymentID:     p.PaymentID,
		InvoiceID:     p.InvoiceID,
		AccountID:     p.AccountID,
		PaidAt:        p.PaidAt,
		Amount:        p.Amount,
		CurrencyCode:  p.CurrencyCode,
		CurrencyRate:  p.CurrencyRate,
		Description:   p.Description,
		PaymentMethod: p.PaymentMethod,
		Reference:     p.Reference,
		AttachmentKey: p.AttachmentKey,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPaymentResponses converts a slice of domain.InvoicePayment to response DTOs
func ToPaymentResponses(payments []domain.InvoicePayment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}
