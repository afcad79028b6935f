package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/invopay/invoicing_backend/internal/core/domain"
)

func TestStatusForPayment(t *testing.T) {
	tests := []struct {
		name     string
		paidCmp  int64
		totalCmp int64
		want     domain.InvoiceStatus
	}{
		{"exact settlement", 10000, 10000, domain.InvoiceStatusPaid},
		{"partial payment", 2000, 10000, domain.InvoiceStatusPartial},
		{"one unit short", 9999, 10000, domain.InvoiceStatusPartial},
		{"zero-precision currency", 100, 100, domain.InvoiceStatusPaid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusForPayment(tt.paidCmp, tt.totalCmp))
		})
	}
}
