package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/core/services"
	"github.com/invopay/invoicing_backend/internal/dto"
)

type InvoiceServiceTestSuite struct {
	suite.Suite
	mockInvoiceRepo  *MockInvoiceRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.InvoiceSvcFacade
}

func (suite *InvoiceServiceTestSuite) SetupTest() {
	suite.mockInvoiceRepo = new(MockInvoiceRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewInvoiceService(suite.mockInvoiceRepo, suite.mockCurrencyRepo)
}

func (suite *InvoiceServiceTestSuite) createRequest() dto.CreateInvoiceRequest {
	return dto.CreateInvoiceRequest{
		CompanyID:     uuid.NewString(),
		InvoiceNumber: "INV-00042",
		ContactName:   "Acme Corp",
		CurrencyCode:  "USD",
		Total:         dec("100"),
		IssuedAt:      time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		DueAt:         time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

// --- Test Cases ---

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := suite.createRequest()

	usd := &domain.Currency{CurrencyCode: "USD", Rate: dec("1"), Precision: 2, Enabled: true}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(usd, nil).Once()
	suite.mockInvoiceRepo.On("SaveInvoice", ctx, mock.AnythingOfType("domain.Invoice")).Return(nil).Once()

	invoice, err := suite.service.CreateInvoice(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(invoice)
	suite.NotEmpty(invoice.InvoiceID)
	suite.Equal(domain.InvoiceStatusDraft, invoice.Status)
	suite.True(invoice.Total.Equal(dec("100")))
	suite.Equal(creatorUserID, invoice.CreatedBy)
	suite.mockInvoiceRepo.AssertExpectations(suite.T())
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_NonPositiveTotal() {
	ctx := context.Background()
	req := suite.createRequest()
	req.Total = dec("0")

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_UnknownCurrency() {
	ctx := context.Background()
	req := suite.createRequest()
	req.CurrencyCode = "XXX"

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
}

func (suite *InvoiceServiceTestSuite) TestCreateInvoice_DisabledCurrency() {
	ctx := context.Background()
	req := suite.createRequest()
	req.CurrencyCode = "VES"

	ves := &domain.Currency{CurrencyCode: "VES", Rate: dec("36.5"), Precision: 2, Enabled: false}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "VES").Return(ves, nil).Once()

	_, err := suite.service.CreateInvoice(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnknownCurrency)
	suite.mockInvoiceRepo.AssertNotCalled(suite.T(), "SaveInvoice", mock.Anything, mock.Anything)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceByID_LoadsPayments() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{InvoiceID: invoiceID, CurrencyCode: "USD", Total: dec("100")}
	payments := []domain.InvoicePayment{
		{PaymentID: uuid.NewString(), InvoiceID: invoiceID, Amount: dec("30"), CurrencyCode: "USD", CurrencyRate: dec("1")},
	}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindPaymentsByInvoiceID", ctx, invoiceID).Return(payments, nil).Once()

	got, err := suite.service.GetInvoiceByID(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.Len(got.Payments, 1)
}

func (suite *InvoiceServiceTestSuite) TestGetInvoiceHistory_EmptyResult() {
	ctx := context.Background()
	invoiceID := uuid.NewString()
	invoice := &domain.Invoice{InvoiceID: invoiceID, CurrencyCode: "USD", Total: dec("100")}

	suite.mockInvoiceRepo.On("FindInvoiceByID", ctx, invoiceID).Return(invoice, nil).Once()
	suite.mockInvoiceRepo.On("FindHistoryByInvoiceID", ctx, invoiceID).Return(nil, nil).Once()

	history, err := suite.service.GetInvoiceHistory(ctx, invoiceID)

	suite.Require().NoError(err)
	suite.NotNil(history)
	suite.Empty(history)
}

func (suite *InvoiceServiceTestSuite) TestListInvoices_DefaultsLimit() {
	ctx := context.Background()
	companyID := uuid.NewString()
	invoices := []domain.Invoice{
		{InvoiceID: uuid.NewString(), CompanyID: companyID, CurrencyCode: "USD", Total: dec("100")},
	}
	nextToken := "opaque-cursor"

	suite.mockInvoiceRepo.On("ListInvoicesByCompany", ctx, companyID, 20, (*string)(nil)).
		Return(invoices, &nextToken, nil).Once()

	resp, err := suite.service.ListInvoices(ctx, companyID, dto.ListInvoicesParams{})

	suite.Require().NoError(err)
	suite.Len(resp.Invoices, 1)
	suite.Require().NotNil(resp.NextToken)
	suite.Equal(nextToken, *resp.NextToken)
}

func TestInvoiceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceServiceTestSuite))
}
