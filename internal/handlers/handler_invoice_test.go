package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/dto"
	"github.com/invopay/invoicing_backend/internal/handlers"
	"github.com/invopay/invoicing_backend/internal/middleware"
)

// --- Mock InvoiceService ---
type MockInvoiceService struct {
	mock.Mock
}

func (m *MockInvoiceService) CreateInvoice(ctx context.Context, req dto.CreateInvoiceRequest, creatorUserID string) (*domain.Invoice, error) {
	args := m.Called(ctx, req, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceByID(ctx context.Context, invoiceID string) (*domain.Invoice, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Invoice), args.Error(1)
}

func (m *MockInvoiceService) ListInvoices(ctx context.Context, companyID string, params dto.ListInvoicesParams) (*dto.ListInvoicesResponse, error) {
	args := m.Called(ctx, companyID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListInvoicesResponse), args.Error(1)
}

func (m *MockInvoiceService) GetInvoiceHistory(ctx context.Context, invoiceID string) ([]domain.InvoiceHistory, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoiceHistory), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.InvoiceSvcFacade = (*MockInvoiceService)(nil)

// --- Mock PaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) RecordPayment(ctx context.Context, invoiceID string, req dto.RecordPaymentRequest, attachment *dto.AttachmentUpload, creatorUserID string) (*domain.InvoicePayment, error) {
	args := m.Called(ctx, invoiceID, req, attachment, creatorUserID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.InvoicePayment), args.Error(1)
}

func (m *MockPaymentService) PreparePaymentForm(ctx context.Context, invoiceID string) (*dto.PaymentFormResponse, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PaymentFormResponse), args.Error(1)
}

func (m *MockPaymentService) ListPayments(ctx context.Context, invoiceID string) ([]domain.InvoicePayment, error) {
	args := m.Called(ctx, invoiceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.InvoicePayment), args.Error(1)
}

// Ensure mock implements the interface
var _ portssvc.PaymentSvcFacade = (*MockPaymentService)(nil)

// --- Test Suite ---
type InvoiceHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockInvoiceService *MockInvoiceService
	mockPaymentService *MockPaymentService
	jwtSecret          string
}

// generateTestToken creates a dummy JWT for testing.
func (suite *InvoiceHandlerTestSuite) generateTestToken(userID string) string {
	claims := jwt.RegisteredClaims{
		Issuer:    "invoicing-test",
		Subject:   userID,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(1 * time.Hour)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(suite.jwtSecret))
	if err != nil {
		suite.FailNow("Failed to sign test token", err.Error())
	}
	return signed
}

func (suite *InvoiceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	dto.RegisterValidators()
	suite.router = gin.New()
	suite.jwtSecret = "test-secret-key-that-is-long-enough"

	suite.router.Use(middleware.AuthMiddleware(suite.jwtSecret))

	suite.mockInvoiceService = new(MockInvoiceService)
	suite.mockPaymentService = new(MockPaymentService)

	v1 := suite.router.Group("/api/v1")
	handlers.RegisterInvoiceRoutes(v1, suite.mockInvoiceService, suite.mockPaymentService)
}

// --- Test Cases ---

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_Success() {
	invoiceID := uuid.NewString()
	userID := uuid.NewString()
	payment := &domain.InvoicePayment{
		PaymentID:    uuid.NewString(),
		InvoiceID:    invoiceID,
		Amount:       decimal.RequireFromString("20.00"),
		CurrencyCode: "USD",
		CurrencyRate: decimal.NewFromInt(1),
	}

	suite.mockPaymentService.On("RecordPayment", mock.Anything, invoiceID, mock.AnythingOfType("dto.RecordPaymentRequest"), (*dto.AttachmentUpload)(nil), userID).
		Return(payment, nil).Once()

	body := `{"accountID":"` + uuid.NewString() + `","paidAt":"2026-03-15T00:00:00Z","amount":"20.00","currencyCode":"USD","paymentMethod":"offline"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusCreated, w.Code, w.Body.String())
	var resp dto.PaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.Equal(payment.PaymentID, resp.PaymentID)
	suite.mockPaymentService.AssertExpectations(suite.T())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_Overpayment_Returns422() {
	invoiceID := uuid.NewString()
	userID := uuid.NewString()

	overErr := &apperrors.OverpaymentError{
		MaxPayable:   decimal.RequireFromString("20.00"),
		CurrencyCode: "USD",
	}
	suite.mockPaymentService.On("RecordPayment", mock.Anything, invoiceID, mock.AnythingOfType("dto.RecordPaymentRequest"), (*dto.AttachmentUpload)(nil), userID).
		Return(nil, overErr).Once()

	body := `{"accountID":"` + uuid.NewString() + `","paidAt":"2026-03-15T00:00:00Z","amount":"20.01","currencyCode":"USD","paymentMethod":"offline"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnprocessableEntity, w.Code, w.Body.String())
	var resp dto.OverpaymentResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.MaxPayable.Equal(decimal.RequireFromString("20.00")))
	suite.Equal("USD", resp.Currency)
	suite.NotEmpty(resp.Error)
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_UnknownCurrency_Returns400() {
	invoiceID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockPaymentService.On("RecordPayment", mock.Anything, invoiceID, mock.AnythingOfType("dto.RecordPaymentRequest"), (*dto.AttachmentUpload)(nil), userID).
		Return(nil, apperrors.ErrUnknownCurrency).Once()

	body := `{"accountID":"` + uuid.NewString() + `","paidAt":"2026-03-15T00:00:00Z","amount":"20.00","currencyCode":"XXX","paymentMethod":"offline"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusBadRequest, w.Code, w.Body.String())
}

func (suite *InvoiceHandlerTestSuite) TestRecordPayment_MissingToken_Returns401() {
	invoiceID := uuid.NewString()

	req := httptest.NewRequest(http.MethodPost, "/api/v1/invoices/"+invoiceID+"/payments", strings.NewReader(`{}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusUnauthorized, w.Code)
	suite.mockPaymentService.AssertNotCalled(suite.T(), "RecordPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (suite *InvoiceHandlerTestSuite) TestGetPaymentForm_Success() {
	invoiceID := uuid.NewString()
	userID := uuid.NewString()

	form := &dto.PaymentFormResponse{
		DefaultCurrency: "USD",
		PaymentMethods:  []string{"offline"},
		Outstanding:     decimal.RequireFromString("70"),
		CurrencyCode:    "USD",
	}
	suite.mockPaymentService.On("PreparePaymentForm", mock.Anything, invoiceID).Return(form, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID+"/payments/new", nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusOK, w.Code, w.Body.String())
	var resp dto.PaymentFormResponse
	suite.Require().NoError(json.Unmarshal(w.Body.Bytes(), &resp))
	suite.True(resp.Outstanding.Equal(decimal.RequireFromString("70")))
	suite.Equal("USD", resp.DefaultCurrency)
}

func (suite *InvoiceHandlerTestSuite) TestGetInvoice_NotFound_Returns404() {
	invoiceID := uuid.NewString()
	userID := uuid.NewString()

	suite.mockInvoiceService.On("GetInvoiceByID", mock.Anything, invoiceID).
		Return(nil, apperrors.ErrNotFound).Once()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/invoices/"+invoiceID, nil)
	req.Header.Set("Authorization", "Bearer "+suite.generateTestToken(userID))
	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)

	suite.Equal(http.StatusNotFound, w.Code)
}

func TestInvoiceHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(InvoiceHandlerTestSuite))
}
