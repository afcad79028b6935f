package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/core/services"
	"github.com/invopay/invoicing_backend/internal/dto"
)

// --- Test Suite Setup ---

type CurrencyServiceTestSuite struct {
	suite.Suite
	mockRepo *MockCurrencyRepository
	service  portssvc.CurrencySvcFacade
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockRepo)
}

// --- Test Cases ---

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.UpsertCurrencyRequest{
		CurrencyCode: "EUR",
		Symbol:       "€",
		Name:         "Euro",
		Rate:         dec("0.8"),
		Precision:    2,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal("EUR", currency.CurrencyCode)
	suite.True(currency.Rate.Equal(dec("0.8")))
	suite.Equal(2, currency.Precision)
	suite.True(currency.Enabled, "currencies are enabled by default")
	suite.Equal(creatorUserID, currency.CreatedBy)
	suite.WithinDuration(time.Now(), currency.CreatedAt, time.Second)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_Disabled() {
	ctx := context.Background()
	disabled := false
	req := dto.UpsertCurrencyRequest{
		CurrencyCode: "VES",
		Symbol:       "Bs.",
		Name:         "Venezuelan Bolívar",
		Rate:         dec("36.5"),
		Precision:    2,
		Enabled:      &disabled,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(nil).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req, uuid.NewString())

	suite.Require().NoError(err)
	suite.False(currency.Enabled)
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_NonPositiveRate() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRequest{
		CurrencyCode: "EUR",
		Symbol:       "€",
		Name:         "Euro",
		Rate:         dec("0"),
		Precision:    2,
	}

	_, err := suite.service.UpsertCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestUpsertCurrency_SaveError() {
	ctx := context.Background()
	req := dto.UpsertCurrencyRequest{
		CurrencyCode: "EUR",
		Symbol:       "€",
		Name:         "Euro",
		Rate:         dec("0.8"),
		Precision:    2,
	}

	suite.mockRepo.On("SaveCurrency", ctx, mock.AnythingOfType("domain.Currency")).Return(assert.AnError).Once()

	currency, err := suite.service.UpsertCurrency(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, assert.AnError)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "XXX")

	suite.Require().Error(err)
	suite.Nil(currency)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyResult() {
	ctx := context.Background()
	suite.mockRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyTable() {
	ctx := context.Background()
	table := domain.CurrencyTable{
		"USD": {CurrencyCode: "USD", Rate: dec("1"), Precision: 2, Enabled: true},
	}
	suite.mockRepo.On("LoadCurrencyTable", ctx).Return(table, nil).Once()

	got, err := suite.service.GetCurrencyTable(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	_, ok := got.Lookup("USD")
	suite.True(ok)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
