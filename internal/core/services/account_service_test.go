package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/invopay/invoicing_backend/internal/apperrors"
	"github.com/invopay/invoicing_backend/internal/core/domain"
	portssvc "github.com/invopay/invoicing_backend/internal/core/ports/services"
	"github.com/invopay/invoicing_backend/internal/core/services"
	"github.com/invopay/invoicing_backend/internal/dto"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockAccountRepo  *MockAccountRepositoryForPayments
	mockCurrencyRepo *MockCurrencyRepository
	service          portssvc.AccountSvcFacade
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.mockAccountRepo = new(MockAccountRepositoryForPayments)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewAccountService(suite.mockAccountRepo, suite.mockCurrencyRepo)
}

// --- Test Cases ---

func (suite *AccountServiceTestSuite) TestCreateAccount_Success() {
	ctx := context.Background()
	creatorUserID := uuid.NewString()
	req := dto.CreateAccountRequest{
		CompanyID:    uuid.NewString(),
		Name:         "Operating Account",
		Number:       "DE89370400440532013000",
		CurrencyCode: "EUR",
		IsDefault:    true,
	}

	eur := &domain.Currency{CurrencyCode: "EUR", Rate: dec("0.8"), Precision: 2, Enabled: true}
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(eur, nil).Once()
	suite.mockAccountRepo.On("SaveAccount", ctx, mock.AnythingOfType("domain.Account")).Return(nil).Once()

	account, err := suite.service.CreateAccount(ctx, req, creatorUserID)

	suite.Require().NoError(err)
	suite.Require().NotNil(account)
	suite.NotEmpty(account.AccountID)
	suite.True(account.IsDefault)
	suite.True(account.Enabled, "new accounts are enabled")
	suite.Equal(creatorUserID, account.CreatedBy)
	suite.mockAccountRepo.AssertExpectations(suite.T())
}

func (suite *AccountServiceTestSuite) TestCreateAccount_UnconfiguredCurrency() {
	ctx := context.Background()
	req := dto.CreateAccountRequest{
		CompanyID:    uuid.NewString(),
		Name:         "Operating Account",
		CurrencyCode: "XXX",
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "XXX").Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.CreateAccount(ctx, req, uuid.NewString())

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockAccountRepo.AssertNotCalled(suite.T(), "SaveAccount", mock.Anything, mock.Anything)
}

func (suite *AccountServiceTestSuite) TestListAccounts_EmptyResult() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockAccountRepo.On("ListAccountsByCompany", ctx, companyID, true).Return(nil, nil).Once()

	accounts, err := suite.service.ListAccounts(ctx, companyID, true)

	suite.Require().NoError(err)
	suite.NotNil(accounts)
	suite.Empty(accounts)
}

func (suite *AccountServiceTestSuite) TestGetDefaultAccount_NotFound() {
	ctx := context.Background()
	companyID := uuid.NewString()

	suite.mockAccountRepo.On("FindDefaultAccount", ctx, companyID).Return(nil, apperrors.ErrNotFound).Once()

	account, err := suite.service.GetDefaultAccount(ctx, companyID)

	suite.Require().Error(err)
	suite.Nil(account)
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
