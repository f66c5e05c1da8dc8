package services_test

import (
	"context"
	"testing"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/core/services"
	"github.com/avelins/currency_exchange_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	args := m.Called(ctx, currency)
	return args.Error(0)
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	args := m.Called(ctx, currencyID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Test Suite ---
type CurrencyServiceTestSuite struct {
	suite.Suite
	mockCurrencyRepo *MockCurrencyRepository
	service          *services.CurrencyService
}

func (suite *CurrencyServiceTestSuite) SetupTest() {
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewCurrencyService(suite.mockCurrencyRepo)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Success() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Name: "Euro", Code: "EUR", Sign: "€"}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("*domain.Currency")).
		Run(func(args mock.Arguments) {
			currency := args.Get(1).(*domain.Currency)
			currency.CurrencyID = 42
		}).
		Return(nil).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().NoError(err)
	suite.Require().NotNil(currency)
	suite.Equal(int64(42), currency.CurrencyID)
	suite.Equal("EUR", currency.Code)
	suite.Equal("Euro", currency.FullName)
	suite.Equal("€", currency.Sign)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidCode() {
	ctx := context.Background()

	for _, code := range []string{"eur", "EU", "EURO", "E1R", ""} {
		req := dto.CreateCurrencyRequest{Name: "Euro", Code: code, Sign: "€"}
		currency, err := suite.service.CreateCurrency(ctx, req)
		suite.Require().Error(err, "code %q should be rejected", code)
		suite.ErrorIs(err, apperrors.ErrValidation)
		suite.Nil(currency)
	}
	// Validation fails fast: the store is never touched.
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidName() {
	ctx := context.Background()

	for _, name := range []string{"", "euro", "US  Dollar", "Euro2", " Euro"} {
		req := dto.CreateCurrencyRequest{Name: name, Code: "EUR", Sign: "€"}
		_, err := suite.service.CreateCurrency(ctx, req)
		suite.Require().Error(err, "name %q should be rejected", name)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_InvalidSign() {
	ctx := context.Background()

	for _, sign := range []string{"", "E", "$$", "%"} {
		req := dto.CreateCurrencyRequest{Name: "Euro", Code: "EUR", Sign: sign}
		_, err := suite.service.CreateCurrency(ctx, req)
		suite.Require().Error(err, "sign %q should be rejected", sign)
		suite.ErrorIs(err, apperrors.ErrValidation)
	}
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "SaveCurrency", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestCreateCurrency_Duplicate() {
	ctx := context.Background()
	req := dto.CreateCurrencyRequest{Name: "Euro", Code: "EUR", Sign: "€"}

	suite.mockCurrencyRepo.On("SaveCurrency", ctx, mock.AnythingOfType("*domain.Currency")).
		Return(apperrors.NewDuplicateError("currency with code EUR already exists")).Once()

	currency, err := suite.service.CreateCurrency(ctx, req)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrDuplicate)
	suite.Nil(currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_Success() {
	ctx := context.Background()
	expected := &domain.Currency{CurrencyID: 1, Code: "USD", FullName: "US Dollar", Sign: "$"}

	// Lowercase input is normalized before hitting the store.
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(expected, nil).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "usd")

	suite.Require().NoError(err)
	suite.Equal(expected, currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_InvalidCode() {
	ctx := context.Background()

	currency, err := suite.service.GetCurrencyByCode(ctx, "US")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.Nil(currency)
	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func (suite *CurrencyServiceTestSuite) TestGetCurrencyByCode_NotFound() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").
		Return(nil, apperrors.NewNotFoundError("currency with code ZZZ not found")).Once()

	currency, err := suite.service.GetCurrencyByCode(ctx, "ZZZ")

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.Nil(currency)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_Success() {
	ctx := context.Background()
	expected := []domain.Currency{
		{CurrencyID: 1, Code: "EUR", FullName: "Euro", Sign: "€"},
		{CurrencyID: 2, Code: "USD", FullName: "US Dollar", Sign: "$"},
	}

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(expected, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.Equal(expected, currencies)
	suite.mockCurrencyRepo.AssertExpectations(suite.T())
}

func (suite *CurrencyServiceTestSuite) TestListCurrencies_EmptyIsNotNil() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("ListCurrencies", ctx).Return(nil, nil).Once()

	currencies, err := suite.service.ListCurrencies(ctx)

	suite.Require().NoError(err)
	suite.NotNil(currencies)
	suite.Empty(currencies)
}

func TestCurrencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CurrencyServiceTestSuite))
}
