package services_test

import (
	"context"
	"testing"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/core/services"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConversionServiceTestSuite struct {
	suite.Suite
	mockRateRepo     *MockExchangeRateRepository
	mockCurrencyRepo *MockCurrencyRepository
	service          *services.ConversionService

	usd *domain.Currency
	eur *domain.Currency
	jpy *domain.Currency
}

func (suite *ConversionServiceTestSuite) SetupTest() {
	suite.mockRateRepo = new(MockExchangeRateRepository)
	suite.mockCurrencyRepo = new(MockCurrencyRepository)
	suite.service = services.NewConversionService(suite.mockRateRepo, suite.mockCurrencyRepo, "USD")

	suite.usd = &domain.Currency{CurrencyID: 1, Code: "USD", FullName: "US Dollar", Sign: "$"}
	suite.eur = &domain.Currency{CurrencyID: 2, Code: "EUR", FullName: "Euro", Sign: "€"}
	suite.jpy = &domain.Currency{CurrencyID: 3, Code: "JPY", FullName: "Japanese Yen", Sign: "¥"}
}

func (suite *ConversionServiceTestSuite) noRate(baseID, targetID int64) *mock.Call {
	return suite.mockRateRepo.On("FindExchangeRate", mock.Anything, baseID, targetID).
		Return(nil, apperrors.NewNotFoundError("no exchange rate for currency pair"))
}

func (suite *ConversionServiceTestSuite) TestConvert_DirectRate() {
	ctx := context.Background()
	direct := &domain.ExchangeRate{
		ExchangeRateID:   1,
		BaseCurrencyID:   suite.usd.CurrencyID,
		TargetCurrencyID: suite.eur.CurrencyID,
		Rate:             decimal.RequireFromString("0.90"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(2)).Return(direct, nil).Once()

	conv, err := suite.service.Convert(ctx, "USD", "EUR", decimal.RequireFromString("100"))

	suite.Require().NoError(err)
	suite.True(conv.Rate.Equal(direct.Rate))
	suite.Equal("90", conv.ConvertedAmount.String())
	// A direct hit ends resolution; neither the inverse pair nor the anchor
	// is ever consulted.
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindExchangeRate", 1)
}

func (suite *ConversionServiceTestSuite) TestConvert_InverseRate() {
	ctx := context.Background()
	inverse := &domain.ExchangeRate{
		ExchangeRateID:   1,
		BaseCurrencyID:   suite.usd.CurrencyID,
		TargetCurrencyID: suite.eur.CurrencyID,
		Rate:             decimal.RequireFromString("0.80"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.noRate(int64(2), int64(1)).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(2)).Return(inverse, nil).Once()

	conv, err := suite.service.Convert(ctx, "EUR", "USD", decimal.RequireFromString("10"))

	suite.Require().NoError(err)
	suite.Equal("1.25", conv.Rate.String())
	suite.Equal("12.5", conv.ConvertedAmount.String())
}

func (suite *ConversionServiceTestSuite) TestConvert_TriangulatedRate() {
	ctx := context.Background()
	usdToEur := &domain.ExchangeRate{
		ExchangeRateID:   1,
		BaseCurrencyID:   suite.usd.CurrencyID,
		TargetCurrencyID: suite.eur.CurrencyID,
		Rate:             decimal.RequireFromString("0.90"),
	}
	usdToJpy := &domain.ExchangeRate{
		ExchangeRateID:   2,
		BaseCurrencyID:   suite.usd.CurrencyID,
		TargetCurrencyID: suite.jpy.CurrencyID,
		Rate:             decimal.RequireFromString("150.0"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "JPY").Return(suite.jpy, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.noRate(int64(2), int64(3)).Once()
	suite.noRate(int64(3), int64(2)).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(2)).Return(usdToEur, nil).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(3)).Return(usdToJpy, nil).Once()

	conv, err := suite.service.Convert(ctx, "EUR", "JPY", decimal.RequireFromString("10"))

	suite.Require().NoError(err)
	// 150.0 / 0.90 rounded half up at presentation precision.
	suite.Equal("166.666667", conv.Rate.Round(6).String())
	suite.Equal("1666.67", conv.ConvertedAmount.Round(2).String())
	suite.mockRateRepo.AssertExpectations(suite.T())
}

func (suite *ConversionServiceTestSuite) TestConvert_SameCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Twice()

	conv, err := suite.service.Convert(ctx, "USD", "USD", decimal.RequireFromString("42.50"))

	suite.Require().NoError(err)
	suite.True(conv.Rate.Equal(decimal.NewFromInt(1)))
	suite.True(conv.ConvertedAmount.Equal(decimal.RequireFromString("42.50")))
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_UnknownCurrency() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "ZZZ").
		Return(nil, apperrors.NewNotFoundError("currency with code ZZZ not found")).Once()

	conv, err := suite.service.Convert(ctx, "USD", "ZZZ", decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCantConvert)
	suite.Nil(conv)
	suite.mockRateRepo.AssertNotCalled(suite.T(), "FindExchangeRate", mock.Anything, mock.Anything, mock.Anything)
}

func (suite *ConversionServiceTestSuite) TestConvert_AnchorCurrencyMissing() {
	ctx := context.Background()

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "JPY").Return(suite.jpy, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").
		Return(nil, apperrors.NewNotFoundError("currency with code USD not found")).Once()
	suite.noRate(int64(2), int64(3)).Once()
	suite.noRate(int64(3), int64(2)).Once()

	conv, err := suite.service.Convert(ctx, "EUR", "JPY", decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCantConvert)
	suite.Nil(conv)
}

func (suite *ConversionServiceTestSuite) TestConvert_AnchorLegMissing() {
	ctx := context.Background()
	usdToEur := &domain.ExchangeRate{
		ExchangeRateID:   1,
		BaseCurrencyID:   suite.usd.CurrencyID,
		TargetCurrencyID: suite.eur.CurrencyID,
		Rate:             decimal.RequireFromString("0.90"),
	}

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "JPY").Return(suite.jpy, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.noRate(int64(2), int64(3)).Once()
	suite.noRate(int64(3), int64(2)).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(2)).Return(usdToEur, nil).Once()
	suite.noRate(int64(1), int64(3)).Once()

	conv, err := suite.service.Convert(ctx, "EUR", "JPY", decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrCantConvert)
	suite.Nil(conv)
}

func (suite *ConversionServiceTestSuite) TestConvert_StoreFailurePropagates() {
	ctx := context.Background()
	storeErr := apperrors.NewAppError(503, "the currency store is unreachable", apperrors.ErrUnavailable)

	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "USD").Return(suite.usd, nil).Once()
	suite.mockCurrencyRepo.On("FindCurrencyByCode", ctx, "EUR").Return(suite.eur, nil).Once()
	suite.mockRateRepo.On("FindExchangeRate", ctx, int64(1), int64(2)).Return(nil, storeErr).Once()

	conv, err := suite.service.Convert(ctx, "USD", "EUR", decimal.RequireFromString("10"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrUnavailable)
	suite.NotErrorIs(err, apperrors.ErrCantConvert)
	suite.Nil(conv)
	// Resolution stops at the first store failure instead of trying fallbacks.
	suite.mockRateRepo.AssertNumberOfCalls(suite.T(), "FindExchangeRate", 1)
}

func (suite *ConversionServiceTestSuite) TestConvert_InvalidInput() {
	ctx := context.Background()

	_, err := suite.service.Convert(ctx, "US", "EUR", decimal.RequireFromString("10"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Convert(ctx, "USD", "EUR", decimal.RequireFromString("-10"))
	suite.ErrorIs(err, apperrors.ErrValidation)

	_, err = suite.service.Convert(ctx, "USD", "EUR", decimal.Zero)
	suite.ErrorIs(err, apperrors.ErrValidation)

	suite.mockCurrencyRepo.AssertNotCalled(suite.T(), "FindCurrencyByCode", mock.Anything, mock.Anything)
}

func TestConversionServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConversionServiceTestSuite))
}
