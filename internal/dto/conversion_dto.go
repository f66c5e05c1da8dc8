package dto

import (
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// AmountPresentationPlaces is the number of fractional digits a converted
// amount is rounded to in API responses.
const AmountPresentationPlaces = 2

// ConversionResponse defines the API shape of a currency conversion result.
type ConversionResponse struct {
	BaseCurrency    CurrencyResponse `json:"baseCurrency"`
	TargetCurrency  CurrencyResponse `json:"targetCurrency"`
	Rate            decimal.Decimal  `json:"rate"`
	Amount          decimal.Decimal  `json:"amount"`
	ConvertedAmount decimal.Decimal  `json:"convertedAmount"`
}

// ToConversionResponse converts a domain.Conversion to its DTO. Rounding
// happens here, at the presentation boundary: the rate half-up to 6 places,
// the converted amount half-up to 2. Internal arithmetic stays at full
// decimal precision.
func ToConversionResponse(conv *domain.Conversion) ConversionResponse {
	return ConversionResponse{
		BaseCurrency:    ToCurrencyResponse(&conv.FromCurrency),
		TargetCurrency:  ToCurrencyResponse(&conv.ToCurrency),
		Rate:            conv.Rate.Round(RatePresentationPlaces),
		Amount:          conv.Amount,
		ConvertedAmount: conv.ConvertedAmount.Round(AmountPresentationPlaces),
	}
}
