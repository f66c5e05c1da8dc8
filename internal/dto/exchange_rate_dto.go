package dto

import (
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RatePresentationPlaces is the number of fractional digits a rate is
// rounded to in API responses. Stored rates keep their exact value.
const RatePresentationPlaces = 6

// CreateExchangeRateRequest defines the structure for creating a new
// directed exchange rate.
type CreateExchangeRateRequest struct {
	BaseCurrencyCode   string          `json:"baseCurrencyCode" binding:"required,currency_code"`
	TargetCurrencyCode string          `json:"targetCurrencyCode" binding:"required,currency_code"`
	Rate               decimal.Decimal `json:"rate" binding:"required"`
}

// UpdateExchangeRateRequest defines the structure for updating the rate
// value of an existing currency pair.
type UpdateExchangeRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// ExchangeRateResponse defines the API shape of a rate with both currencies
// resolved.
type ExchangeRateResponse struct {
	ID             int64            `json:"id"`
	BaseCurrency   CurrencyResponse `json:"baseCurrency"`
	TargetCurrency CurrencyResponse `json:"targetCurrency"`
	Rate           decimal.Decimal  `json:"rate"`
}

// ToExchangeRateResponse converts a domain.ExchangeRateDetail to its DTO.
func ToExchangeRateResponse(rate *domain.ExchangeRateDetail) ExchangeRateResponse {
	return ExchangeRateResponse{
		ID:             rate.ExchangeRateID,
		BaseCurrency:   ToCurrencyResponse(&rate.BaseCurrency),
		TargetCurrency: ToCurrencyResponse(&rate.TargetCurrency),
		Rate:           rate.Rate.Round(RatePresentationPlaces),
	}
}

// ToListExchangeRateResponse converts a slice of rate details to DTOs.
func ToListExchangeRateResponse(rates []domain.ExchangeRateDetail) []ExchangeRateResponse {
	responses := make([]ExchangeRateResponse, len(rates))
	for i, rate := range rates {
		responses[i] = ToExchangeRateResponse(&rate)
	}
	return responses
}
