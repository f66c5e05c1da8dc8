package dto

import (
	"github.com/avelins/currency_exchange_app/internal/core/domain"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
// The currency_* tags are custom validators registered at startup.
type CreateCurrencyRequest struct {
	Name string `json:"name" binding:"required,currency_name"`
	Code string `json:"code" binding:"required,currency_code"`
	Sign string `json:"sign" binding:"required,currency_sign"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Code string `json:"code"`
	Sign string `json:"sign"`
}

// ToCurrencyResponse converts a domain.Currency to a CurrencyResponse DTO.
func ToCurrencyResponse(curr *domain.Currency) CurrencyResponse {
	return CurrencyResponse{
		ID:   curr.CurrencyID,
		Name: curr.FullName,
		Code: curr.Code,
		Sign: curr.Sign,
	}
}

// ToListCurrencyResponse converts a slice of domain currencies to DTOs.
func ToListCurrencyResponse(currencies []domain.Currency) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i, curr := range currencies {
		res[i] = ToCurrencyResponse(&curr)
	}
	return res
}
