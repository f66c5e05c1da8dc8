package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate is a directed rate edge: 1 unit of the base currency converts
// to Rate units of the target currency.
type ExchangeRate struct {
	ExchangeRateID   int64           `json:"exchangeRateID"`
	BaseCurrencyID   int64           `json:"baseCurrencyID"`
	TargetCurrencyID int64           `json:"targetCurrencyID"`
	Rate             decimal.Decimal `json:"rate"`
}

// ExchangeRateDetail is an ExchangeRate with both currencies resolved.
type ExchangeRateDetail struct {
	ExchangeRateID int64           `json:"exchangeRateID"`
	BaseCurrency   Currency        `json:"baseCurrency"`
	TargetCurrency Currency        `json:"targetCurrency"`
	Rate           decimal.Decimal `json:"rate"`
}
