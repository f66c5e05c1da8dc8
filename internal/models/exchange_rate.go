package models

import (
	"github.com/shopspring/decimal"
)

// ExchangeRate stores a directed conversion edge between two currencies:
// 1 unit of the base currency equals Rate units of the target currency.
// The reverse direction is a separate, independently stored row.
// Note: Rate uses a precise decimal type, never float64.
type ExchangeRate struct {
	ExchangeRateID   int64           `json:"exchangeRateID"`   // Surrogate key
	BaseCurrencyID   int64           `json:"baseCurrencyID"`   // FK -> Currency.currencyID
	TargetCurrencyID int64           `json:"targetCurrencyID"` // FK -> Currency.currencyID
	Rate             decimal.Decimal `json:"rate"`             // Positive, at most 6 fractional digits
}
