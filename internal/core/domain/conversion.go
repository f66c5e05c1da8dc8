package domain

import (
	"github.com/shopspring/decimal"
)

// Conversion is the result of applying a resolved exchange rate to an amount.
// Rate and ConvertedAmount keep full decimal precision; rounding for
// presentation happens at the DTO boundary.
type Conversion struct {
	FromCurrency    Currency
	ToCurrency      Currency
	Rate            decimal.Decimal
	Amount          decimal.Decimal
	ConvertedAmount decimal.Decimal
}
