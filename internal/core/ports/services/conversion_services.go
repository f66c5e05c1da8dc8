package services

import (
	"context"

	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ConversionSvc resolves an exchange rate for a currency pair and applies it
// to an amount.
type ConversionSvc interface {
	// Convert produces the effective rate for (fromCode, toCode) using the
	// cheapest available evidence (direct edge, inverse edge, or
	// triangulation via the anchor currency) and applies it to amount.
	Convert(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error)
}
