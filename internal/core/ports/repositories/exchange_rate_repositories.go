package repositories

import (
	"context"

	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateReader defines read operations for exchange rate data.
type ExchangeRateReader interface {
	// FindExchangeRate retrieves the rate edge for the exact ordered pair
	// (baseCurrencyID, targetCurrencyID). It never falls back to the reverse
	// pair; that fallback belongs to the conversion service.
	FindExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error)

	// ListExchangeRates retrieves all stored rate edges.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error)
}

// ExchangeRateWriter defines write operations for exchange rate data.
type ExchangeRateWriter interface {
	// SaveExchangeRate persists a new directed rate edge and assigns its
	// surrogate id.
	SaveExchangeRate(ctx context.Context, rate *domain.ExchangeRate) error

	// UpdateExchangeRate overwrites the rate value of an existing edge and
	// returns it with its unchanged id. It never inserts a new edge.
	UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error)
}

// ExchangeRateRepositoryFacade combines all rate-related repository interfaces.
type ExchangeRateRepositoryFacade interface {
	ExchangeRateReader
	ExchangeRateWriter
}
