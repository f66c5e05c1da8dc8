package services

import (
	"context"

	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/dto"
)

// ExchangeRateReaderSvc defines read operations for exchange rates.
type ExchangeRateReaderSvc interface {
	// GetExchangeRate retrieves the stored rate for the exact ordered pair of
	// currency codes, with both currencies resolved.
	GetExchangeRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRateDetail, error)

	// ListExchangeRates retrieves all stored rates with resolved currencies.
	ListExchangeRates(ctx context.Context) ([]domain.ExchangeRateDetail, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rates.
type ExchangeRateWriterSvc interface {
	// CreateExchangeRate validates and persists a new directed rate edge.
	CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRateDetail, error)

	// UpdateExchangeRate overwrites the rate value of an existing edge.
	UpdateExchangeRate(ctx context.Context, baseCode, targetCode string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRateDetail, error)
}

// ExchangeRateSvcFacade combines all rate-related service interfaces.
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
