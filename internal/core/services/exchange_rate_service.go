package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/avelins/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/dto"
	"github.com/avelins/currency_exchange_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// ExchangeRateService provides business logic for directed exchange rates.
type ExchangeRateService struct {
	rateRepo     portsrepo.ExchangeRateRepositoryFacade
	currencyRepo portsrepo.CurrencyReader
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(rateRepo portsrepo.ExchangeRateRepositoryFacade, currencyRepo portsrepo.CurrencyReader) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
	}
}

// CreateExchangeRate handles the creation of a new directed rate edge.
// Validation runs before any store interaction. A missing currency surfaces
// as a not-found error, a duplicate ordered pair as a conflict.
func (s *ExchangeRateService) CreateExchangeRate(ctx context.Context, req dto.CreateExchangeRateRequest) (*domain.ExchangeRateDetail, error) {
	baseCode, targetCode, err := normalizeCodePair(req.BaseCurrencyCode, req.TargetCurrencyCode)
	if err != nil {
		return nil, err
	}
	if err := validateRateValue(req.Rate); err != nil {
		return nil, err
	}

	baseCurrency, targetCurrency, err := s.resolvePair(ctx, baseCode, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError("one or both currencies of the pair do not exist")
		}
		return nil, err
	}

	rate := domain.ExchangeRate{
		BaseCurrencyID:   baseCurrency.CurrencyID,
		TargetCurrencyID: targetCurrency.CurrencyID,
		Rate:             req.Rate,
	}

	if err := s.rateRepo.SaveExchangeRate(ctx, &rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate: %w", err)
	}

	return s.toDetail(rate, baseCurrency, targetCurrency), nil
}

// GetExchangeRate retrieves the stored rate for the exact ordered pair of
// currency codes. No inverse fallback happens here; a reverse-only pair is
// still not found.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, baseCode, targetCode string) (*domain.ExchangeRateDetail, error) {
	baseCode, targetCode, err := normalizeCodePair(baseCode, targetCode)
	if err != nil {
		return nil, err
	}

	baseCurrency, targetCurrency, err := s.resolvePair(ctx, baseCode, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"exchange rate %s->%s not found: one or both currencies do not exist", baseCode, targetCode))
		}
		return nil, err
	}

	rate, err := s.rateRepo.FindExchangeRate(ctx, baseCurrency.CurrencyID, targetCurrency.CurrencyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get exchange rate: %w", err)
	}

	return s.toDetail(*rate, baseCurrency, targetCurrency), nil
}

// UpdateExchangeRate overwrites the rate value of an existing edge. The pair
// must already exist; a missing pair (or a missing currency) is not found,
// never an implicit insert.
func (s *ExchangeRateService) UpdateExchangeRate(ctx context.Context, baseCode, targetCode string, req dto.UpdateExchangeRateRequest) (*domain.ExchangeRateDetail, error) {
	baseCode, targetCode, err := normalizeCodePair(baseCode, targetCode)
	if err != nil {
		return nil, err
	}
	if err := validateRateValue(req.Rate); err != nil {
		return nil, err
	}

	baseCurrency, targetCurrency, err := s.resolvePair(ctx, baseCode, targetCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"exchange rate %s->%s not found: one or both currencies do not exist", baseCode, targetCode))
		}
		return nil, err
	}

	rate, err := s.rateRepo.UpdateExchangeRate(ctx, baseCurrency.CurrencyID, targetCurrency.CurrencyID, req.Rate)
	if err != nil {
		return nil, fmt.Errorf("failed to update exchange rate: %w", err)
	}

	return s.toDetail(*rate, baseCurrency, targetCurrency), nil
}

// ListExchangeRates retrieves all stored rates with both currencies resolved.
func (s *ExchangeRateService) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRateDetail, error) {
	rates, err := s.rateRepo.ListExchangeRates(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list exchange rates: %w", err)
	}

	details := make([]domain.ExchangeRateDetail, 0, len(rates))
	for _, rate := range rates {
		baseCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, rate.BaseCurrencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve base currency %d: %w", rate.BaseCurrencyID, err)
		}
		targetCurrency, err := s.currencyRepo.FindCurrencyByID(ctx, rate.TargetCurrencyID)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve target currency %d: %w", rate.TargetCurrencyID, err)
		}
		details = append(details, *s.toDetail(rate, baseCurrency, targetCurrency))
	}
	return details, nil
}

// resolvePair looks up both currencies of a pair by code.
func (s *ExchangeRateService) resolvePair(ctx context.Context, baseCode, targetCode string) (*domain.Currency, *domain.Currency, error) {
	baseCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, baseCode)
	if err != nil {
		return nil, nil, err
	}
	targetCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, targetCode)
	if err != nil {
		return nil, nil, err
	}
	return baseCurrency, targetCurrency, nil
}

func (s *ExchangeRateService) toDetail(rate domain.ExchangeRate, base, target *domain.Currency) *domain.ExchangeRateDetail {
	return &domain.ExchangeRateDetail{
		ExchangeRateID: rate.ExchangeRateID,
		BaseCurrency:   *base,
		TargetCurrency: *target,
		Rate:           rate.Rate,
	}
}

// normalizeCodePair uppercases and validates both currency codes and rejects
// self pairs. A rate from a currency to itself is a caller mistake, not data.
func normalizeCodePair(baseCode, targetCode string) (string, string, error) {
	baseCode = strings.ToUpper(baseCode)
	targetCode = strings.ToUpper(targetCode)
	if !validation.IsValidCurrencyCode(baseCode) || !validation.IsValidCurrencyCode(targetCode) {
		return "", "", fmt.Errorf("%w: currency codes must be 3 uppercase letters", apperrors.ErrValidation)
	}
	if baseCode == targetCode {
		return "", "", fmt.Errorf("%w: base and target currency codes cannot be the same", apperrors.ErrValidation)
	}
	return baseCode, targetCode, nil
}

func validateRateValue(rate decimal.Decimal) error {
	if !validation.IsValidRate(rate) {
		return fmt.Errorf("%w: rate must be positive with at most %d decimal places",
			apperrors.ErrValidation, validation.RateFractionalDigits)
	}
	return nil
}
