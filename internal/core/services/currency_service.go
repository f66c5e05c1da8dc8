package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/avelins/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/dto"
	"github.com/avelins/currency_exchange_app/internal/utils/validation"
)

// CurrencyService provides business logic for currency reference data.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepositoryFacade
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepositoryFacade) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// CreateCurrency validates and persists a new currency. Validation runs
// before any store interaction, so a rejected request has zero side effects.
func (s *CurrencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest) (*domain.Currency, error) {
	if !validation.IsValidCurrencyCode(req.Code) {
		return nil, fmt.Errorf("%w: currency code must be 3 uppercase letters", apperrors.ErrValidation)
	}
	if !validation.IsValidCurrencyName(req.Name) {
		return nil, fmt.Errorf("%w: currency name must be English words starting with a capital letter", apperrors.ErrValidation)
	}
	if !validation.IsValidCurrencySign(req.Sign) {
		return nil, fmt.Errorf("%w: currency sign must be a single currency symbol", apperrors.ErrValidation)
	}

	currency := domain.Currency{
		Code:     req.Code,
		FullName: req.Name,
		Sign:     req.Sign,
	}

	if err := s.currencyRepo.SaveCurrency(ctx, &currency); err != nil {
		return nil, fmt.Errorf("failed to create currency: %w", err)
	}

	return &currency, nil
}

// GetCurrencyByCode retrieves a currency by its 3-letter code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if !validation.IsValidCurrencyCode(currencyCode) {
		return nil, fmt.Errorf("%w: currency code must be 3 letters", apperrors.ErrValidation)
	}

	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		return nil, fmt.Errorf("failed to get currency by code: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	// Return empty slice if no currencies found, not nil
	if currencies == nil {
		return []domain.Currency{}, nil
	}
	return currencies, nil
}
