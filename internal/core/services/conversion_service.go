package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	portsrepo "github.com/avelins/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/utils/validation"
	"github.com/shopspring/decimal"
)

// DefaultAnchorCurrencyCode is the reference currency used to triangulate a
// rate when neither a direct nor an inverse edge is stored.
const DefaultAnchorCurrencyCode = "USD"

// ConversionService resolves an effective exchange rate for a currency pair
// and applies it to an amount. Resolution strategies, in order: direct edge,
// inverse edge, triangulation through the anchor currency. There is no
// multi-hop graph search beyond the single anchor hop.
type ConversionService struct {
	rateRepo     portsrepo.ExchangeRateReader
	currencyRepo portsrepo.CurrencyReader
	anchorCode   string
}

// NewConversionService creates a new ConversionService. An empty anchorCode
// falls back to DefaultAnchorCurrencyCode.
func NewConversionService(rateRepo portsrepo.ExchangeRateReader, currencyRepo portsrepo.CurrencyReader, anchorCode string) *ConversionService {
	if anchorCode == "" {
		anchorCode = DefaultAnchorCurrencyCode
	}
	return &ConversionService{
		rateRepo:     rateRepo,
		currencyRepo: currencyRepo,
		anchorCode:   strings.ToUpper(anchorCode),
	}
}

// Convert resolves the rate for (fromCode, toCode) and computes
// amount * rate at full decimal precision. Store-level not-found errors
// never leak out of the multi-step resolution; any terminal failure is a
// CantConvert with a reason naming the strategy that failed last.
func (s *ConversionService) Convert(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error) {
	fromCode = strings.ToUpper(fromCode)
	toCode = strings.ToUpper(toCode)
	if !validation.IsValidCurrencyCode(fromCode) || !validation.IsValidCurrencyCode(toCode) {
		return nil, fmt.Errorf("%w: currency codes must be 3 uppercase letters", apperrors.ErrValidation)
	}
	if !amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be a positive number", apperrors.ErrValidation)
	}

	fromCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, fromCode)
	if err != nil {
		return nil, cantConvertOnMissing(err, "one or both currencies do not exist")
	}
	toCurrency, err := s.currencyRepo.FindCurrencyByCode(ctx, toCode)
	if err != nil {
		return nil, cantConvertOnMissing(err, "one or both currencies do not exist")
	}

	rate, err := s.resolveRate(ctx, fromCurrency, toCurrency)
	if err != nil {
		return nil, err
	}

	return &domain.Conversion{
		FromCurrency:    *fromCurrency,
		ToCurrency:      *toCurrency,
		Rate:            rate,
		Amount:          amount,
		ConvertedAmount: amount.Mul(rate),
	}, nil
}

// resolveRate tries the three strategies in order; the first success wins.
func (s *ConversionService) resolveRate(ctx context.Context, from, to *domain.Currency) (decimal.Decimal, error) {
	// A currency converts to itself at par.
	if from.CurrencyID == to.CurrencyID {
		return decimal.NewFromInt(1), nil
	}

	// Direct edge.
	direct, err := s.rateRepo.FindExchangeRate(ctx, from.CurrencyID, to.CurrencyID)
	if err == nil {
		return direct.Rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Decimal{}, err
	}

	// Inverse edge.
	inverse, err := s.rateRepo.FindExchangeRate(ctx, to.CurrencyID, from.CurrencyID)
	if err == nil {
		return decimal.NewFromInt(1).Div(inverse.Rate), nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return decimal.Decimal{}, err
	}

	return s.triangulate(ctx, from, to)
}

// triangulate computes the rate through the anchor currency. With both legs
// sharing the anchor the result is exact: 1 anchor = r1 from-units = r2
// to-units, so 1 from-unit = r2/r1 to-units.
func (s *ConversionService) triangulate(ctx context.Context, from, to *domain.Currency) (decimal.Decimal, error) {
	anchor, err := s.currencyRepo.FindCurrencyByCode(ctx, s.anchorCode)
	if err != nil {
		return decimal.Decimal{}, cantConvertOnMissing(err,
			"the anchor currency needed to compute the rate is missing")
	}

	anchorToFrom, err := s.rateRepo.FindExchangeRate(ctx, anchor.CurrencyID, from.CurrencyID)
	if err != nil {
		return decimal.Decimal{}, cantConvertOnMissing(err,
			"insufficient data to compute the rate")
	}
	anchorToTo, err := s.rateRepo.FindExchangeRate(ctx, anchor.CurrencyID, to.CurrencyID)
	if err != nil {
		return decimal.Decimal{}, cantConvertOnMissing(err,
			"insufficient data to compute the rate")
	}

	return anchorToTo.Rate.Div(anchorToFrom.Rate), nil
}

// cantConvertOnMissing translates a not-found error from one resolution step
// into a CantConvert with the given reason. Other errors, such as an
// unavailable store, propagate unchanged.
func cantConvertOnMissing(err error, reason string) error {
	if errors.Is(err, apperrors.ErrNotFound) {
		return apperrors.NewCantConvertError("conversion is not possible: " + reason)
	}
	return err
}
