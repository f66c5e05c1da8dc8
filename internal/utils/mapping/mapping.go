// Package mapping converts between persistence models and domain entities.
package mapping

import (
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	"github.com/avelins/currency_exchange_app/internal/models"
)

// ToModelCurrency converts a domain currency to its persistence model.
func ToModelCurrency(c domain.Currency) models.Currency {
	return models.Currency{
		CurrencyID: c.CurrencyID,
		Code:       c.Code,
		FullName:   c.FullName,
		Sign:       c.Sign,
	}
}

// ToDomainCurrency converts a persistence model to a domain currency.
func ToDomainCurrency(c models.Currency) domain.Currency {
	return domain.Currency{
		CurrencyID: c.CurrencyID,
		Code:       c.Code,
		FullName:   c.FullName,
		Sign:       c.Sign,
	}
}

// ToDomainCurrencySlice converts a slice of persistence models.
func ToDomainCurrencySlice(currencies []models.Currency) []domain.Currency {
	result := make([]domain.Currency, len(currencies))
	for i, c := range currencies {
		result[i] = ToDomainCurrency(c)
	}
	return result
}

// ToModelExchangeRate converts a domain exchange rate to its persistence model.
func ToModelExchangeRate(r domain.ExchangeRate) models.ExchangeRate {
	return models.ExchangeRate{
		ExchangeRateID:   r.ExchangeRateID,
		BaseCurrencyID:   r.BaseCurrencyID,
		TargetCurrencyID: r.TargetCurrencyID,
		Rate:             r.Rate,
	}
}

// ToDomainExchangeRate converts a persistence model to a domain exchange rate.
func ToDomainExchangeRate(r models.ExchangeRate) domain.ExchangeRate {
	return domain.ExchangeRate{
		ExchangeRateID:   r.ExchangeRateID,
		BaseCurrencyID:   r.BaseCurrencyID,
		TargetCurrencyID: r.TargetCurrencyID,
		Rate:             r.Rate,
	}
}

// ToDomainExchangeRateSlice converts a slice of persistence models.
func ToDomainExchangeRateSlice(rates []models.ExchangeRate) []domain.ExchangeRate {
	result := make([]domain.ExchangeRate, len(rates))
	for i, r := range rates {
		result[i] = ToDomainExchangeRate(r)
	}
	return result
}
