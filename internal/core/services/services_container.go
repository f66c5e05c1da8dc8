package services

import (
	portsrepo "github.com/avelins/currency_exchange_app/internal/core/ports/repositories"
	portssvc "github.com/avelins/currency_exchange_app/internal/core/ports/services"
)

// NewServiceContainer wires all services over the repository provider. The
// services are created once at startup and shared; they hold no per-request
// state.
func NewServiceContainer(repos *portsrepo.RepositoryProvider, anchorCurrencyCode string) *portssvc.ServiceContainer {
	return &portssvc.ServiceContainer{
		Currency:     NewCurrencyService(repos.CurrencyRepo),
		ExchangeRate: NewExchangeRateService(repos.ExchangeRateRepo, repos.CurrencyRepo),
		Conversion:   NewConversionService(repos.ExchangeRateRepo, repos.CurrencyRepo, anchorCurrencyCode),
	}
}

// Compile-time interface checks.
var (
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.ConversionSvc         = (*ConversionService)(nil)
)
