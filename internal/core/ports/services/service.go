package services

// ServiceContainer holds the service facades handed to the HTTP layer.
type ServiceContainer struct {
	Currency     CurrencySvcFacade
	ExchangeRate ExchangeRateSvcFacade
	Conversion   ConversionSvc
}
