package repositories

// RepositoryProvider aggregates the repository facades handed to the service
// container at startup.
type RepositoryProvider struct {
	CurrencyRepo     CurrencyRepositoryFacade
	ExchangeRateRepo ExchangeRateRepositoryFacade
}
