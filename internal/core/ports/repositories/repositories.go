package repositories

// RepositoryProvider groups every repository implementation handed to the
// service container.
type RepositoryProvider struct {
	BookingRepo      BookingRepositoryFacade
	CabinRepo        CabinRepositoryFacade
	PaymentRepo      PaymentLedger
	ExchangeRateRepo ExchangeRateRepositoryFacade
	CurrencyRepo     CurrencyRepository
	LookupRepo       LookupRepository
}
