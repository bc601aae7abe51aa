package services

import (
	portsprov "github.com/siamsail/charterdesk/internal/core/ports/providers"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(repos portsrepo.RepositoryProvider, rateProvider portsprov.RateProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Currency first since most other services validate against it.
	container.Currency = NewCurrencyService(repos.CurrencyRepo)
	container.ExchangeRate = NewExchangeRateService(repos.ExchangeRateRepo, rateProvider, container.Currency)
	container.Booking = NewBookingService(repos.BookingRepo, repos.PaymentRepo, container.Currency, container.ExchangeRate)
	container.Cabin = NewCabinService(repos.CabinRepo, repos.BookingRepo, repos.PaymentRepo, container.Currency)
	container.Payment = NewPaymentService(repos.PaymentRepo, repos.BookingRepo, repos.CabinRepo, container.Currency)
	container.Lookup = NewLookupService(repos.LookupRepo)

	return container
}

// Compile-time interface checks.
var (
	_ portssvc.BookingSvcFacade      = (*BookingService)(nil)
	_ portssvc.CabinSvcFacade        = (*CabinService)(nil)
	_ portssvc.PaymentSvcFacade      = (*PaymentService)(nil)
	_ portssvc.CurrencySvcFacade     = (*CurrencyService)(nil)
	_ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)
	_ portssvc.LookupSvc             = (*LookupService)(nil)
)
