package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
)

// NewRepositoryProvider wires every pgsql repository against one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		BookingRepo:      newPgxBookingRepository(dbPool),
		CabinRepo:        newPgxCabinRepository(dbPool),
		PaymentRepo:      newPgxPaymentRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateRepository(dbPool),
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		LookupRepo:       newPgxLookupRepository(dbPool),
	}
}
