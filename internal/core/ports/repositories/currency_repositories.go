package repositories

import (
	"context"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// CurrencyRepository defines operations for the supported currency set.
type CurrencyRepository interface {
	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// LookupRepository serves autocomplete lookups. Not semantically
// load-bearing; values only seed UI suggestion lists.
type LookupRepository interface {
	// ExtrasLookups returns the known extra-item names for a category.
	ExtrasLookups(ctx context.Context, category string) ([]string, error)
}
