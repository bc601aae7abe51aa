package services

import (
	"context"
	"time"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/dto"
)

// CurrencySvcFacade defines operations over the supported currency set.
type CurrencySvcFacade interface {
	// GetCurrencyByCode retrieves a specific currency by its code.
	GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error)

	// ListCurrencies retrieves all supported currencies.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)

	// ValidateCurrency returns ErrValidation when the code is not supported.
	ValidateCurrency(ctx context.Context, currencyCode string) error
}

// ExchangeRateReaderSvc defines read operations for exchange rate data
type ExchangeRateReaderSvc interface {
	// GetRate returns the THB rate for a currency on a date, fetching and
	// persisting it from the external provider when not already stored.
	GetRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error)
}

// ExchangeRateWriterSvc defines write operations for exchange rate data
type ExchangeRateWriterSvc interface {
	// CreateManualRate persists a user-entered rate.
	CreateManualRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}

// LookupSvc serves autocomplete lookups for extras names.
type LookupSvc interface {
	ExtrasLookups(ctx context.Context, category string) ([]string, error)
}
