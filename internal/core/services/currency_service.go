package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
)

// CurrencyService provides read access to the supported currency set. The
// set is seeded by migration (THB, USD, EUR, GBP, AUD) and extendable in the
// database without engine changes.
type CurrencyService struct {
	currencyRepo portsrepo.CurrencyRepository
}

// NewCurrencyService creates a new CurrencyService.
func NewCurrencyService(currencyRepo portsrepo.CurrencyRepository) *CurrencyService {
	return &CurrencyService{currencyRepo: currencyRepo}
}

// GetCurrencyByCode retrieves a specific currency by its code.
func (s *CurrencyService) GetCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if len(currencyCode) != 3 {
		return nil, fmt.Errorf("%w: currency codes must be 3 letters", apperrors.ErrValidation)
	}
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, currencyCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get currency in service: %w", err)
	}
	return currency, nil
}

// ListCurrencies retrieves all supported currencies.
func (s *CurrencyService) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	currencies, err := s.currencyRepo.ListCurrencies(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list currencies in service: %w", err)
	}
	return currencies, nil
}

// ValidateCurrency returns ErrValidation when the code is not supported.
func (s *CurrencyService) ValidateCurrency(ctx context.Context, currencyCode string) error {
	_, err := s.GetCurrencyByCode(ctx, currencyCode)
	if errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("%w: currency '%s' is not supported", apperrors.ErrValidation, currencyCode)
	}
	return err
}
