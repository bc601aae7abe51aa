package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsprov "github.com/siamsail/charterdesk/internal/core/ports/providers"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// ExchangeRateService provides THB rates for the engines: stored rates first,
// the external provider as fallback. Fetched rates are persisted with
// source=api so repeated lookups stay stable.
type ExchangeRateService struct {
	rateRepo    portsrepo.ExchangeRateRepositoryFacade
	provider    portsprov.RateProvider
	currencySvc portssvc.CurrencySvcFacade
}

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(
	rateRepo portsrepo.ExchangeRateRepositoryFacade,
	provider portsprov.RateProvider,
	currencySvc portssvc.CurrencySvcFacade,
) *ExchangeRateService {
	return &ExchangeRateService{
		rateRepo:    rateRepo,
		provider:    provider,
		currencySvc: currencySvc,
	}
}

// GetRate returns the THB rate for a currency on a date. THB itself is the
// identity rate. A stored rate wins; otherwise the provider is consulted and
// the fetched rate saved. Provider failures surface as ErrRateUnavailable —
// retryable, and never fatal to the calculation core.
func (s *ExchangeRateService) GetRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	currencyCode = strings.ToUpper(currencyCode)
	if currencyCode == domain.ReportingCurrency {
		return &domain.ExchangeRate{
			CurrencyCode:  currencyCode,
			Rate:          decimal.NewFromInt(1),
			Source:        domain.RateSourceAPI,
			DateEffective: date,
		}, nil
	}
	if err := s.currencySvc.ValidateCurrency(ctx, currencyCode); err != nil {
		return nil, err
	}

	rate, err := s.rateRepo.FindRate(ctx, currencyCode, date)
	if err == nil {
		return rate, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, fmt.Errorf("failed to get exchange rate in service: %w", err)
	}

	fetched, err := s.provider.FetchRate(ctx, currencyCode, date)
	if err != nil {
		return nil, fmt.Errorf("%w: %s on %s: %v", apperrors.ErrRateUnavailable, currencyCode, date.Format("2006-01-02"), err)
	}
	if !fetched.Rate.IsPositive() {
		return nil, fmt.Errorf("%w: provider returned non-positive rate for %s", apperrors.ErrRateUnavailable, currencyCode)
	}

	now := time.Now()
	stored := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyCode:   currencyCode,
		Rate:           fetched.Rate,
		Source:         domain.RateSourceAPI,
		DateEffective:  date,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     "system",
			LastUpdatedAt: now,
			LastUpdatedBy: "system",
		},
	}
	if err := s.rateRepo.SaveRate(ctx, stored); err != nil {
		// The fetched rate is still usable this request.
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to persist fetched exchange rate",
			slog.String("currency", currencyCode), slog.String("error", err.Error()))
	}
	return &stored, nil
}

// CreateManualRate persists a user-entered rate.
func (s *ExchangeRateService) CreateManualRate(ctx context.Context, req dto.CreateExchangeRateRequest, creatorUserID string) (*domain.ExchangeRate, error) {
	if req.Rate.LessThanOrEqual(decimal.Zero) {
		return nil, fmt.Errorf("%w: exchange rate must be positive", apperrors.ErrValidation)
	}
	code := strings.ToUpper(req.CurrencyCode)
	if code == domain.ReportingCurrency {
		return nil, fmt.Errorf("%w: cannot set a THB rate against itself", apperrors.ErrValidation)
	}
	if err := s.currencySvc.ValidateCurrency(ctx, code); err != nil {
		return nil, err
	}

	now := time.Now()
	rate := domain.ExchangeRate{
		ExchangeRateID: uuid.NewString(),
		CurrencyCode:   code,
		Rate:           req.Rate,
		Source:         domain.RateSourceManual,
		DateEffective:  req.DateEffective,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.rateRepo.SaveRate(ctx, rate); err != nil {
		return nil, fmt.Errorf("failed to create exchange rate in service: %w", err)
	}
	return &rate, nil
}
