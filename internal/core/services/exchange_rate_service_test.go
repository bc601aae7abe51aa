package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsprov "github.com/siamsail/charterdesk/internal/core/ports/providers"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/core/services"
	"github.com/siamsail/charterdesk/internal/dto"
)

type ExchangeRateServiceTestSuite struct {
	suite.Suite
	mockRateRepo   *MockExchangeRateRepository
	mockProvider   *MockRateProvider
	mockCurrencies *MockCurrencyRepository
	service        portssvc.ExchangeRateSvcFacade
}

func (s *ExchangeRateServiceTestSuite) SetupTest() {
	s.mockRateRepo = new(MockExchangeRateRepository)
	s.mockProvider = new(MockRateProvider)
	s.mockCurrencies = new(MockCurrencyRepository)

	currencySvc := services.NewCurrencyService(s.mockCurrencies)
	s.service = services.NewExchangeRateService(s.mockRateRepo, s.mockProvider, currencySvc)
}

func (s *ExchangeRateServiceTestSuite) TestGetRate_THBIsIdentity() {
	rate, err := s.service.GetRate(context.Background(), "thb", time.Now())

	s.Require().NoError(err)
	s.Equal("THB", rate.CurrencyCode)
	s.True(rate.Rate.Equal(dec("1")))
	s.mockRateRepo.AssertNotCalled(s.T(), "FindRate", mock.Anything, mock.Anything, mock.Anything)
	s.mockProvider.AssertNotCalled(s.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ExchangeRateServiceTestSuite) TestGetRate_StoredRateWins() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	stored := &domain.ExchangeRate{CurrencyCode: "USD", Rate: dec("35.12"), Source: domain.RateSourceManual}

	s.mockCurrencies.On("FindCurrencyByCode", ctx, "USD").Return(usdCurrency(), nil).Once()
	s.mockRateRepo.On("FindRate", ctx, "USD", date).Return(stored, nil).Once()

	rate, err := s.service.GetRate(ctx, "USD", date)

	s.Require().NoError(err)
	s.True(rate.Rate.Equal(dec("35.12")))
	s.mockProvider.AssertNotCalled(s.T(), "FetchRate", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ExchangeRateServiceTestSuite) TestGetRate_ProviderFallbackPersists() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mockCurrencies.On("FindCurrencyByCode", ctx, "USD").Return(usdCurrency(), nil).Once()
	s.mockRateRepo.On("FindRate", ctx, "USD", date).Return(nil, apperrors.ErrNotFound).Once()
	s.mockProvider.On("FetchRate", ctx, "USD", date).
		Return(&portsprov.FetchedRate{Rate: dec("36.45"), Source: "fxapi"}, nil).Once()
	s.mockRateRepo.On("SaveRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "USD" &&
			r.Rate.Equal(dec("36.45")) &&
			r.Source == domain.RateSourceAPI &&
			r.CreatedBy == "system"
	})).Return(nil).Once()

	rate, err := s.service.GetRate(ctx, "USD", date)

	s.Require().NoError(err)
	s.True(rate.Rate.Equal(dec("36.45")))
	s.Equal(domain.RateSourceAPI, rate.Source)
	s.mockRateRepo.AssertExpectations(s.T())
}

func (s *ExchangeRateServiceTestSuite) TestGetRate_ProviderFailureIsRetryable() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mockCurrencies.On("FindCurrencyByCode", ctx, "USD").Return(usdCurrency(), nil).Once()
	s.mockRateRepo.On("FindRate", ctx, "USD", date).Return(nil, apperrors.ErrNotFound).Once()
	s.mockProvider.On("FetchRate", ctx, "USD", date).
		Return(nil, errors.New("upstream timeout")).Once()

	_, err := s.service.GetRate(ctx, "USD", date)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrRateUnavailable)
	s.mockRateRepo.AssertNotCalled(s.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (s *ExchangeRateServiceTestSuite) TestGetRate_NonPositiveProviderRate() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mockCurrencies.On("FindCurrencyByCode", ctx, "USD").Return(usdCurrency(), nil).Once()
	s.mockRateRepo.On("FindRate", ctx, "USD", date).Return(nil, apperrors.ErrNotFound).Once()
	s.mockProvider.On("FetchRate", ctx, "USD", date).
		Return(&portsprov.FetchedRate{Rate: dec("0"), Source: "fxapi"}, nil).Once()

	_, err := s.service.GetRate(ctx, "USD", date)

	s.Require().Error(err)
	s.ErrorIs(err, apperrors.ErrRateUnavailable)
}

func (s *ExchangeRateServiceTestSuite) TestCreateManualRate_Validations() {
	ctx := context.Background()

	_, err := s.service.CreateManualRate(ctx, dto.CreateExchangeRateRequest{
		CurrencyCode: "USD", Rate: dec("0"), DateEffective: time.Now(),
	}, "ops")
	s.ErrorIs(err, apperrors.ErrValidation)

	_, err = s.service.CreateManualRate(ctx, dto.CreateExchangeRateRequest{
		CurrencyCode: "THB", Rate: dec("1"), DateEffective: time.Now(),
	}, "ops")
	s.ErrorIs(err, apperrors.ErrValidation)

	s.mockRateRepo.AssertNotCalled(s.T(), "SaveRate", mock.Anything, mock.Anything)
}

func (s *ExchangeRateServiceTestSuite) TestCreateManualRate_UppercasesAndPersists() {
	ctx := context.Background()
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	s.mockCurrencies.On("FindCurrencyByCode", ctx, "EUR").Return(&domain.Currency{
		CurrencyCode: "EUR", Symbol: "€",
	}, nil).Once()
	s.mockRateRepo.On("SaveRate", ctx, mock.MatchedBy(func(r domain.ExchangeRate) bool {
		return r.CurrencyCode == "EUR" &&
			r.Source == domain.RateSourceManual &&
			r.CreatedBy == "ops"
	})).Return(nil).Once()

	rate, err := s.service.CreateManualRate(ctx, dto.CreateExchangeRateRequest{
		CurrencyCode: "eur", Rate: dec("38.9"), DateEffective: date,
	}, "ops")

	s.Require().NoError(err)
	s.Equal("EUR", rate.CurrencyCode)
	s.mockRateRepo.AssertExpectations(s.T())
}

func TestExchangeRateServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ExchangeRateServiceTestSuite))
}
