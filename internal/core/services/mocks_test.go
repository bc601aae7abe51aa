package services_test

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/siamsail/charterdesk/internal/core/domain"
	portsprov "github.com/siamsail/charterdesk/internal/core/ports/providers"
)

// --- Mock BookingRepository ---
type MockBookingRepository struct {
	mock.Mock
}

func (m *MockBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingRepository) ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	args := m.Called(ctx, limit, nextToken)
	var bookings []domain.Booking
	if args.Get(0) != nil {
		bookings = args.Get(0).([]domain.Booking)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return bookings, token, args.Error(2)
}

func (m *MockBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}

func (m *MockBookingRepository) DeleteBooking(ctx context.Context, bookingID string, deleterUserID string, now time.Time) error {
	args := m.Called(ctx, bookingID, deleterUserID, now)
	return args.Error(0)
}

// --- Mock CabinRepository ---
type MockCabinRepository struct {
	mock.Mock
}

func (m *MockCabinRepository) FindCabinByID(ctx context.Context, cabinID string) (*domain.CabinAllocation, error) {
	args := m.Called(ctx, cabinID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CabinAllocation), args.Error(1)
}

func (m *MockCabinRepository) ListCabinsByBooking(ctx context.Context, bookingID string) ([]domain.CabinAllocation, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.CabinAllocation), args.Error(1)
}

func (m *MockCabinRepository) SaveCabin(ctx context.Context, cabin domain.CabinAllocation) error {
	args := m.Called(ctx, cabin)
	return args.Error(0)
}

func (m *MockCabinRepository) UpdateCabin(ctx context.Context, cabin domain.CabinAllocation) error {
	args := m.Called(ctx, cabin)
	return args.Error(0)
}

func (m *MockCabinRepository) DeleteCabin(ctx context.Context, cabinID string, deleterUserID string, now time.Time) error {
	args := m.Called(ctx, cabinID, deleterUserID, now)
	return args.Error(0)
}

// --- Mock PaymentLedger ---
type MockPaymentLedger struct {
	mock.Mock
}

func (m *MockPaymentLedger) ListPaymentsFor(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentLedger) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	args := m.Called(ctx, paymentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentRecord), args.Error(1)
}

func (m *MockPaymentLedger) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

func (m *MockPaymentLedger) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}

// --- Mock CurrencyRepository ---
type MockCurrencyRepository struct {
	mock.Mock
}

func (m *MockCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	args := m.Called(ctx, currencyCode)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Currency), args.Error(1)
}

func (m *MockCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Currency), args.Error(1)
}

// --- Mock ExchangeRateRepository ---
type MockExchangeRateRepository struct {
	mock.Mock
}

func (m *MockExchangeRateRepository) FindRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	args := m.Called(ctx, currencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ExchangeRate), args.Error(1)
}

func (m *MockExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}

// --- Mock RateProvider ---
type MockRateProvider struct {
	mock.Mock
}

func (m *MockRateProvider) FetchRate(ctx context.Context, currencyCode string, date time.Time) (*portsprov.FetchedRate, error) {
	args := m.Called(ctx, currencyCode, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*portsprov.FetchedRate), args.Error(1)
}

// --- Mock LookupRepository ---
type MockLookupRepository struct {
	mock.Mock
}

func (m *MockLookupRepository) ExtrasLookups(ctx context.Context, category string) ([]string, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
