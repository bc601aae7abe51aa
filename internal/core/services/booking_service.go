package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/commission"
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/finance"
	"github.com/siamsail/charterdesk/internal/core/pricing"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// BookingService provides business logic for charter bookings. Every finance
// mutation funnels through finance.Apply so derived fields are recomputed in
// one synchronous pass before anything is persisted.
type BookingService struct {
	bookingRepo portsrepo.BookingRepositoryFacade
	paymentRepo portsrepo.PaymentLedger
	currencySvc portssvc.CurrencySvcFacade
	rateSvc     portssvc.ExchangeRateReaderSvc
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookingRepo portsrepo.BookingRepositoryFacade,
	paymentRepo portsrepo.PaymentLedger,
	currencySvc portssvc.CurrencySvcFacade,
	rateSvc portssvc.ExchangeRateReaderSvc,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		currencySvc: currencySvc,
		rateSvc:     rateSvc,
	}
}

// CreateBooking handles the creation of a new booking: validates the
// currency, prefills the FX rate when one is available, applies the default
// commission rate policy and computes every derived field before saving.
func (s *BookingService) CreateBooking(ctx context.Context, req dto.CreateBookingRequest, creatorUserID string) (*domain.Booking, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if err := s.currencySvc.ValidateCurrency(ctx, req.Currency); err != nil {
		return nil, err
	}
	if !req.EndDate.After(req.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}
	if req.CharterFee.IsNegative() || req.ExtraCharges.IsNegative() {
		return nil, fmt.Errorf("%w: fee amounts cannot be negative", apperrors.ErrValidation)
	}

	f := domain.Finance{
		Currency:     req.Currency,
		CharterFee:   req.CharterFee,
		ExtraCharges: req.ExtraCharges,
		SourceType:   req.SourceType,
		ExtraItems:   dto.ToDomainExtraItems(req.ExtraItems),
	}

	if req.FxRate != nil {
		if !req.FxRate.IsPositive() {
			return nil, fmt.Errorf("%w: fx rate must be positive", apperrors.ErrValidation)
		}
		rate := *req.FxRate
		f.FxRate = &rate
		f.FxRateSource = domain.RateSourceManual
	} else if req.Currency != domain.ReportingCurrency {
		// Best effort: a missing rate is not an error, the THB figures stay
		// undefined until one is captured.
		if fetched, err := s.rateSvc.GetRate(ctx, req.Currency, req.StartDate); err == nil {
			rate := fetched.Rate
			f.FxRate = &rate
			f.FxRateSource = fetched.Source
		} else {
			logger.Warn("No FX rate available at booking creation",
				slog.String("currency", req.Currency), slog.String("error", err.Error()))
		}
	}

	f = pricing.RecomputeTotals(f, domain.LevelBooking)
	f = commission.EnsureDefaultRate(f, req.CharterType, domain.LevelBooking)
	f = commission.Recompute(f)
	f.PaymentStatus = pricing.ClassifyPaymentStatus(nil, f.TotalPrice)

	now := time.Now()
	booking := domain.Booking{
		BookingID:   uuid.NewString(),
		Reference:   req.Reference,
		CharterType: req.CharterType,
		YachtName:   req.YachtName,
		GuestName:   req.GuestName,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Finance:     f,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.bookingRepo.SaveBooking(ctx, booking); err != nil {
		return nil, fmt.Errorf("failed to create booking in service: %w", err)
	}

	logger.Info("Booking created", slog.String("booking_id", booking.BookingID))
	return &booking, nil
}

// ApplyFinanceEdit applies a single user edit event to the booking's finance
// block. Totals, THB conversion, default-rate policy, commission and payment
// status are all rederived within this one call.
func (s *BookingService) ApplyFinanceEdit(ctx context.Context, bookingID string, edit finance.Edit, editorUserID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking for edit: %w", err)
	}

	if edit.Currency != nil {
		if err := s.currencySvc.ValidateCurrency(ctx, *edit.Currency); err != nil {
			return nil, err
		}
	}
	if edit.FxRate != nil && !edit.FxRate.IsPositive() {
		return nil, fmt.Errorf("%w: fx rate must be positive", apperrors.ErrValidation)
	}
	if edit.AgencyCommissionRate != nil || edit.AgencyCommissionAmount != nil {
		effectiveSource := booking.SourceType
		if edit.SourceType != nil {
			effectiveSource = *edit.SourceType
		}
		if effectiveSource != domain.SourceAgency {
			return nil, fmt.Errorf("%w: agency commission applies to agency-sourced bookings only", apperrors.ErrValidation)
		}
	}

	booking.Finance = finance.Apply(booking.Finance, edit, booking.CharterType, domain.LevelBooking)

	payments, err := s.paymentRepo.ListPaymentsFor(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment ledger: %w", err)
	}
	booking.PaymentStatus = pricing.ClassifyPaymentStatus(payments, booking.TotalPrice)

	booking.LastUpdatedAt = time.Now()
	booking.LastUpdatedBy = editorUserID

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		return nil, fmt.Errorf("failed to update booking in service: %w", err)
	}
	return booking, nil
}

// UpdateBookingDetails updates the non-finance fields of a booking.
func (s *BookingService) UpdateBookingDetails(ctx context.Context, bookingID string, req dto.UpdateBookingRequest, editorUserID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking for update: %w", err)
	}

	if req.Reference != nil {
		booking.Reference = *req.Reference
	}
	if req.YachtName != nil {
		booking.YachtName = *req.YachtName
	}
	if req.GuestName != nil {
		booking.GuestName = *req.GuestName
	}
	if req.StartDate != nil {
		booking.StartDate = *req.StartDate
	}
	if req.EndDate != nil {
		booking.EndDate = *req.EndDate
	}
	if !booking.EndDate.After(booking.StartDate) {
		return nil, fmt.Errorf("%w: end date must be after start date", apperrors.ErrValidation)
	}

	booking.LastUpdatedAt = time.Now()
	booking.LastUpdatedBy = editorUserID

	if err := s.bookingRepo.UpdateBooking(ctx, *booking); err != nil {
		return nil, fmt.Errorf("failed to update booking in service: %w", err)
	}
	return booking, nil
}

// GetBookingByID retrieves a booking by its ID.
func (s *BookingService) GetBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get booking in service: %w", err)
	}
	return booking, nil
}

// ListBookings retrieves a page of bookings.
func (s *BookingService) ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	if limit <= 0 {
		limit = 20
	}
	bookings, token, err := s.bookingRepo.ListBookings(ctx, limit, nextToken)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list bookings in service: %w", err)
	}
	return bookings, token, nil
}

// GetFinanceSummary derives the commission breakdown for the finance section.
func (s *BookingService) GetFinanceSummary(ctx context.Context, bookingID string) (*dto.FinanceSummaryResponse, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load booking for summary: %w", err)
	}

	base := commission.ComputeBase(booking.Finance)
	return &dto.FinanceSummaryResponse{
		BookingID:          booking.BookingID,
		CharterBaseTHB:     base.Charter.Round(2),
		ExtrasBaseTHB:      base.Extras.Round(2),
		CommissionBaseTHB:  base.Total.Round(2),
		TotalCommission:    booking.TotalCommission.Value,
		CommissionReceived: booking.CommissionReceived.Value,
		ThbTotalPrice:      booking.ThbTotalPrice,
	}, nil
}

// DeleteBooking removes a booking and its dependent rows.
func (s *BookingService) DeleteBooking(ctx context.Context, bookingID string, deleterUserID string) error {
	if err := s.bookingRepo.DeleteBooking(ctx, bookingID, deleterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete booking in service: %w", err)
	}
	return nil
}
