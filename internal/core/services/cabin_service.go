package services

import (
	"context"
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

// CabinService provides business logic for cabin allocations inside
// cabin-charter bookings.
type CabinService struct {
	cabinRepo   portsrepo.CabinRepositoryFacade
	bookingRepo portsrepo.BookingReader
	paymentRepo portsrepo.PaymentLedger
	currencySvc portssvc.CurrencySvcFacade
}

// NewCabinService creates a new CabinService.
func NewCabinService(
	cabinRepo portsrepo.CabinRepositoryFacade,
	bookingRepo portsrepo.BookingReader,
	paymentRepo portsrepo.PaymentLedger,
	currencySvc portssvc.CurrencySvcFacade,
) *CabinService {
	return &CabinService{
		cabinRepo:   cabinRepo,
		bookingRepo: bookingRepo,
		paymentRepo: paymentRepo,
		currencySvc: currencySvc,
	}
}

// AddCabin creates a cabin allocation under a cabin-charter booking.
func (s *CabinService) AddCabin(ctx context.Context, bookingID string, req dto.CreateCabinRequest, creatorUserID string) (*domain.CabinAllocation, error) {
	booking, err := s.bookingRepo.FindBookingByID(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to load parent booking: %w", err)
	}
	if booking.CharterType != domain.CharterCabin {
		return nil, fmt.Errorf("%w: cabins can only be added to cabin-charter bookings", apperrors.ErrValidation)
	}
	if err := s.currencySvc.ValidateCurrency(ctx, req.Currency); err != nil {
		return nil, err
	}
	if req.CharterFee.IsNegative() || req.AdminFee.IsNegative() {
		return nil, fmt.Errorf("%w: fee amounts cannot be negative", apperrors.ErrValidation)
	}

	f := domain.Finance{
		Currency:   req.Currency,
		CharterFee: req.CharterFee,
		AdminFee:   req.AdminFee,
		SourceType: req.SourceType,
		ExtraItems: dto.ToDomainExtraItems(req.ExtraItems),
	}
	if req.FxRate != nil {
		if !req.FxRate.IsPositive() {
			return nil, fmt.Errorf("%w: fx rate must be positive", apperrors.ErrValidation)
		}
		rate := *req.FxRate
		f.FxRate = &rate
		f.FxRateSource = domain.RateSourceManual
	}

	f = pricing.RecomputeTotals(f, domain.LevelCabin)
	f = commission.EnsureDefaultRate(f, domain.CharterCabin, domain.LevelCabin)
	f = commission.Recompute(f)
	f.PaymentStatus = pricing.ClassifyPaymentStatus(nil, f.TotalPrice)

	now := time.Now()
	cabin := domain.CabinAllocation{
		CabinID:   uuid.NewString(),
		BookingID: bookingID,
		CabinName: req.CabinName,
		GuestName: req.GuestName,
		Finance:   f,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.cabinRepo.SaveCabin(ctx, cabin); err != nil {
		return nil, fmt.Errorf("failed to create cabin in service: %w", err)
	}

	middleware.GetLoggerFromCtx(ctx).Info("Cabin allocation created",
		slog.String("booking_id", bookingID), slog.String("cabin_id", cabin.CabinID))
	return &cabin, nil
}

// ApplyFinanceEdit applies one edit event to a cabin's finance block. Agency
// commission edits are only accepted on agency-sourced cabins; the agency
// derivation and the owner commission rederivation happen within the same
// transform.
func (s *CabinService) ApplyFinanceEdit(ctx context.Context, cabinID string, edit finance.Edit, editorUserID string) (*domain.CabinAllocation, error) {
	cabin, err := s.cabinRepo.FindCabinByID(ctx, cabinID)
	if err != nil {
		return nil, fmt.Errorf("failed to load cabin for edit: %w", err)
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
		effectiveSource := cabin.SourceType
		if edit.SourceType != nil {
			effectiveSource = *edit.SourceType
		}
		if effectiveSource != domain.SourceAgency {
			return nil, fmt.Errorf("%w: agency commission applies to agency-sourced cabins only", apperrors.ErrValidation)
		}
	}

	cabin.Finance = finance.Apply(cabin.Finance, edit, domain.CharterCabin, domain.LevelCabin)

	payments, err := s.paymentRepo.ListPaymentsFor(ctx, cabinID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment ledger: %w", err)
	}
	cabin.PaymentStatus = pricing.ClassifyPaymentStatus(payments, cabin.TotalPrice)

	cabin.LastUpdatedAt = time.Now()
	cabin.LastUpdatedBy = editorUserID

	if err := s.cabinRepo.UpdateCabin(ctx, *cabin); err != nil {
		return nil, fmt.Errorf("failed to update cabin in service: %w", err)
	}
	return cabin, nil
}

// GetCabinByID retrieves a single cabin allocation.
func (s *CabinService) GetCabinByID(ctx context.Context, cabinID string) (*domain.CabinAllocation, error) {
	cabin, err := s.cabinRepo.FindCabinByID(ctx, cabinID)
	if err != nil {
		return nil, fmt.Errorf("failed to get cabin in service: %w", err)
	}
	return cabin, nil
}

// ListCabins retrieves all cabin allocations of a booking.
func (s *CabinService) ListCabins(ctx context.Context, bookingID string) ([]domain.CabinAllocation, error) {
	cabins, err := s.cabinRepo.ListCabinsByBooking(ctx, bookingID)
	if err != nil {
		return nil, fmt.Errorf("failed to list cabins in service: %w", err)
	}
	return cabins, nil
}

// RemoveCabin deletes a cabin allocation.
func (s *CabinService) RemoveCabin(ctx context.Context, cabinID string, deleterUserID string) error {
	if err := s.cabinRepo.DeleteCabin(ctx, cabinID, deleterUserID, time.Now()); err != nil {
		return fmt.Errorf("failed to delete cabin in service: %w", err)
	}
	return nil
}
