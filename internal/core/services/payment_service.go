package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/pricing"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	portssvc "github.com/siamsail/charterdesk/internal/core/ports/services"
	"github.com/siamsail/charterdesk/internal/dto"
	"github.com/siamsail/charterdesk/internal/middleware"
)

// PaymentService manages the payment ledger and the reconciliation flags
// toward receipts. Every ledger mutation re-derives the owning record's
// payment status from the full ledger; the status is never patched in place.
type PaymentService struct {
	paymentRepo portsrepo.PaymentLedger
	bookingRepo portsrepo.BookingRepositoryFacade
	cabinRepo   portsrepo.CabinRepositoryFacade
	currencySvc portssvc.CurrencySvcFacade
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	paymentRepo portsrepo.PaymentLedger,
	bookingRepo portsrepo.BookingRepositoryFacade,
	cabinRepo portsrepo.CabinRepositoryFacade,
	currencySvc portssvc.CurrencySvcFacade,
) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		bookingRepo: bookingRepo,
		cabinRepo:   cabinRepo,
		currencySvc: currencySvc,
	}
}

// ListPayments returns the ledger entries for a booking or cabin id.
func (s *PaymentService) ListPayments(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error) {
	payments, err := s.paymentRepo.ListPaymentsFor(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payments in service: %w", err)
	}
	return payments, nil
}

// RecordPayment appends a new ledger entry and refreshes the owner's payment
// status.
func (s *PaymentService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.PaymentRecord, error) {
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}
	if err := s.currencySvc.ValidateCurrency(ctx, req.Currency); err != nil {
		return nil, err
	}
	if _, err := s.bookingRepo.FindBookingByID(ctx, req.BookingID); err != nil {
		return nil, fmt.Errorf("failed to validate booking for payment: %w", err)
	}
	if req.CabinID != "" {
		cabin, err := s.cabinRepo.FindCabinByID(ctx, req.CabinID)
		if err != nil {
			return nil, fmt.Errorf("failed to validate cabin for payment: %w", err)
		}
		if cabin.BookingID != req.BookingID {
			return nil, fmt.Errorf("%w: cabin does not belong to the booking", apperrors.ErrValidation)
		}
	}

	now := time.Now()
	payment := domain.PaymentRecord{
		PaymentID:     uuid.NewString(),
		BookingID:     req.BookingID,
		CabinID:       req.CabinID,
		Amount:        req.Amount,
		Currency:      req.Currency,
		DueDate:       req.DueDate,
		PaidDate:      req.PaidDate,
		PaymentMethod: req.PaymentMethod,
		// A paid entry needs accounting attention until it is synced to a
		// receipt.
		NeedsAccountingAction: req.PaidDate != nil,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.paymentRepo.SavePayment(ctx, payment); err != nil {
		return nil, fmt.Errorf("failed to save payment in service: %w", err)
	}

	if err := s.refreshOwnerStatus(ctx, payment, creatorUserID); err != nil {
		return nil, err
	}

	middleware.GetLoggerFromCtx(ctx).Info("Payment recorded",
		slog.String("payment_id", payment.PaymentID), slog.String("owner_id", payment.OwnerID()))
	return &payment, nil
}

// MarkPaymentPaid sets the paid date on a ledger entry and refreshes the
// owner's payment status.
func (s *PaymentService) MarkPaymentPaid(ctx context.Context, paymentID string, req dto.MarkPaymentPaidRequest, editorUserID string) (*domain.PaymentRecord, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	paidDate := req.PaidDate
	payment.PaidDate = &paidDate
	if req.PaymentMethod != "" {
		payment.PaymentMethod = req.PaymentMethod
	}
	if !payment.SyncedToReceipt {
		payment.NeedsAccountingAction = true
	}
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = editorUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update payment in service: %w", err)
	}

	if err := s.refreshOwnerStatus(ctx, *payment, editorUserID); err != nil {
		return nil, err
	}
	return payment, nil
}

// MarkSyncedToReceipt links a ledger entry to its receipt and clears the
// accounting-action flag.
func (s *PaymentService) MarkSyncedToReceipt(ctx context.Context, paymentID string, receiptID string, editorUserID string) (*domain.PaymentRecord, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	payment.ReceiptID = receiptID
	payment.SyncedToReceipt = true
	payment.NeedsAccountingAction = false
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = editorUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update payment in service: %w", err)
	}
	return payment, nil
}

// FlagAccountingAction marks an entry as needing manual reconciliation.
func (s *PaymentService) FlagAccountingAction(ctx context.Context, paymentID string, editorUserID string) (*domain.PaymentRecord, error) {
	payment, err := s.paymentRepo.FindPaymentByID(ctx, paymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	payment.NeedsAccountingAction = true
	payment.LastUpdatedAt = time.Now()
	payment.LastUpdatedBy = editorUserID

	if err := s.paymentRepo.UpdatePayment(ctx, *payment); err != nil {
		return nil, fmt.Errorf("failed to update payment in service: %w", err)
	}
	return payment, nil
}

// refreshOwnerStatus reclassifies the payment status of the booking or cabin
// the payment settles.
func (s *PaymentService) refreshOwnerStatus(ctx context.Context, payment domain.PaymentRecord, editorUserID string) error {
	payments, err := s.paymentRepo.ListPaymentsFor(ctx, payment.OwnerID())
	if err != nil {
		return fmt.Errorf("failed to load ledger for status refresh: %w", err)
	}

	now := time.Now()
	if payment.CabinID != "" {
		cabin, err := s.cabinRepo.FindCabinByID(ctx, payment.CabinID)
		if err != nil {
			return fmt.Errorf("failed to load cabin for status refresh: %w", err)
		}
		status := pricing.ClassifyPaymentStatus(payments, cabin.TotalPrice)
		if status == cabin.PaymentStatus {
			return nil
		}
		cabin.PaymentStatus = status
		cabin.LastUpdatedAt = now
		cabin.LastUpdatedBy = editorUserID
		return s.cabinRepo.UpdateCabin(ctx, *cabin)
	}

	booking, err := s.bookingRepo.FindBookingByID(ctx, payment.BookingID)
	if err != nil {
		return fmt.Errorf("failed to load booking for status refresh: %w", err)
	}
	status := pricing.ClassifyPaymentStatus(payments, booking.TotalPrice)
	if status == booking.PaymentStatus {
		return nil
	}
	booking.PaymentStatus = status
	booking.LastUpdatedAt = now
	booking.LastUpdatedBy = editorUserID
	return s.bookingRepo.UpdateBooking(ctx, *booking)
}
