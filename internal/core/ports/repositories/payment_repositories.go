package repositories

import (
	"context"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// PaymentLedger is the per-record payment ledger keyed by the owning booking
// or cabin id. It is the system of record for paid amounts; payment status is
// always derived from it, never cached independently.
type PaymentLedger interface {
	// ListPaymentsFor returns the ledger entries for a booking or cabin id,
	// oldest first. A missing owner yields an empty slice, not an error.
	ListPaymentsFor(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error)

	// FindPaymentByID retrieves a single ledger entry.
	FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error)

	// SavePayment appends a new ledger entry.
	SavePayment(ctx context.Context, payment domain.PaymentRecord) error

	// UpdatePayment replaces an existing ledger entry.
	UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error
}
