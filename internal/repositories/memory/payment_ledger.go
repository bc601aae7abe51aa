package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
)

// PaymentLedger is an in-memory ledger used in tests and local runs without
// a database.
type PaymentLedger struct {
	mu       sync.RWMutex
	payments map[string]domain.PaymentRecord
}

// NewPaymentLedger creates an empty in-memory ledger.
func NewPaymentLedger() *PaymentLedger {
	return &PaymentLedger{payments: make(map[string]domain.PaymentRecord)}
}

// Ensure PaymentLedger implements portsrepo.PaymentLedger
var _ portsrepo.PaymentLedger = (*PaymentLedger)(nil)

// ListPaymentsFor returns the ledger entries for a booking or cabin id,
// oldest first.
func (l *PaymentLedger) ListPaymentsFor(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	var out []domain.PaymentRecord
	for _, p := range l.payments {
		if p.OwnerID() == ownerID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].PaymentID < out[j].PaymentID
	})
	return out, nil
}

// FindPaymentByID retrieves a single ledger entry.
func (l *PaymentLedger) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	p, ok := l.payments[paymentID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &p, nil
}

// SavePayment appends a new ledger entry.
func (l *PaymentLedger) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.payments[payment.PaymentID]; ok {
		return fmt.Errorf("%w: payment '%s'", apperrors.ErrDuplicate, payment.PaymentID)
	}
	l.payments[payment.PaymentID] = payment
	return nil
}

// UpdatePayment replaces an existing ledger entry.
func (l *PaymentLedger) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if _, ok := l.payments[payment.PaymentID]; !ok {
		return apperrors.ErrNotFound
	}
	l.payments[payment.PaymentID] = payment
	return nil
}
