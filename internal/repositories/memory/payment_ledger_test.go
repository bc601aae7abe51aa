package memory

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
)

func newPayment(id, bookingID, cabinID string, createdAt time.Time) domain.PaymentRecord {
	p := domain.PaymentRecord{
		PaymentID: id,
		BookingID: bookingID,
		CabinID:   cabinID,
		Amount:    decimal.NewFromInt(100),
		Currency:  "THB",
	}
	p.CreatedAt = createdAt
	return p
}

func TestPaymentLedger_ListPaymentsFor(t *testing.T) {
	ledger := NewPaymentLedger()
	ctx := context.Background()
	base := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, ledger.SavePayment(ctx, newPayment("p2", "b1", "", base.Add(time.Hour))))
	require.NoError(t, ledger.SavePayment(ctx, newPayment("p1", "b1", "", base)))
	require.NoError(t, ledger.SavePayment(ctx, newPayment("p3", "b1", "c1", base)))
	require.NoError(t, ledger.SavePayment(ctx, newPayment("p4", "b2", "", base)))

	got, err := ledger.ListPaymentsFor(ctx, "b1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].PaymentID)
	assert.Equal(t, "p2", got[1].PaymentID)

	cabin, err := ledger.ListPaymentsFor(ctx, "c1")
	require.NoError(t, err)
	require.Len(t, cabin, 1)
	assert.Equal(t, "p3", cabin[0].PaymentID)

	empty, err := ledger.ListPaymentsFor(ctx, "missing")
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestPaymentLedger_SaveDuplicate(t *testing.T) {
	ledger := NewPaymentLedger()
	ctx := context.Background()
	p := newPayment("p1", "b1", "", time.Now())

	require.NoError(t, ledger.SavePayment(ctx, p))
	err := ledger.SavePayment(ctx, p)
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestPaymentLedger_UpdateMissing(t *testing.T) {
	ledger := NewPaymentLedger()
	err := ledger.UpdatePayment(context.Background(), newPayment("ghost", "b1", "", time.Now()))
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestPaymentLedger_FindPaymentByID(t *testing.T) {
	ledger := NewPaymentLedger()
	ctx := context.Background()
	require.NoError(t, ledger.SavePayment(ctx, newPayment("p1", "b1", "", time.Now())))

	got, err := ledger.FindPaymentByID(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "b1", got.BookingID)

	_, err = ledger.FindPaymentByID(ctx, "nope")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
