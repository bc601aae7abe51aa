package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is one ledger entry against a booking or cabin allocation.
// A record only counts toward the payment status once PaidDate is set.
type PaymentRecord struct {
	PaymentID string `json:"paymentID"`
	BookingID string `json:"bookingID"`
	// CabinID is set when the payment belongs to a cabin allocation rather
	// than the booking itself.
	CabinID       string          `json:"cabinID,omitempty"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`

	// Reconciliation glue toward receipts and accounting.
	ReceiptID             string `json:"receiptID,omitempty"`
	SyncedToReceipt       bool   `json:"syncedToReceipt"`
	NeedsAccountingAction bool   `json:"needsAccountingAction"`

	AuditFields
}

// OwnerID returns the id of the record the payment settles: the cabin when
// set, otherwise the booking.
func (p PaymentRecord) OwnerID() string {
	if p.CabinID != "" {
		return p.CabinID
	}
	return p.BookingID
}
