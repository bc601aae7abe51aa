package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentRecord is the payments table row.
type PaymentRecord struct {
	PaymentID             string
	BookingID             string
	CabinID               string
	Amount                decimal.Decimal
	Currency              string
	DueDate               *time.Time
	PaidDate              *time.Time
	PaymentMethod         string
	ReceiptID             string
	SyncedToReceipt       bool
	NeedsAccountingAction bool
	AuditFields
}
