package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FinanceColumns is the flattened persistence shape of a finance block. The
// override flags persist the Derived tags so a reload cannot silently turn a
// user override back into a computed value.
type FinanceColumns struct {
	Currency     string
	CharterFee   decimal.Decimal
	AdminFee     decimal.Decimal
	ExtraCharges decimal.Decimal

	FxRate       *decimal.Decimal
	FxRateSource string

	TotalPrice    decimal.Decimal
	ThbTotalPrice *decimal.Decimal

	CommissionRate               *decimal.Decimal
	TotalCommission              decimal.Decimal
	TotalCommissionOverridden    bool
	CommissionDeduction          decimal.Decimal
	CommissionReceived           decimal.Decimal
	CommissionReceivedOverridden bool
	AppliedDefaultRate           *decimal.Decimal

	SourceType                       string
	AgencyCommissionRate             *decimal.Decimal
	AgencyCommissionAmount           decimal.Decimal
	AgencyCommissionAmountOverridden bool
	AgencyCommissionTHB              *decimal.Decimal

	PaymentStatus string
}

// Booking is the bookings table row.
type Booking struct {
	BookingID   string
	Reference   string
	CharterType string
	YachtName   string
	GuestName   string
	StartDate   time.Time
	EndDate     time.Time
	FinanceColumns
	AuditFields
}

// CabinAllocation is the cabin_allocations table row.
type CabinAllocation struct {
	CabinID   string
	BookingID string
	CabinName string
	GuestName string
	FinanceColumns
	AuditFields
}

// ExtraItem is the extra_items table row. Exactly one of BookingID/CabinID is
// set; Position keeps the form's item order stable.
type ExtraItem struct {
	ExtraItemID    string
	BookingID      string
	CabinID        string
	Position       int
	Name           string
	Type           string
	SellingPrice   decimal.Decimal
	Cost           decimal.Decimal
	Currency       string
	FxRate         *decimal.Decimal
	Commissionable bool
	ProjectID      string
}
