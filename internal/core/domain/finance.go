package domain

import "github.com/shopspring/decimal"

// SourceType records how a booking or cabin was sold.
type SourceType string

const (
	SourceDirect SourceType = "direct"
	SourceAgency SourceType = "agency"
)

// CharterType classifies the charter product.
type CharterType string

const (
	CharterBareboat CharterType = "bareboat"
	CharterCrewed   CharterType = "crewed"
	CharterCabin    CharterType = "cabin"
)

// RateSource records where an FX rate came from. Provenance only; it never
// participates in arithmetic.
type RateSource string

const (
	RateSourceAPI    RateSource = "api"
	RateSourceManual RateSource = "manual"
)

// PaymentStatus is derived from the payment ledger against the total price.
type PaymentStatus string

const (
	PaymentUnpaid  PaymentStatus = "unpaid"
	PaymentPartial PaymentStatus = "partial"
	PaymentPaid    PaymentStatus = "paid"
)

// Finance is the shared money shape of a booking and of a cabin allocation.
// All derived fields are recomputed by the pricing and commission engines on
// every edit; none of them is independently mutated.
type Finance struct {
	Currency     string          `json:"currency"`
	CharterFee   decimal.Decimal `json:"charterFee"`
	AdminFee     decimal.Decimal `json:"adminFee"`     // cabin-level fee component
	ExtraCharges decimal.Decimal `json:"extraCharges"` // booking-level fee component

	// FxRate is THB per 1 unit of Currency; nil when Currency is THB or no
	// rate has been captured yet.
	FxRate       *decimal.Decimal `json:"fxRate,omitempty"`
	FxRateSource RateSource       `json:"fxRateSource,omitempty"`

	// TotalPrice is always the sum of the level's fee components.
	TotalPrice decimal.Decimal `json:"totalPrice"`
	// ThbTotalPrice is nil when Currency != THB and no FX rate is set.
	ThbTotalPrice *decimal.Decimal `json:"thbTotalPrice,omitempty"`

	CommissionRate      *decimal.Decimal         `json:"commissionRate,omitempty"` // percent, 0-100
	TotalCommission     Derived[decimal.Decimal] `json:"totalCommission"`
	CommissionDeduction decimal.Decimal          `json:"commissionDeduction"`
	CommissionReceived  Derived[decimal.Decimal] `json:"commissionReceived"`

	// AppliedDefaultRate remembers the last auto-applied default commission
	// rate so a later source/charter-type change can tell whether the user
	// has diverged from the default.
	AppliedDefaultRate *decimal.Decimal `json:"appliedDefaultRate,omitempty"`

	SourceType SourceType `json:"bookingSourceType"`

	// Agency commission applies to agency-sourced records only.
	AgencyCommissionRate   *decimal.Decimal         `json:"agencyCommissionRate,omitempty"`
	AgencyCommissionAmount Derived[decimal.Decimal] `json:"agencyCommissionAmount"`
	AgencyCommissionTHB    *decimal.Decimal         `json:"agencyCommissionThb,omitempty"`

	ExtraItems []ExtraItem `json:"extraItems"`

	PaymentStatus PaymentStatus `json:"paymentStatus"`
}
