// Package finance applies user edits to a booking or cabin finance block.
// Apply is the single entry point the services use: it folds every supplied
// input change and all dependent recomputation — totals, FX normalization,
// default rate policy, owner and agency commission — into one synchronous
// transform, so no derived field can be read between two halves of an update.
package finance

import (
	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/commission"
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/pricing"
)

// Edit carries the fields of one user edit event. Nil means "not touched".
type Edit struct {
	Currency     *string
	CharterFee   *decimal.Decimal
	AdminFee     *decimal.Decimal
	ExtraCharges *decimal.Decimal

	FxRate       *decimal.Decimal
	FxRateSource *domain.RateSource
	ClearFxRate  bool

	SourceType *domain.SourceType
	ExtraItems *[]domain.ExtraItem

	CommissionRate               *decimal.Decimal
	TotalCommissionOverride      *decimal.Decimal
	ClearTotalCommissionOverride bool
	CommissionDeduction          *decimal.Decimal
	CommissionReceivedOverride   *decimal.Decimal

	AgencyCommissionRate   *decimal.Decimal
	AgencyCommissionAmount *decimal.Decimal
}

// Apply returns the finance block with the edit applied and every dependent
// derived field recomputed. Payment status is not touched here; it depends on
// the payment ledger, which the owning service reads separately.
func Apply(f domain.Finance, e Edit, charter domain.CharterType, level domain.RecordLevel) domain.Finance {
	f = applyInputs(f, e)
	f = pricing.RecomputeTotals(f, level)
	f = commission.EnsureDefaultRate(f, charter, level)

	switch {
	case e.CommissionRate != nil:
		f = commission.ApplyRate(f, *e.CommissionRate)
	case e.TotalCommissionOverride != nil:
		f = commission.ApplyTotalOverride(f, *e.TotalCommissionOverride)
	case e.ClearTotalCommissionOverride:
		f.TotalCommission = f.TotalCommission.Clear(decimal.Zero)
	}

	if e.CommissionDeduction != nil {
		f = commission.ApplyDeduction(f, *e.CommissionDeduction)
	}

	switch {
	case e.AgencyCommissionRate != nil:
		f = commission.ApplyAgencyRate(f, *e.AgencyCommissionRate)
	case e.AgencyCommissionAmount != nil:
		f = commission.ApplyAgencyAmount(f, *e.AgencyCommissionAmount)
	}

	// Fee, FX or extras edits shift the base under an unchanged rate, so
	// always finish with a full rederivation. Override tags are respected.
	f = commission.Recompute(f)

	if e.CommissionReceivedOverride != nil {
		f.CommissionReceived = f.CommissionReceived.Override(*e.CommissionReceivedOverride)
	}

	return f
}

func applyInputs(f domain.Finance, e Edit) domain.Finance {
	if e.Currency != nil {
		f.Currency = *e.Currency
		if f.Currency == domain.ReportingCurrency {
			f.FxRate = nil
			f.FxRateSource = ""
		}
	}
	if e.CharterFee != nil {
		f.CharterFee = *e.CharterFee
	}
	if e.AdminFee != nil {
		f.AdminFee = *e.AdminFee
	}
	if e.ExtraCharges != nil {
		f.ExtraCharges = *e.ExtraCharges
	}

	if e.ClearFxRate {
		f.FxRate = nil
		f.FxRateSource = ""
	} else if e.FxRate != nil {
		rate := *e.FxRate
		f.FxRate = &rate
		f.FxRateSource = domain.RateSourceManual
		if e.FxRateSource != nil {
			f.FxRateSource = *e.FxRateSource
		}
	}

	if e.SourceType != nil {
		f.SourceType = *e.SourceType
		if f.SourceType != domain.SourceAgency {
			f.AgencyCommissionRate = nil
			f.AgencyCommissionAmount = domain.Computed(decimal.Zero)
			f.AgencyCommissionTHB = nil
		}
	}

	if e.ExtraItems != nil {
		f.ExtraItems = *e.ExtraItems
	}

	return f
}
