// Package commission computes the booking owner's commission and, for
// agency-sourced records, the agency commission deducted from charter
// revenue. All figures are normalized to THB before percentages apply.
// Like the pricing engine, every operation is a pure transform over a
// finance block: it recomputes every dependent field before returning, so a
// single edit can never leave one derived value computed against a stale
// sibling.
package commission

import (
	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/core/pricing"
)

var hundred = decimal.NewFromInt(100)

// Base is the THB-normalized revenue the owner's commission rate applies to.
type Base struct {
	Charter decimal.Decimal // charter fee net of agency commission
	Extras  decimal.Decimal // commissionable extras profit
	Total   decimal.Decimal
}

// ComputeBase derives the commission base from the finance block. Charter
// revenue with no known FX rate contributes zero rather than failing; the
// figure is simply incomplete until a rate is captured.
func ComputeBase(f domain.Finance) Base {
	charter := decimal.Zero
	if converted := pricing.ConvertToTHB(f.CharterFee, f.Currency, f.FxRate); converted != nil {
		charter = *converted
	}
	if f.SourceType == domain.SourceAgency && f.AgencyCommissionTHB != nil {
		charter = charter.Sub(*f.AgencyCommissionTHB)
	}

	extras := decimal.Zero
	for _, item := range f.ExtraItems {
		if !item.Commissionable {
			continue
		}
		extras = extras.Add(normalizeExtra(item, f))
	}

	return Base{Charter: charter, Extras: extras, Total: charter.Add(extras)}
}

// normalizeExtra converts one extra item's profit to THB. Priority: the
// item's own currency being THB, then the item's own rate, then the parent
// record's rate when the currencies match. An item that matches none of
// these passes through unconverted; that is a known limitation of the data,
// not an error.
func normalizeExtra(item domain.ExtraItem, f domain.Finance) decimal.Decimal {
	profit := item.Profit()

	currency := item.Currency
	if currency == "" {
		currency = f.Currency
	}
	if currency == domain.ReportingCurrency {
		return profit
	}
	if item.FxRate != nil && item.FxRate.IsPositive() {
		return profit.Mul(*item.FxRate)
	}
	if currency == f.Currency && f.FxRate != nil && f.FxRate.IsPositive() {
		return profit.Mul(*f.FxRate)
	}
	return profit
}

// ApplyRate sets the owner's commission rate and rederives both commission
// outputs. An explicit rate edit discards any manual total override.
func ApplyRate(f domain.Finance, rate decimal.Decimal) domain.Finance {
	f.CommissionRate = &rate
	base := ComputeBase(f)
	f.TotalCommission = f.TotalCommission.Clear(round2(base.Total.Mul(rate).Div(hundred)))
	return recomputeReceived(f)
}

// ApplyTotalOverride pins the total commission to a user-entered figure,
// bypassing the rate derivation, and rederives the received amount from it.
func ApplyTotalOverride(f domain.Finance, total decimal.Decimal) domain.Finance {
	f.TotalCommission = f.TotalCommission.Override(total)
	return recomputeReceived(f)
}

// ApplyDeduction sets the absolute deduction and rederives the received
// amount from the current total (auto-derived from the rate when the total
// has never been computed).
func ApplyDeduction(f domain.Finance, deduction decimal.Decimal) domain.Finance {
	f.CommissionDeduction = deduction
	f = ensureTotal(f)
	return recomputeReceived(f)
}

// ApplyAgencyRate sets the agency commission rate for an agency-sourced
// record, derives the agency amount and its THB equivalent, then rederives
// the owner's commission against the reduced charter base — all within this
// one call. Splitting the two derivations across separate update passes is
// exactly the staleness bug this design exists to prevent.
func ApplyAgencyRate(f domain.Finance, rate decimal.Decimal) domain.Finance {
	f.AgencyCommissionRate = &rate
	amount := round2(f.CharterFee.Mul(rate).Div(hundred))
	f.AgencyCommissionAmount = f.AgencyCommissionAmount.Clear(amount)
	return recomputeAgencyTHBAndOwner(f)
}

// ApplyAgencyAmount pins the agency commission to an absolute amount. The
// displayed rate is left as informational; only the amount feeds the math.
func ApplyAgencyAmount(f domain.Finance, amount decimal.Decimal) domain.Finance {
	f.AgencyCommissionAmount = f.AgencyCommissionAmount.Override(amount)
	return recomputeAgencyTHBAndOwner(f)
}

// Recompute rederives every commission output from current inputs without
// changing any of them. Edit transforms call it after fee, currency, rate or
// extras changes so the base is never read stale. Override tags are
// respected.
func Recompute(f domain.Finance) domain.Finance {
	if f.SourceType == domain.SourceAgency {
		return recomputeAgencyTHBAndOwner(f)
	}
	f = ensureTotal(f)
	return recomputeReceived(f)
}

func recomputeAgencyTHBAndOwner(f domain.Finance) domain.Finance {
	amount := f.AgencyCommissionAmount.Value
	thb := amount
	if converted := pricing.ConvertToTHB(amount, f.Currency, f.FxRate); converted != nil {
		thb = *converted
	}
	thb = round2(thb)
	f.AgencyCommissionTHB = &thb

	f = ensureTotal(f)
	return recomputeReceived(f)
}

// ensureTotal refreshes the rate-derived total commission. Overridden totals
// are left pinned; a missing rate leaves the total at zero.
func ensureTotal(f domain.Finance) domain.Finance {
	if f.CommissionRate == nil {
		return f
	}
	base := ComputeBase(f)
	f.TotalCommission = f.TotalCommission.Recompute(round2(base.Total.Mul(*f.CommissionRate).Div(hundred)))
	return f
}

func recomputeReceived(f domain.Finance) domain.Finance {
	received := round2(f.TotalCommission.Value.Sub(f.CommissionDeduction))
	f.CommissionReceived = f.CommissionReceived.Recompute(received)
	return f
}

// round2 rounds half away from zero to two decimal places, matching the
// round(x*100)/100 behaviour of the front office.
func round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
