// Package pricing maintains the derived price fields of a booking or cabin
// finance block: the total price, its THB equivalent, and the payment status
// classification. Every function is a pure value-to-value mapping; absent
// numeric inputs are treated as zero and no operation can fail.
package pricing

import (
	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// RecomputeTotals refreshes TotalPrice and ThbTotalPrice from the fee fields.
// The fee composition differs by level: a booking totals charter fee plus
// extra charges, a cabin totals charter fee plus admin fee. The divergence is
// deliberate and must not be unified.
func RecomputeTotals(f domain.Finance, level domain.RecordLevel) domain.Finance {
	switch level {
	case domain.LevelCabin:
		f.TotalPrice = f.CharterFee.Add(f.AdminFee)
	default:
		f.TotalPrice = f.CharterFee.Add(f.ExtraCharges)
	}

	if f.Currency == domain.ReportingCurrency {
		thb := f.TotalPrice
		f.ThbTotalPrice = &thb
		return f
	}

	if converted := ConvertToTHB(f.TotalPrice, f.Currency, f.FxRate); converted != nil {
		thb := converted.Round(2)
		f.ThbTotalPrice = &thb
	} else {
		f.ThbTotalPrice = nil
	}
	return f
}

// ConvertToTHB converts an amount in the given currency to THB. THB amounts
// pass through unchanged. A missing or non-positive rate yields nil: the
// engine refuses to guess a rate, and callers must not display a value.
func ConvertToTHB(amount decimal.Decimal, currency string, fxRate *decimal.Decimal) *decimal.Decimal {
	if currency == domain.ReportingCurrency {
		return &amount
	}
	if fxRate != nil && fxRate.IsPositive() {
		converted := amount.Mul(*fxRate)
		return &converted
	}
	return nil
}

// ClassifyPaymentStatus derives the three-way payment status from the ledger.
// Only entries with a paid date and a positive amount count. A zero-price
// record never auto-classifies as paid, however large the paid sum.
func ClassifyPaymentStatus(payments []domain.PaymentRecord, price decimal.Decimal) domain.PaymentStatus {
	totalPaid := decimal.Zero
	for _, p := range payments {
		if p.PaidDate != nil && p.Amount.IsPositive() {
			totalPaid = totalPaid.Add(p.Amount)
		}
	}

	if price.IsPositive() && totalPaid.GreaterThanOrEqual(price) {
		return domain.PaymentPaid
	}
	if totalPaid.IsPositive() && totalPaid.LessThan(price) {
		return domain.PaymentPartial
	}
	return domain.PaymentUnpaid
}
