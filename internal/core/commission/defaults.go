package commission

import (
	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

var (
	defaultDirectRate   = decimal.NewFromInt(2) // direct non-bareboat
	defaultAgencyRate   = decimal.NewFromInt(1)
	defaultBareboatRate = decimal.NewFromInt(4) // booking-level bareboat
)

// DefaultRate is the advisory commission rate applied when the user has not
// entered one.
func DefaultRate(source domain.SourceType, charter domain.CharterType, level domain.RecordLevel) decimal.Decimal {
	if source == domain.SourceAgency {
		return defaultAgencyRate
	}
	if charter == domain.CharterBareboat && level == domain.LevelBooking {
		return defaultBareboatRate
	}
	return defaultDirectRate
}

// EnsureDefaultRate applies the default commission rate when none is set, and
// re-applies it after a source/charter-type change as long as the current
// rate still equals the default previously applied — i.e. the user has never
// diverged from the default. AppliedDefaultRate is the marker tracking that.
func EnsureDefaultRate(f domain.Finance, charter domain.CharterType, level domain.RecordLevel) domain.Finance {
	def := DefaultRate(f.SourceType, charter, level)

	switch {
	case f.CommissionRate == nil:
		// First touch: adopt the default.
	case f.AppliedDefaultRate != nil && f.CommissionRate.Equal(*f.AppliedDefaultRate):
		// Still on the previously applied default: follow the new one.
	default:
		// User has diverged; leave their rate alone.
		return f
	}

	f.AppliedDefaultRate = &def
	if f.CommissionRate != nil && f.CommissionRate.Equal(def) {
		// Default unchanged: nothing to rederive. A manual total override
		// must survive edits that touch neither the rate nor the base.
		return f
	}
	// Auto-applied defaults rederive through Recompute, which respects
	// override tags; only an explicit user rate edit (ApplyRate) clears a
	// pinned total.
	f.CommissionRate = &def
	return Recompute(f)
}
