package pricing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func decPtr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func TestRecomputeTotals_CabinSumsFeeAndAdmin(t *testing.T) {
	f := domain.Finance{
		Currency:   "THB",
		CharterFee: dec("1200"),
		AdminFee:   dec("300"),
		// ExtraCharges must not leak into the cabin total.
		ExtraCharges: dec("999"),
	}

	got := RecomputeTotals(f, domain.LevelCabin)
	assert.True(t, got.TotalPrice.Equal(dec("1500")), "got %s", got.TotalPrice)
}

func TestRecomputeTotals_BookingSumsFeeAndExtraCharges(t *testing.T) {
	f := domain.Finance{
		Currency:     "THB",
		CharterFee:   dec("1200"),
		AdminFee:     dec("999"),
		ExtraCharges: dec("300"),
	}

	got := RecomputeTotals(f, domain.LevelBooking)
	assert.True(t, got.TotalPrice.Equal(dec("1500")), "got %s", got.TotalPrice)
}

func TestRecomputeTotals_THBPassthrough(t *testing.T) {
	f := domain.Finance{
		Currency:   "THB",
		CharterFee: dec("5000"),
		// A stray FX rate on a THB record must be ignored.
		FxRate: decPtr("35"),
	}

	got := RecomputeTotals(f, domain.LevelBooking)
	require.NotNil(t, got.ThbTotalPrice)
	assert.True(t, got.ThbTotalPrice.Equal(got.TotalPrice))
}

func TestRecomputeTotals_ConvertsWithRate(t *testing.T) {
	f := domain.Finance{
		Currency:   "USD",
		CharterFee: dec("1000.555"),
		FxRate:     decPtr("35"),
	}

	got := RecomputeTotals(f, domain.LevelBooking)
	require.NotNil(t, got.ThbTotalPrice)
	// 1000.555 * 35 = 35019.425 -> 35019.43 after rounding
	assert.True(t, got.ThbTotalPrice.Equal(dec("35019.43")), "got %s", got.ThbTotalPrice)
}

func TestRecomputeTotals_NoRateLeavesTHBUnset(t *testing.T) {
	f := domain.Finance{
		Currency:   "EUR",
		CharterFee: dec("1000"),
	}

	got := RecomputeTotals(f, domain.LevelBooking)
	assert.Nil(t, got.ThbTotalPrice)

	// A non-positive rate is treated the same as no rate.
	f.FxRate = decPtr("0")
	got = RecomputeTotals(f, domain.LevelBooking)
	assert.Nil(t, got.ThbTotalPrice)
}

func TestRecomputeTotals_Idempotent(t *testing.T) {
	f := domain.Finance{
		Currency:     "USD",
		CharterFee:   dec("1234.565"),
		ExtraCharges: dec("10.01"),
		FxRate:       decPtr("35.17"),
	}

	once := RecomputeTotals(f, domain.LevelBooking)
	twice := RecomputeTotals(once, domain.LevelBooking)

	assert.True(t, once.TotalPrice.Equal(twice.TotalPrice))
	require.NotNil(t, twice.ThbTotalPrice)
	assert.True(t, once.ThbTotalPrice.Equal(*twice.ThbTotalPrice))
}

func TestConvertToTHB(t *testing.T) {
	got := ConvertToTHB(dec("100"), "THB", nil)
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("100")))

	got = ConvertToTHB(dec("100"), "USD", decPtr("35"))
	require.NotNil(t, got)
	assert.True(t, got.Equal(dec("3500")))

	assert.Nil(t, ConvertToTHB(dec("100"), "USD", nil))
	assert.Nil(t, ConvertToTHB(dec("100"), "USD", decPtr("-1")))
}

func TestClassifyPaymentStatus(t *testing.T) {
	paid := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	entry := func(amount string, paidDate *time.Time) domain.PaymentRecord {
		return domain.PaymentRecord{Amount: dec(amount), PaidDate: paidDate}
	}

	tests := []struct {
		name     string
		payments []domain.PaymentRecord
		price    string
		want     domain.PaymentStatus
	}{
		{"empty ledger", nil, "1000", domain.PaymentUnpaid},
		{"paid in full", []domain.PaymentRecord{entry("100", &paid)}, "100", domain.PaymentPaid},
		{"partial", []domain.PaymentRecord{entry("100", &paid)}, "150", domain.PaymentPartial},
		{"zero price never paid", []domain.PaymentRecord{entry("100", &paid)}, "0", domain.PaymentUnpaid},
		{"unpaid entry ignored", []domain.PaymentRecord{entry("100", nil)}, "100", domain.PaymentUnpaid},
		{"overpaid", []domain.PaymentRecord{entry("60", &paid), entry("60", &paid)}, "100", domain.PaymentPaid},
		{"non-positive amounts ignored", []domain.PaymentRecord{entry("-50", &paid), entry("30", &paid)}, "100", domain.PaymentPartial},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClassifyPaymentStatus(tt.payments, dec(tt.price))
			assert.Equal(t, tt.want, got)
		})
	}
}
