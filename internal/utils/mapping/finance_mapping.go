package mapping

import (
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/models"
)

// ToModelFinance flattens a domain finance block into table columns.
// ExtraItems live in their own table and are mapped separately.
func ToModelFinance(f domain.Finance) models.FinanceColumns {
	return models.FinanceColumns{
		Currency:     f.Currency,
		CharterFee:   f.CharterFee,
		AdminFee:     f.AdminFee,
		ExtraCharges: f.ExtraCharges,

		FxRate:       f.FxRate,
		FxRateSource: string(f.FxRateSource),

		TotalPrice:    f.TotalPrice,
		ThbTotalPrice: f.ThbTotalPrice,

		CommissionRate:               f.CommissionRate,
		TotalCommission:              f.TotalCommission.Value,
		TotalCommissionOverridden:    f.TotalCommission.Overridden,
		CommissionDeduction:          f.CommissionDeduction,
		CommissionReceived:           f.CommissionReceived.Value,
		CommissionReceivedOverridden: f.CommissionReceived.Overridden,
		AppliedDefaultRate:           f.AppliedDefaultRate,

		SourceType:                       string(f.SourceType),
		AgencyCommissionRate:             f.AgencyCommissionRate,
		AgencyCommissionAmount:           f.AgencyCommissionAmount.Value,
		AgencyCommissionAmountOverridden: f.AgencyCommissionAmount.Overridden,
		AgencyCommissionTHB:              f.AgencyCommissionTHB,

		PaymentStatus: string(f.PaymentStatus),
	}
}

// ToDomainFinance rebuilds a domain finance block from table columns and the
// separately loaded extra items.
func ToDomainFinance(m models.FinanceColumns, extras []models.ExtraItem) domain.Finance {
	f := domain.Finance{
		Currency:     m.Currency,
		CharterFee:   m.CharterFee,
		AdminFee:     m.AdminFee,
		ExtraCharges: m.ExtraCharges,

		FxRate:       m.FxRate,
		FxRateSource: domain.RateSource(m.FxRateSource),

		TotalPrice:    m.TotalPrice,
		ThbTotalPrice: m.ThbTotalPrice,

		CommissionRate:      m.CommissionRate,
		CommissionDeduction: m.CommissionDeduction,
		AppliedDefaultRate:  m.AppliedDefaultRate,

		SourceType:           domain.SourceType(m.SourceType),
		AgencyCommissionRate: m.AgencyCommissionRate,
		AgencyCommissionTHB:  m.AgencyCommissionTHB,

		ExtraItems: ToDomainExtraItemSlice(extras),

		PaymentStatus: domain.PaymentStatus(m.PaymentStatus),
	}

	f.TotalCommission = domain.Computed(m.TotalCommission)
	if m.TotalCommissionOverridden {
		f.TotalCommission = domain.Overridden(m.TotalCommission)
	}
	f.CommissionReceived = domain.Computed(m.CommissionReceived)
	if m.CommissionReceivedOverridden {
		f.CommissionReceived = domain.Overridden(m.CommissionReceived)
	}
	f.AgencyCommissionAmount = domain.Computed(m.AgencyCommissionAmount)
	if m.AgencyCommissionAmountOverridden {
		f.AgencyCommissionAmount = domain.Overridden(m.AgencyCommissionAmount)
	}

	return f
}

// ToModelExtraItems converts the ordered extra items of one owning record.
func ToModelExtraItems(items []domain.ExtraItem, bookingID, cabinID string) []models.ExtraItem {
	ms := make([]models.ExtraItem, len(items))
	for i, item := range items {
		ms[i] = models.ExtraItem{
			ExtraItemID:    item.ExtraItemID,
			BookingID:      bookingID,
			CabinID:        cabinID,
			Position:       i,
			Name:           item.Name,
			Type:           string(item.Type),
			SellingPrice:   item.SellingPrice,
			Cost:           item.Cost,
			Currency:       item.Currency,
			FxRate:         item.FxRate,
			Commissionable: item.Commissionable,
			ProjectID:      item.ProjectID,
		}
	}
	return ms
}

// ToDomainExtraItemSlice converts extra item rows; callers pass them already
// ordered by position.
func ToDomainExtraItemSlice(ms []models.ExtraItem) []domain.ExtraItem {
	ds := make([]domain.ExtraItem, len(ms))
	for i, m := range ms {
		ds[i] = domain.ExtraItem{
			ExtraItemID:    m.ExtraItemID,
			Name:           m.Name,
			Type:           domain.ExtraType(m.Type),
			SellingPrice:   m.SellingPrice,
			Cost:           m.Cost,
			Currency:       m.Currency,
			FxRate:         m.FxRate,
			Commissionable: m.Commissionable,
			ProjectID:      m.ProjectID,
		}
	}
	return ds
}
