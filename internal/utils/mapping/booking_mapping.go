package mapping

import (
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/models"
)

// ToModelBooking converts a domain Booking to a model Booking
func ToModelBooking(d domain.Booking) models.Booking {
	return models.Booking{
		BookingID:      d.BookingID,
		Reference:      d.Reference,
		CharterType:    string(d.CharterType),
		YachtName:      d.YachtName,
		GuestName:      d.GuestName,
		StartDate:      d.StartDate,
		EndDate:        d.EndDate,
		FinanceColumns: ToModelFinance(d.Finance),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainBooking converts a model Booking plus its extra item rows to a
// domain Booking
func ToDomainBooking(m models.Booking, extras []models.ExtraItem) domain.Booking {
	return domain.Booking{
		BookingID:   m.BookingID,
		Reference:   m.Reference,
		CharterType: domain.CharterType(m.CharterType),
		YachtName:   m.YachtName,
		GuestName:   m.GuestName,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		Finance:     ToDomainFinance(m.FinanceColumns, extras),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToModelCabin converts a domain CabinAllocation to a model CabinAllocation
func ToModelCabin(d domain.CabinAllocation) models.CabinAllocation {
	return models.CabinAllocation{
		CabinID:        d.CabinID,
		BookingID:      d.BookingID,
		CabinName:      d.CabinName,
		GuestName:      d.GuestName,
		FinanceColumns: ToModelFinance(d.Finance),
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCabin converts a model CabinAllocation plus its extra item rows to
// a domain CabinAllocation
func ToDomainCabin(m models.CabinAllocation, extras []models.ExtraItem) domain.CabinAllocation {
	return domain.CabinAllocation{
		CabinID:     m.CabinID,
		BookingID:   m.BookingID,
		CabinName:   m.CabinName,
		GuestName:   m.GuestName,
		Finance:     ToDomainFinance(m.FinanceColumns, extras),
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}
