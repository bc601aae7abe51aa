package mapping

import (
	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/models"
)

// ToModelPayment converts a domain PaymentRecord to a model PaymentRecord
func ToModelPayment(d domain.PaymentRecord) models.PaymentRecord {
	return models.PaymentRecord{
		PaymentID:             d.PaymentID,
		BookingID:             d.BookingID,
		CabinID:               d.CabinID,
		Amount:                d.Amount,
		Currency:              d.Currency,
		DueDate:               d.DueDate,
		PaidDate:              d.PaidDate,
		PaymentMethod:         d.PaymentMethod,
		ReceiptID:             d.ReceiptID,
		SyncedToReceipt:       d.SyncedToReceipt,
		NeedsAccountingAction: d.NeedsAccountingAction,
		AuditFields:           ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainPayment converts a model PaymentRecord to a domain PaymentRecord
func ToDomainPayment(m models.PaymentRecord) domain.PaymentRecord {
	return domain.PaymentRecord{
		PaymentID:             m.PaymentID,
		BookingID:             m.BookingID,
		CabinID:               m.CabinID,
		Amount:                m.Amount,
		Currency:              m.Currency,
		DueDate:               m.DueDate,
		PaidDate:              m.PaidDate,
		PaymentMethod:         m.PaymentMethod,
		ReceiptID:             m.ReceiptID,
		SyncedToReceipt:       m.SyncedToReceipt,
		NeedsAccountingAction: m.NeedsAccountingAction,
		AuditFields:           ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainPaymentSlice converts a slice of model PaymentRecords
func ToDomainPaymentSlice(ms []models.PaymentRecord) []domain.PaymentRecord {
	ds := make([]domain.PaymentRecord, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
