package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/siamsail/charterdesk/internal/core/domain"
)

// CreatePaymentRequest appends one entry to a booking's or cabin's payment
// ledger.
type CreatePaymentRequest struct {
	BookingID     string          `json:"bookingID" binding:"required"`
	CabinID       string          `json:"cabinID,omitempty"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency" binding:"required,len=3,uppercase"`
	DueDate       *time.Time      `json:"dueDate,omitempty"`
	PaidDate      *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod string          `json:"paymentMethod,omitempty"`
}

// MarkPaymentPaidRequest sets the paid date on a ledger entry.
type MarkPaymentPaidRequest struct {
	PaidDate      time.Time `json:"paidDate" binding:"required"`
	PaymentMethod string    `json:"paymentMethod,omitempty"`
}

// SyncReceiptRequest links a ledger entry to a receipt.
type SyncReceiptRequest struct {
	ReceiptID string `json:"receiptID" binding:"required"`
}

// PaymentResponse defines the structure for API responses containing payment details.
type PaymentResponse struct {
	PaymentID             string          `json:"paymentID"`
	BookingID             string          `json:"bookingID"`
	CabinID               string          `json:"cabinID,omitempty"`
	Amount                decimal.Decimal `json:"amount"`
	Currency              string          `json:"currency"`
	DueDate               *time.Time      `json:"dueDate,omitempty"`
	PaidDate              *time.Time      `json:"paidDate,omitempty"`
	PaymentMethod         string          `json:"paymentMethod,omitempty"`
	ReceiptID             string          `json:"receiptID,omitempty"`
	SyncedToReceipt       bool            `json:"syncedToReceipt"`
	NeedsAccountingAction bool            `json:"needsAccountingAction"`
	CreatedAt             time.Time       `json:"createdAt"`
}

// ToPaymentResponse converts a domain.PaymentRecord to PaymentResponse DTO
func ToPaymentResponse(p *domain.PaymentRecord) PaymentResponse {
	return PaymentResponse{
		PaymentID:             p.PaymentID,
		BookingID:             p.BookingID,
		CabinID:               p.CabinID,
		Amount:                p.Amount,
		Currency:              p.Currency,
		DueDate:               p.DueDate,
		PaidDate:              p.PaidDate,
		PaymentMethod:         p.PaymentMethod,
		ReceiptID:             p.ReceiptID,
		SyncedToReceipt:       p.SyncedToReceipt,
		NeedsAccountingAction: p.NeedsAccountingAction,
		CreatedAt:             p.CreatedAt,
	}
}

// ToListPaymentsResponse converts a slice of ledger entries.
func ToListPaymentsResponse(payments []domain.PaymentRecord) []PaymentResponse {
	responses := make([]PaymentResponse, len(payments))
	for i := range payments {
		responses[i] = ToPaymentResponse(&payments[i])
	}
	return responses
}
