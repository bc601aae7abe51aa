package services

import (
	"context"

	"github.com/siamsail/charterdesk/internal/core/domain"
	"github.com/siamsail/charterdesk/internal/dto"
)

// PaymentReaderSvc defines read operations for the payment ledger
type PaymentReaderSvc interface {
	// ListPayments returns the ledger entries for a booking or cabin id.
	ListPayments(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error)
}

// PaymentWriterSvc defines write operations for the payment ledger
type PaymentWriterSvc interface {
	// RecordPayment appends a ledger entry and refreshes the owner's
	// payment status.
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest, creatorUserID string) (*domain.PaymentRecord, error)

	// MarkPaymentPaid sets the paid date on an entry and refreshes the
	// owner's payment status.
	MarkPaymentPaid(ctx context.Context, paymentID string, req dto.MarkPaymentPaidRequest, editorUserID string) (*domain.PaymentRecord, error)

	// MarkSyncedToReceipt links a ledger entry to its receipt and clears the
	// accounting-action flag.
	MarkSyncedToReceipt(ctx context.Context, paymentID string, receiptID string, editorUserID string) (*domain.PaymentRecord, error)

	// FlagAccountingAction marks an entry as needing manual accounting
	// reconciliation.
	FlagAccountingAction(ctx context.Context, paymentID string, editorUserID string) (*domain.PaymentRecord, error)
}

// PaymentSvcFacade combines all payment-related service interfaces
type PaymentSvcFacade interface {
	PaymentReaderSvc
	PaymentWriterSvc
}
