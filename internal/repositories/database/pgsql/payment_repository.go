package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	"github.com/siamsail/charterdesk/internal/models"
	"github.com/siamsail/charterdesk/internal/utils/mapping"
)

const paymentColumns = `payment_id, COALESCE(booking_id, ''), COALESCE(cabin_id, ''), amount, currency,
		due_date, paid_date, payment_method, receipt_id, synced_to_receipt, needs_accounting_action,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxPaymentRepository struct {
	BaseRepository
}

// newPgxPaymentRepository creates a new repository for the payment ledger.
func newPgxPaymentRepository(pool *pgxpool.Pool) portsrepo.PaymentLedger {
	return &PgxPaymentRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxPaymentRepository implements portsrepo.PaymentLedger
var _ portsrepo.PaymentLedger = (*PgxPaymentRepository)(nil)

func scanPayment(row pgx.Row) (models.PaymentRecord, error) {
	var m models.PaymentRecord
	err := row.Scan(
		&m.PaymentID, &m.BookingID, &m.CabinID, &m.Amount, &m.Currency,
		&m.DueDate, &m.PaidDate, &m.PaymentMethod, &m.ReceiptID, &m.SyncedToReceipt, &m.NeedsAccountingAction,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// ListPaymentsFor returns the ledger entries of a booking or cabin, oldest
// first. An unknown owner yields an empty slice.
func (r *PgxPaymentRepository) ListPaymentsFor(ctx context.Context, ownerID string) ([]domain.PaymentRecord, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE (booking_id = $1 AND cabin_id IS NULL) OR cabin_id = $1
		ORDER BY created_at
	`
	rows, err := r.Pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error listing payments: %w", err)
	}
	defer rows.Close()

	var ms []models.PaymentRecord
	for rows.Next() {
		m, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("error scanning payment row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return mapping.ToDomainPaymentSlice(ms), nil
}

// FindPaymentByID retrieves a single ledger entry.
func (r *PgxPaymentRepository) FindPaymentByID(ctx context.Context, paymentID string) (*domain.PaymentRecord, error) {
	query := `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE payment_id = $1
	`
	m, err := scanPayment(r.Pool.QueryRow(ctx, query, paymentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding payment: %w", err)
	}

	payment := mapping.ToDomainPayment(m)
	return &payment, nil
}

// SavePayment appends a new ledger entry.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.PaymentRecord) error {
	m := mapping.ToModelPayment(payment)

	query := `
		INSERT INTO payments (
			payment_id, booking_id, cabin_id, amount, currency,
			due_date, paid_date, payment_method, receipt_id, synced_to_receipt, needs_accounting_action,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	`
	var cabinID *string
	if m.CabinID != "" {
		cabinID = &m.CabinID
	}
	if _, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.BookingID, cabinID, m.Amount, m.Currency,
		m.DueDate, m.PaidDate, m.PaymentMethod, m.ReceiptID, m.SyncedToReceipt, m.NeedsAccountingAction,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("%w: payment '%s'", apperrors.ErrDuplicate, payment.PaymentID)
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: payment owner", apperrors.ErrNotFound)
			}
		}
		return fmt.Errorf("error inserting payment: %w", err)
	}
	return nil
}

// UpdatePayment replaces an existing ledger entry.
func (r *PgxPaymentRepository) UpdatePayment(ctx context.Context, payment domain.PaymentRecord) error {
	m := mapping.ToModelPayment(payment)

	query := `
		UPDATE payments SET
			amount = $2, currency = $3, due_date = $4, paid_date = $5, payment_method = $6,
			receipt_id = $7, synced_to_receipt = $8, needs_accounting_action = $9,
			last_updated_at = $10, last_updated_by = $11
		WHERE payment_id = $1
	`
	tag, err := r.Pool.Exec(ctx, query,
		m.PaymentID, m.Amount, m.Currency, m.DueDate, m.PaidDate, m.PaymentMethod,
		m.ReceiptID, m.SyncedToReceipt, m.NeedsAccountingAction,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("error updating payment: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
