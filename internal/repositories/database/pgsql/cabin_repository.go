package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	"github.com/siamsail/charterdesk/internal/models"
	"github.com/siamsail/charterdesk/internal/utils/mapping"
)

type PgxCabinRepository struct {
	BaseRepository
}

// newPgxCabinRepository creates a new repository for cabin allocation data.
func newPgxCabinRepository(pool *pgxpool.Pool) portsrepo.CabinRepositoryFacade {
	return &PgxCabinRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxCabinRepository implements portsrepo.CabinRepositoryFacade
var _ portsrepo.CabinRepositoryFacade = (*PgxCabinRepository)(nil)

// SaveCabin inserts a new cabin allocation and its extra items in one
// transaction.
func (r *PgxCabinRepository) SaveCabin(ctx context.Context, cabin domain.CabinAllocation) error {
	m := mapping.ToModelCabin(cabin)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO cabin_allocations (
			cabin_id, booking_id, cabin_name, guest_name,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4,
			$5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25,
			$26, $27, $28, $29)
	`
	args := []any{m.CabinID, m.BookingID, m.CabinName, m.GuestName}
	args = append(args, financeArgs(m.FinanceColumns)...)
	args = append(args, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("%w: cabin '%s'", apperrors.ErrDuplicate, cabin.CabinID)
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: booking '%s'", apperrors.ErrNotFound, cabin.BookingID)
			}
		}
		return fmt.Errorf("error inserting cabin allocation: %w", err)
	}

	if err := insertExtraItems(ctx, tx, mapping.ToModelExtraItems(cabin.ExtraItems, "", cabin.CabinID)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindCabinByID retrieves a cabin allocation and its extra items.
func (r *PgxCabinRepository) FindCabinByID(ctx context.Context, cabinID string) (*domain.CabinAllocation, error) {
	query := `
		SELECT cabin_id, booking_id, cabin_name, guest_name,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cabin_allocations
		WHERE cabin_id = $1
	`
	var m models.CabinAllocation
	dest := []any{&m.CabinID, &m.BookingID, &m.CabinName, &m.GuestName}
	dest = append(dest, scanFinance(&m.FinanceColumns)...)
	dest = append(dest, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)

	if err := r.Pool.QueryRow(ctx, query, cabinID).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding cabin allocation: %w", err)
	}

	extras, err := loadExtraItems(ctx, r.Pool, "cabin_id", cabinID)
	if err != nil {
		return nil, err
	}

	cabin := mapping.ToDomainCabin(m, extras)
	return &cabin, nil
}

// ListCabinsByBooking retrieves the cabin allocations of a booking in
// creation order.
func (r *PgxCabinRepository) ListCabinsByBooking(ctx context.Context, bookingID string) ([]domain.CabinAllocation, error) {
	query := `
		SELECT cabin_id, booking_id, cabin_name, guest_name,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		FROM cabin_allocations
		WHERE booking_id = $1
		ORDER BY created_at
	`
	rows, err := r.Pool.Query(ctx, query, bookingID)
	if err != nil {
		return nil, fmt.Errorf("error listing cabin allocations: %w", err)
	}
	defer rows.Close()

	var ms []models.CabinAllocation
	for rows.Next() {
		var m models.CabinAllocation
		dest := []any{&m.CabinID, &m.BookingID, &m.CabinName, &m.GuestName}
		dest = append(dest, scanFinance(&m.FinanceColumns)...)
		dest = append(dest, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("error scanning cabin allocation row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cabin allocation rows: %w", err)
	}

	cabins := make([]domain.CabinAllocation, len(ms))
	for i, m := range ms {
		extras, err := loadExtraItems(ctx, r.Pool, "cabin_id", m.CabinID)
		if err != nil {
			return nil, err
		}
		cabins[i] = mapping.ToDomainCabin(m, extras)
	}
	return cabins, nil
}

// UpdateCabin replaces the cabin's mutable fields and rewrites its extra
// items.
func (r *PgxCabinRepository) UpdateCabin(ctx context.Context, cabin domain.CabinAllocation) error {
	m := mapping.ToModelCabin(cabin)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE cabin_allocations SET
			cabin_name = $2, guest_name = $3,
			currency = $4, charter_fee = $5, admin_fee = $6, extra_charges = $7,
			fx_rate = $8, fx_rate_source = $9, total_price = $10, thb_total_price = $11,
			commission_rate = $12, total_commission = $13, total_commission_overridden = $14,
			commission_deduction = $15, commission_received = $16, commission_received_overridden = $17,
			applied_default_rate = $18, source_type = $19,
			agency_commission_rate = $20, agency_commission_amount = $21, agency_commission_amount_overridden = $22,
			agency_commission_thb = $23, payment_status = $24,
			last_updated_at = $25, last_updated_by = $26
		WHERE cabin_id = $1
	`
	args := []any{m.CabinID, m.CabinName, m.GuestName}
	args = append(args, financeArgs(m.FinanceColumns)...)
	args = append(args, m.LastUpdatedAt, m.LastUpdatedBy)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating cabin allocation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM extra_items WHERE cabin_id = $1`, m.CabinID); err != nil {
		return fmt.Errorf("error clearing extra items: %w", err)
	}
	if err := insertExtraItems(ctx, tx, mapping.ToModelExtraItems(cabin.ExtraItems, "", cabin.CabinID)); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteCabin removes a cabin allocation with its extra items and payments.
func (r *PgxCabinRepository) DeleteCabin(ctx context.Context, cabinID string, deleterUserID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM payments WHERE cabin_id = $1`, cabinID); err != nil {
		return fmt.Errorf("error deleting cabin payments: %w", err)
	}
	if _, err := tx.Exec(ctx, `DELETE FROM extra_items WHERE cabin_id = $1`, cabinID); err != nil {
		return fmt.Errorf("error deleting cabin extra items: %w", err)
	}

	tag, err := tx.Exec(ctx, `DELETE FROM cabin_allocations WHERE cabin_id = $1`, cabinID)
	if err != nil {
		return fmt.Errorf("error deleting cabin allocation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}
