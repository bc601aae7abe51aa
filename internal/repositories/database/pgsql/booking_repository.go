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
	"github.com/siamsail/charterdesk/internal/utils/pagination"
)

// financeColumns is the shared column list of the flattened finance block,
// kept in one place so inserts and scans cannot drift apart.
const financeColumns = `currency, charter_fee, admin_fee, extra_charges,
		fx_rate, fx_rate_source, total_price, thb_total_price,
		commission_rate, total_commission, total_commission_overridden,
		commission_deduction, commission_received, commission_received_overridden,
		applied_default_rate, source_type,
		agency_commission_rate, agency_commission_amount, agency_commission_amount_overridden,
		agency_commission_thb, payment_status`

type PgxBookingRepository struct {
	BaseRepository
}

// newPgxBookingRepository creates a new repository for booking data.
func newPgxBookingRepository(pool *pgxpool.Pool) portsrepo.BookingRepositoryFacade {
	return &PgxBookingRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxBookingRepository implements portsrepo.BookingRepositoryFacade
var _ portsrepo.BookingRepositoryFacade = (*PgxBookingRepository)(nil)

func scanFinance(f *models.FinanceColumns) []any {
	return []any{
		&f.Currency, &f.CharterFee, &f.AdminFee, &f.ExtraCharges,
		&f.FxRate, &f.FxRateSource, &f.TotalPrice, &f.ThbTotalPrice,
		&f.CommissionRate, &f.TotalCommission, &f.TotalCommissionOverridden,
		&f.CommissionDeduction, &f.CommissionReceived, &f.CommissionReceivedOverridden,
		&f.AppliedDefaultRate, &f.SourceType,
		&f.AgencyCommissionRate, &f.AgencyCommissionAmount, &f.AgencyCommissionAmountOverridden,
		&f.AgencyCommissionTHB, &f.PaymentStatus,
	}
}

func financeArgs(f models.FinanceColumns) []any {
	return []any{
		f.Currency, f.CharterFee, f.AdminFee, f.ExtraCharges,
		f.FxRate, f.FxRateSource, f.TotalPrice, f.ThbTotalPrice,
		f.CommissionRate, f.TotalCommission, f.TotalCommissionOverridden,
		f.CommissionDeduction, f.CommissionReceived, f.CommissionReceivedOverridden,
		f.AppliedDefaultRate, f.SourceType,
		f.AgencyCommissionRate, f.AgencyCommissionAmount, f.AgencyCommissionAmountOverridden,
		f.AgencyCommissionTHB, f.PaymentStatus,
	}
}

// SaveBooking inserts a new booking and its extra items in one transaction.
func (r *PgxBookingRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	m := mapping.ToModelBooking(booking)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO bookings (
			booking_id, reference, charter_type, yacht_name, guest_name, start_date, end_date,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7,
			$8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28,
			$29, $30, $31, $32)
	`
	args := []any{m.BookingID, m.Reference, m.CharterType, m.YachtName, m.GuestName, m.StartDate, m.EndDate}
	args = append(args, financeArgs(m.FinanceColumns)...)
	args = append(args, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return fmt.Errorf("%w: booking reference '%s'", apperrors.ErrDuplicate, booking.Reference)
		}
		return fmt.Errorf("error inserting booking: %w", err)
	}

	if err := insertExtraItems(ctx, tx, mapping.ToModelExtraItems(booking.ExtraItems, booking.BookingID, "")); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// FindBookingByID retrieves a booking and its extra items.
func (r *PgxBookingRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `
		SELECT
			booking_id, reference, charter_type, yacht_name, guest_name, start_date, end_date,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		FROM bookings
		WHERE booking_id = $1
	`
	var m models.Booking
	dest := []any{&m.BookingID, &m.Reference, &m.CharterType, &m.YachtName, &m.GuestName, &m.StartDate, &m.EndDate}
	dest = append(dest, scanFinance(&m.FinanceColumns)...)
	dest = append(dest, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)

	if err := r.Pool.QueryRow(ctx, query, bookingID).Scan(dest...); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding booking: %w", err)
	}

	extras, err := loadExtraItems(ctx, r.Pool, "booking_id", bookingID)
	if err != nil {
		return nil, err
	}

	booking := mapping.ToDomainBooking(m, extras)
	return &booking, nil
}

// ListBookings retrieves a page of bookings ordered by start date descending,
// keyset-paginated on (start_date, created_at).
func (r *PgxBookingRepository) ListBookings(ctx context.Context, limit int, nextToken *string) ([]domain.Booking, *string, error) {
	baseQuery := `
		SELECT
			booking_id, reference, charter_type, yacht_name, guest_name, start_date, end_date,
			` + financeColumns + `,
			created_at, created_by, last_updated_at, last_updated_by
		FROM bookings
	`

	var rows pgx.Rows
	var err error
	if nextToken != nil && *nextToken != "" {
		startDate, createdAt, tokenErr := pagination.DecodeToken(*nextToken)
		if tokenErr != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, tokenErr)
		}
		rows, err = r.Pool.Query(ctx, baseQuery+`
			WHERE (start_date, created_at) < ($1, $2)
			ORDER BY start_date DESC, created_at DESC
			LIMIT $3`, startDate, createdAt, limit+1)
	} else {
		rows, err = r.Pool.Query(ctx, baseQuery+`
			ORDER BY start_date DESC, created_at DESC
			LIMIT $1`, limit+1)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("error listing bookings: %w", err)
	}
	defer rows.Close()

	var ms []models.Booking
	for rows.Next() {
		var m models.Booking
		dest := []any{&m.BookingID, &m.Reference, &m.CharterType, &m.YachtName, &m.GuestName, &m.StartDate, &m.EndDate}
		dest = append(dest, scanFinance(&m.FinanceColumns)...)
		dest = append(dest, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		if err := rows.Scan(dest...); err != nil {
			return nil, nil, fmt.Errorf("error scanning booking row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	var token *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		t := pagination.EncodeToken(last.StartDate, last.CreatedAt)
		token = &t
	}

	bookings := make([]domain.Booking, len(ms))
	for i, m := range ms {
		extras, err := loadExtraItems(ctx, r.Pool, "booking_id", m.BookingID)
		if err != nil {
			return nil, nil, err
		}
		bookings[i] = mapping.ToDomainBooking(m, extras)
	}
	return bookings, token, nil
}

// UpdateBooking replaces the booking's mutable fields and rewrites its extra
// items.
func (r *PgxBookingRepository) UpdateBooking(ctx context.Context, booking domain.Booking) error {
	m := mapping.ToModelBooking(booking)

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		UPDATE bookings SET
			reference = $2, charter_type = $3, yacht_name = $4, guest_name = $5,
			start_date = $6, end_date = $7,
			currency = $8, charter_fee = $9, admin_fee = $10, extra_charges = $11,
			fx_rate = $12, fx_rate_source = $13, total_price = $14, thb_total_price = $15,
			commission_rate = $16, total_commission = $17, total_commission_overridden = $18,
			commission_deduction = $19, commission_received = $20, commission_received_overridden = $21,
			applied_default_rate = $22, source_type = $23,
			agency_commission_rate = $24, agency_commission_amount = $25, agency_commission_amount_overridden = $26,
			agency_commission_thb = $27, payment_status = $28,
			last_updated_at = $29, last_updated_by = $30
		WHERE booking_id = $1
	`
	args := []any{m.BookingID, m.Reference, m.CharterType, m.YachtName, m.GuestName, m.StartDate, m.EndDate}
	args = append(args, financeArgs(m.FinanceColumns)...)
	args = append(args, m.LastUpdatedAt, m.LastUpdatedBy)

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("error updating booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM extra_items WHERE booking_id = $1`, m.BookingID); err != nil {
		return fmt.Errorf("error clearing extra items: %w", err)
	}
	if err := insertExtraItems(ctx, tx, mapping.ToModelExtraItems(booking.ExtraItems, booking.BookingID, "")); err != nil {
		return err
	}

	return r.Commit(ctx, tx)
}

// DeleteBooking removes a booking with its cabins, extra items and payments.
func (r *PgxBookingRepository) DeleteBooking(ctx context.Context, bookingID string, deleterUserID string, now time.Time) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	// Dependent rows first; extra_items carries both booking- and cabin-level
	// rows for this booking's tree.
	statements := []string{
		`DELETE FROM payments WHERE booking_id = $1`,
		`DELETE FROM extra_items WHERE booking_id = $1
			OR cabin_id IN (SELECT cabin_id FROM cabin_allocations WHERE booking_id = $1)`,
		`DELETE FROM cabin_allocations WHERE booking_id = $1`,
	}
	for _, stmt := range statements {
		if _, err := tx.Exec(ctx, stmt, bookingID); err != nil {
			return fmt.Errorf("error deleting booking dependents: %w", err)
		}
	}

	tag, err := tx.Exec(ctx, `DELETE FROM bookings WHERE booking_id = $1`, bookingID)
	if err != nil {
		return fmt.Errorf("error deleting booking: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}

	return r.Commit(ctx, tx)
}

// insertExtraItems writes the ordered extra item rows of one owning record.
func insertExtraItems(ctx context.Context, tx pgx.Tx, items []models.ExtraItem) error {
	const query = `
		INSERT INTO extra_items (
			extra_item_id, booking_id, cabin_id, position, name, type,
			selling_price, cost, currency, fx_rate, commissionable, project_id
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	for _, item := range items {
		id := item.ExtraItemID
		if id == "" {
			id = newExtraItemID()
		}
		var bookingID, cabinID *string
		if item.BookingID != "" {
			bookingID = &item.BookingID
		}
		if item.CabinID != "" {
			cabinID = &item.CabinID
		}
		if _, err := tx.Exec(ctx, query,
			id, bookingID, cabinID, item.Position, item.Name, item.Type,
			item.SellingPrice, item.Cost, item.Currency, item.FxRate, item.Commissionable, item.ProjectID,
		); err != nil {
			return fmt.Errorf("error inserting extra item: %w", err)
		}
	}
	return nil
}

// loadExtraItems reads the extra item rows of one owning record in form
// order.
func loadExtraItems(ctx context.Context, pool *pgxpool.Pool, ownerColumn, ownerID string) ([]models.ExtraItem, error) {
	query := `
		SELECT extra_item_id, COALESCE(booking_id, ''), COALESCE(cabin_id, ''), position, name, type,
			selling_price, cost, currency, fx_rate, commissionable, project_id
		FROM extra_items
		WHERE ` + ownerColumn + ` = $1
		ORDER BY position
	`
	rows, err := pool.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("error loading extra items: %w", err)
	}
	defer rows.Close()

	var items []models.ExtraItem
	for rows.Next() {
		var item models.ExtraItem
		if err := rows.Scan(
			&item.ExtraItemID, &item.BookingID, &item.CabinID, &item.Position, &item.Name, &item.Type,
			&item.SellingPrice, &item.Cost, &item.Currency, &item.FxRate, &item.Commissionable, &item.ProjectID,
		); err != nil {
			return nil, fmt.Errorf("error scanning extra item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating extra item rows: %w", err)
	}
	return items, nil
}
