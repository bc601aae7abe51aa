package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/siamsail/charterdesk/internal/apperrors"
	"github.com/siamsail/charterdesk/internal/core/domain"
	portsrepo "github.com/siamsail/charterdesk/internal/core/ports/repositories"
	"github.com/siamsail/charterdesk/internal/models"
	"github.com/siamsail/charterdesk/internal/utils/mapping"
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepository {
	return &PgxCurrencyRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxCurrencyRepository implements portsrepo.CurrencyRepository
var _ portsrepo.CurrencyRepository = (*PgxCurrencyRepository)(nil)

// FindCurrencyByCode retrieves a specific currency by its code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		WHERE currency_code = $1
	`
	var m models.Currency
	err := r.Pool.QueryRow(ctx, query, currencyCode).Scan(
		&m.CurrencyCode, &m.Symbol, &m.Name, &m.Precision,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding currency: %w", err)
	}

	currency := mapping.ToDomainCurrency(m)
	return &currency, nil
}

// ListCurrencies retrieves all supported currencies ordered by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_code, symbol, name, precision,
			created_at, created_by, last_updated_at, last_updated_by
		FROM currencies
		ORDER BY currency_code
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing currencies: %w", err)
	}
	defer rows.Close()

	var ms []models.Currency
	for rows.Next() {
		var m models.Currency
		if err := rows.Scan(
			&m.CurrencyCode, &m.Symbol, &m.Name, &m.Precision,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("error scanning currency row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating currency rows: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms), nil
}

type PgxLookupRepository struct {
	BaseRepository
}

// newPgxLookupRepository creates a new repository for autocomplete lookups.
func newPgxLookupRepository(pool *pgxpool.Pool) portsrepo.LookupRepository {
	return &PgxLookupRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxLookupRepository implements portsrepo.LookupRepository
var _ portsrepo.LookupRepository = (*PgxLookupRepository)(nil)

// ExtrasLookups returns the known extra-item names for a category.
func (r *PgxLookupRepository) ExtrasLookups(ctx context.Context, category string) ([]string, error) {
	query := `
		SELECT name
		FROM extras_lookups
		WHERE category = $1
		ORDER BY name
	`
	rows, err := r.Pool.Query(ctx, query, category)
	if err != nil {
		return nil, fmt.Errorf("error listing extras lookups: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("error scanning lookup row: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating lookup rows: %w", err)
	}
	return names, nil
}
