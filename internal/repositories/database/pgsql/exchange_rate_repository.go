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

type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new repository for exchange rate data.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{BaseRepository{Pool: pool}}
}

// Ensure PgxExchangeRateRepository implements portsrepo.ExchangeRateRepositoryFacade
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// FindRate retrieves the most recent stored THB rate for the currency
// effective on or before the given date.
func (r *PgxExchangeRateRepository) FindRate(ctx context.Context, currencyCode string, date time.Time) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, currency_code, rate, source, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		FROM exchange_rates
		WHERE currency_code = $1 AND date_effective <= $2
		ORDER BY date_effective DESC, created_at DESC
		LIMIT 1
	`
	var m models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, currencyCode, date).Scan(
		&m.ExchangeRateID, &m.CurrencyCode, &m.Rate, &m.Source, &m.DateEffective,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("error finding exchange rate: %w", err)
	}

	rate := mapping.ToDomainExchangeRate(m)
	return &rate, nil
}

// SaveRate persists a new exchange rate.
func (r *PgxExchangeRateRepository) SaveRate(ctx context.Context, rate domain.ExchangeRate) error {
	m := mapping.ToModelExchangeRate(rate)

	query := `
		INSERT INTO exchange_rates (
			exchange_rate_id, currency_code, rate, source, date_effective,
			created_at, created_by, last_updated_at, last_updated_by
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	if _, err := r.Pool.Exec(ctx, query,
		m.ExchangeRateID, m.CurrencyCode, m.Rate, m.Source, m.DateEffective,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505": // unique_violation
				return fmt.Errorf("%w: rate for %s on %s", apperrors.ErrDuplicate, rate.CurrencyCode, rate.DateEffective.Format("2006-01-02"))
			case "23503": // foreign_key_violation
				return fmt.Errorf("%w: currency '%s'", apperrors.ErrNotFound, rate.CurrencyCode)
			}
		}
		return fmt.Errorf("error inserting exchange rate: %w", err)
	}
	return nil
}
