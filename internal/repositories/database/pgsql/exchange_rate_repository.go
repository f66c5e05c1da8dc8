package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	"github.com/avelins/currency_exchange_app/internal/core/domain"
	portsrepo "github.com/avelins/currency_exchange_app/internal/core/ports/repositories"
	"github.com/avelins/currency_exchange_app/internal/models"
	"github.com/avelins/currency_exchange_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// PgxExchangeRateRepository implements the exchange rate store using pgxpool.
type PgxExchangeRateRepository struct {
	BaseRepository
}

// newPgxExchangeRateRepository creates a new PgxExchangeRateRepository.
func newPgxExchangeRateRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateRepositoryFacade {
	return &PgxExchangeRateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.ExchangeRateRepositoryFacade = (*PgxExchangeRateRepository)(nil)

// SaveExchangeRate inserts a new directed rate edge and assigns its
// surrogate id. The uniqueness of the ordered (base, target) pair is
// enforced by the database constraint.
func (r *PgxExchangeRateRepository) SaveExchangeRate(ctx context.Context, rate *domain.ExchangeRate) error {
	modelRate := mapping.ToModelExchangeRate(*rate)

	query := `
		INSERT INTO exchange_rates (base_currency_id, target_currency_id, rate)
		VALUES ($1, $2, $3)
		RETURNING exchange_rate_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelRate.BaseCurrencyID,
		modelRate.TargetCurrencyID,
		modelRate.Rate,
	).Scan(&rate.ExchangeRateID)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf(
				"exchange rate for currency pair %d->%d already exists",
				modelRate.BaseCurrencyID, modelRate.TargetCurrencyID))
		}
		if isForeignKeyViolation(err) {
			return apperrors.NewNotFoundError("one or both currencies of the pair do not exist")
		}
		return storeError(err, "failed to save exchange rate")
	}
	return nil
}

// FindExchangeRate retrieves the rate edge for the exact ordered pair. It
// deliberately does not fall back to the reverse pair; inverse and
// triangulated resolution belong to the conversion service.
func (r *PgxExchangeRateRepository) FindExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64) (*domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, base_currency_id, target_currency_id, rate
		FROM exchange_rates
		WHERE base_currency_id = $1 AND target_currency_id = $2;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, baseCurrencyID, targetCurrencyID).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.BaseCurrencyID,
		&modelRate.TargetCurrencyID,
		&modelRate.Rate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"no exchange rate for currency pair %d->%d", baseCurrencyID, targetCurrencyID))
		}
		return nil, storeError(err, "failed to find exchange rate")
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// UpdateExchangeRate overwrites the rate value of an existing edge and
// returns it with its unchanged id. A missing pair is an error; update never
// inserts.
func (r *PgxExchangeRateRepository) UpdateExchangeRate(ctx context.Context, baseCurrencyID, targetCurrencyID int64, rate decimal.Decimal) (*domain.ExchangeRate, error) {
	query := `
		UPDATE exchange_rates
		SET rate = $3
		WHERE base_currency_id = $1 AND target_currency_id = $2
		RETURNING exchange_rate_id, base_currency_id, target_currency_id, rate;
	`

	var modelRate models.ExchangeRate
	err := r.Pool.QueryRow(ctx, query, baseCurrencyID, targetCurrencyID, rate).Scan(
		&modelRate.ExchangeRateID,
		&modelRate.BaseCurrencyID,
		&modelRate.TargetCurrencyID,
		&modelRate.Rate,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf(
				"no exchange rate for currency pair %d->%d", baseCurrencyID, targetCurrencyID))
		}
		return nil, storeError(err, "failed to update exchange rate")
	}

	domainRate := mapping.ToDomainExchangeRate(modelRate)
	return &domainRate, nil
}

// ListExchangeRates retrieves all stored rate edges.
func (r *PgxExchangeRateRepository) ListExchangeRates(ctx context.Context) ([]domain.ExchangeRate, error) {
	query := `
		SELECT exchange_rate_id, base_currency_id, target_currency_id, rate
		FROM exchange_rates
		ORDER BY exchange_rate_id;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError(err, "failed to query exchange rates")
	}
	defer rows.Close()

	modelRates, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRate, error) {
		var rate models.ExchangeRate
		err := row.Scan(
			&rate.ExchangeRateID,
			&rate.BaseCurrencyID,
			&rate.TargetCurrencyID,
			&rate.Rate,
		)
		return rate, err
	})

	if err != nil {
		return nil, storeError(err, "failed to scan exchange rates")
	}

	return mapping.ToDomainExchangeRateSlice(modelRates), nil
}
