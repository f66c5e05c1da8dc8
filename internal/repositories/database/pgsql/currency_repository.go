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
)

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

// SaveCurrency inserts a new currency and assigns its surrogate id. The
// uniqueness of the code is enforced by the database constraint, so two
// racing creates resolve to exactly one winner.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency *domain.Currency) error {
	modelCurr := mapping.ToModelCurrency(*currency)

	query := `
		INSERT INTO currencies (code, full_name, sign)
		VALUES ($1, $2, $3)
		RETURNING currency_id;
	`

	err := r.Pool.QueryRow(ctx, query,
		modelCurr.Code,
		modelCurr.FullName,
		modelCurr.Sign,
	).Scan(&currency.CurrencyID)

	if err != nil {
		if isUniqueViolation(err) {
			return apperrors.NewDuplicateError(fmt.Sprintf("currency with code %s already exists", modelCurr.Code))
		}
		return storeError(err, fmt.Sprintf("failed to save currency %s", modelCurr.Code))
	}
	return nil
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.Currency, error) {
	query := `
		SELECT currency_id, code, full_name, sign
		FROM currencies
		WHERE code = $1;
	`
	return r.findCurrency(ctx, query, currencyCode, fmt.Sprintf("currency with code %s not found", currencyCode))
}

// FindCurrencyByID retrieves a currency by its surrogate id.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID int64) (*domain.Currency, error) {
	query := `
		SELECT currency_id, code, full_name, sign
		FROM currencies
		WHERE currency_id = $1;
	`
	return r.findCurrency(ctx, query, currencyID, fmt.Sprintf("currency with id %d not found", currencyID))
}

func (r *PgxCurrencyRepository) findCurrency(ctx context.Context, query string, arg any, notFoundMsg string) (*domain.Currency, error) {
	var modelCurr models.Currency
	err := r.Pool.QueryRow(ctx, query, arg).Scan(
		&modelCurr.CurrencyID,
		&modelCurr.Code,
		&modelCurr.FullName,
		&modelCurr.Sign,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(notFoundMsg)
		}
		return nil, storeError(err, "failed to find currency")
	}

	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// ListCurrencies retrieves all currencies.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT currency_id, code, full_name, sign
		FROM currencies
		ORDER BY code;
	`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeError(err, "failed to query currencies")
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var currency models.Currency
		err := row.Scan(
			&currency.CurrencyID,
			&currency.Code,
			&currency.FullName,
			&currency.Sign,
		)
		return currency, err
	})

	if err != nil {
		return nil, storeError(err, "failed to scan currencies")
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}
