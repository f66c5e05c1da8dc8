package pgsql

import (
	"errors"
	"net"
	"strings"

	"github.com/avelins/currency_exchange_app/internal/apperrors"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides the shared connection pool and error
// classification for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
	// SQLSTATE class 08 covers connection exceptions.
	pgConnectionClass = "08"
)

// isUniqueViolation reports whether err is a uniqueness constraint violation.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// isForeignKeyViolation reports whether err is a foreign key violation.
func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation
}

// isUnavailable reports whether err means the database could not be reached.
func isUnavailable(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return strings.HasPrefix(pgErr.Code, pgConnectionClass)
	}
	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}

// storeError maps a low-level pgx error to the application taxonomy,
// preserving the message for the caller.
func storeError(err error, message string) error {
	if isUnavailable(err) {
		return apperrors.NewAppError(503, message, apperrors.ErrUnavailable)
	}
	return apperrors.NewAppError(500, message, err)
}
