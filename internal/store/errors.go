package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/remetra/backend/internal/apperr"
)

// Postgres error codes.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// mapPgError translates constraint violations into the shared sentinel
// errors. Unique violations are dispatched by constraint name so that a
// registration race lost at the database still surfaces as the right
// conflict; foreign-key violations mean a referenced row does not exist.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}
	switch pgErr.Code {
	case codeUniqueViolation:
		switch pgErr.ConstraintName {
		case "users_pkey":
			return apperr.ErrDuplicateUsername
		case "users_email_key":
			return apperr.ErrDuplicateEmail
		case "foods_name_key":
			return apperr.ErrDuplicateName
		}
	case codeForeignKeyViolation:
		return apperr.ErrNotFound
	}
	return err
}
