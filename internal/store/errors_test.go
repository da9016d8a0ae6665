package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"

	"github.com/remetra/backend/internal/apperr"
)

func TestMapPgError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   error
		want error
	}{
		{
			"username conflict",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_pkey"},
			apperr.ErrDuplicateUsername,
		},
		{
			"email conflict",
			&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"},
			apperr.ErrDuplicateEmail,
		},
		{
			"food name conflict",
			&pgconn.PgError{Code: "23505", ConstraintName: "foods_name_key"},
			apperr.ErrDuplicateName,
		},
		{
			"foreign key violation",
			&pgconn.PgError{Code: "23503", ConstraintName: "symptom_logs_symptom_id_fkey"},
			apperr.ErrNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, mapPgError(tt.in), tt.want)
		})
	}
}

func TestMapPgError_Wrapped(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("insert user: %w",
		&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})
	assert.ErrorIs(t, mapPgError(wrapped), apperr.ErrDuplicateEmail)
}

func TestMapPgError_PassThrough(t *testing.T) {
	t.Parallel()

	plain := errors.New("connection refused")
	assert.Equal(t, plain, mapPgError(plain))

	// Unique violations on unrecognized constraints are left alone.
	unknown := &pgconn.PgError{Code: "23505", ConstraintName: "orders_pkey"}
	assert.Equal(t, error(unknown), mapPgError(unknown))
}
