package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/models"
)

// UserStore handles user rows against PostgreSQL.
type UserStore struct {
	pool *pgxpool.Pool
}

func NewUserStore(pool *pgxpool.Pool) *UserStore {
	return &UserStore{pool: pool}
}

func (s *UserStore) CreateUser(ctx context.Context, u *models.User) (*models.User, error) {
	err := s.pool.QueryRow(ctx,
		`INSERT INTO users (username, email, password_hash, dob, conditions, weight)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at`,
		u.Username, u.Email, u.PasswordHash, u.DOB, u.Conditions, u.Weight,
	).Scan(&u.CreatedAt, &u.UpdatedAt)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create user: %w", err)
	}
	return u, nil
}

func (s *UserStore) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	return s.getUser(ctx,
		`SELECT username, email, password_hash, dob, conditions, weight, created_at, updated_at
		 FROM users WHERE username = $1`, username)
}

func (s *UserStore) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getUser(ctx,
		`SELECT username, email, password_hash, dob, conditions, weight, created_at, updated_at
		 FROM users WHERE email = $1`, email)
}

func (s *UserStore) getUser(ctx context.Context, query, arg string) (*models.User, error) {
	var u models.User
	err := s.pool.QueryRow(ctx, query, arg).Scan(
		&u.Username, &u.Email, &u.PasswordHash, &u.DOB, &u.Conditions, &u.Weight,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}
	return &u, nil
}
