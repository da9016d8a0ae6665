package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/models"
)

// FoodLogStore handles food log rows against PostgreSQL, scoped to the
// owning username.
type FoodLogStore struct {
	pool *pgxpool.Pool
}

func NewFoodLogStore(pool *pgxpool.Pool) *FoodLogStore {
	return &FoodLogStore{pool: pool}
}

func (s *FoodLogStore) Create(ctx context.Context, l *models.FoodLog) (*models.FoodLog, error) {
	l.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO food_logs (id, username, food_id, quantity, timestamp, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		l.ID, l.Username, l.FoodID, l.Quantity, l.Timestamp, l.Notes,
	).Scan(&l.CreatedAt)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create food log: %w", err)
	}
	return l, nil
}

func (s *FoodLogStore) GetByID(ctx context.Context, username string, id uuid.UUID) (*models.FoodLog, error) {
	var l models.FoodLog
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, food_id, quantity, timestamp, notes, created_at
		 FROM food_logs WHERE id = $1 AND username = $2`, id, username,
	).Scan(&l.ID, &l.Username, &l.FoodID, &l.Quantity, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get food log: %w", err)
	}
	return &l, nil
}

func (s *FoodLogStore) List(ctx context.Context, username string) ([]models.FoodLog, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, food_id, quantity, timestamp, notes, created_at
		 FROM food_logs WHERE username = $1 ORDER BY timestamp DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("list food logs: %w", err)
	}
	defer rows.Close()

	logs := []models.FoodLog{}
	for rows.Next() {
		var l models.FoodLog
		if err := rows.Scan(&l.ID, &l.Username, &l.FoodID, &l.Quantity, &l.Timestamp, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *FoodLogStore) Update(ctx context.Context, username string, id uuid.UUID, in models.FoodLogInput) (*models.FoodLog, error) {
	var l models.FoodLog
	err := s.pool.QueryRow(ctx,
		`UPDATE food_logs
		 SET food_id = $3, quantity = $4, timestamp = $5, notes = $6
		 WHERE id = $1 AND username = $2
		 RETURNING id, username, food_id, quantity, timestamp, notes, created_at`,
		id, username, in.FoodID, in.Quantity, in.Timestamp, in.Notes,
	).Scan(&l.ID, &l.Username, &l.FoodID, &l.Quantity, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update food log: %w", err)
	}
	return &l, nil
}

func (s *FoodLogStore) Delete(ctx context.Context, username string, id uuid.UUID) (*models.FoodLog, error) {
	var l models.FoodLog
	err := s.pool.QueryRow(ctx,
		`DELETE FROM food_logs WHERE id = $1 AND username = $2
		 RETURNING id, username, food_id, quantity, timestamp, notes, created_at`,
		id, username,
	).Scan(&l.ID, &l.Username, &l.FoodID, &l.Quantity, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("delete food log: %w", err)
	}
	return &l, nil
}
