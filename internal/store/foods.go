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

// FoodStore handles food rows against PostgreSQL.
type FoodStore struct {
	pool *pgxpool.Pool
}

func NewFoodStore(pool *pgxpool.Pool) *FoodStore {
	return &FoodStore{pool: pool}
}

func (s *FoodStore) Create(ctx context.Context, f *models.Food) (*models.Food, error) {
	f.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO foods (id, name, ingredients, username)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at`,
		f.ID, f.Name, f.Ingredients, f.Username,
	).Scan(&f.CreatedAt)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create food: %w", err)
	}
	return f, nil
}

func (s *FoodStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var f models.Food
	err := s.pool.QueryRow(ctx,
		`SELECT id, name, ingredients, username, created_at FROM foods WHERE id = $1`, id,
	).Scan(&f.ID, &f.Name, &f.Ingredients, &f.Username, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get food: %w", err)
	}
	return &f, nil
}

func (s *FoodStore) List(ctx context.Context) ([]models.Food, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, ingredients, username, created_at FROM foods ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list foods: %w", err)
	}
	defer rows.Close()

	foods := []models.Food{}
	for rows.Next() {
		var f models.Food
		if err := rows.Scan(&f.ID, &f.Name, &f.Ingredients, &f.Username, &f.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan food: %w", err)
		}
		foods = append(foods, f)
	}
	return foods, rows.Err()
}

func (s *FoodStore) Update(ctx context.Context, id uuid.UUID, in models.FoodInput) (*models.Food, error) {
	var f models.Food
	err := s.pool.QueryRow(ctx,
		`UPDATE foods SET name = $2, ingredients = $3 WHERE id = $1
		 RETURNING id, name, ingredients, username, created_at`,
		id, in.Name, in.Ingredients,
	).Scan(&f.ID, &f.Name, &f.Ingredients, &f.Username, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update food: %w", err)
	}
	return &f, nil
}

func (s *FoodStore) Delete(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	var f models.Food
	err := s.pool.QueryRow(ctx,
		`DELETE FROM foods WHERE id = $1
		 RETURNING id, name, ingredients, username, created_at`, id,
	).Scan(&f.ID, &f.Name, &f.Ingredients, &f.Username, &f.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("delete food: %w", err)
	}
	return &f, nil
}
