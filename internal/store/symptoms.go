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

// SymptomStore handles symptom rows against PostgreSQL. All reads and
// writes are scoped to the owning username.
type SymptomStore struct {
	pool *pgxpool.Pool
}

func NewSymptomStore(pool *pgxpool.Pool) *SymptomStore {
	return &SymptomStore{pool: pool}
}

func (s *SymptomStore) Create(ctx context.Context, sym *models.Symptom) (*models.Symptom, error) {
	sym.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO symptoms (id, username, name, location, sensation)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING created_at`,
		sym.ID, sym.Username, sym.Name, sym.Location, sym.Sensation,
	).Scan(&sym.CreatedAt)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create symptom: %w", err)
	}
	return sym, nil
}

func (s *SymptomStore) GetByID(ctx context.Context, username string, id uuid.UUID) (*models.Symptom, error) {
	var sym models.Symptom
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, name, location, sensation, created_at
		 FROM symptoms WHERE id = $1 AND username = $2`, id, username,
	).Scan(&sym.ID, &sym.Username, &sym.Name, &sym.Location, &sym.Sensation, &sym.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get symptom: %w", err)
	}
	return &sym, nil
}

func (s *SymptomStore) List(ctx context.Context, username string) ([]models.Symptom, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, name, location, sensation, created_at
		 FROM symptoms WHERE username = $1 ORDER BY created_at`, username)
	if err != nil {
		return nil, fmt.Errorf("list symptoms: %w", err)
	}
	defer rows.Close()

	symptoms := []models.Symptom{}
	for rows.Next() {
		var sym models.Symptom
		if err := rows.Scan(&sym.ID, &sym.Username, &sym.Name, &sym.Location, &sym.Sensation, &sym.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan symptom: %w", err)
		}
		symptoms = append(symptoms, sym)
	}
	return symptoms, rows.Err()
}

func (s *SymptomStore) Update(ctx context.Context, username string, id uuid.UUID, in models.SymptomInput) (*models.Symptom, error) {
	var sym models.Symptom
	err := s.pool.QueryRow(ctx,
		`UPDATE symptoms SET name = $3, location = $4, sensation = $5
		 WHERE id = $1 AND username = $2
		 RETURNING id, username, name, location, sensation, created_at`,
		id, username, in.Name, in.Location, in.Sensation,
	).Scan(&sym.ID, &sym.Username, &sym.Name, &sym.Location, &sym.Sensation, &sym.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("update symptom: %w", err)
	}
	return &sym, nil
}

func (s *SymptomStore) Delete(ctx context.Context, username string, id uuid.UUID) (*models.Symptom, error) {
	var sym models.Symptom
	err := s.pool.QueryRow(ctx,
		`DELETE FROM symptoms WHERE id = $1 AND username = $2
		 RETURNING id, username, name, location, sensation, created_at`,
		id, username,
	).Scan(&sym.ID, &sym.Username, &sym.Name, &sym.Location, &sym.Sensation, &sym.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("delete symptom: %w", err)
	}
	return &sym, nil
}
