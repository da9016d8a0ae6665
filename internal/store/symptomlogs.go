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

// SymptomLogStore handles symptom log rows against PostgreSQL, scoped to
// the owning username.
type SymptomLogStore struct {
	pool *pgxpool.Pool
}

func NewSymptomLogStore(pool *pgxpool.Pool) *SymptomLogStore {
	return &SymptomLogStore{pool: pool}
}

func (s *SymptomLogStore) Create(ctx context.Context, l *models.SymptomLog) (*models.SymptomLog, error) {
	l.ID = uuid.New()
	err := s.pool.QueryRow(ctx,
		`INSERT INTO symptom_logs (id, username, symptom_id, intensity, duration, timestamp, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		l.ID, l.Username, l.SymptomID, l.Intensity, l.Duration, l.Timestamp, l.Notes,
	).Scan(&l.CreatedAt)
	if err != nil {
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("create symptom log: %w", err)
	}
	return l, nil
}

func (s *SymptomLogStore) GetByID(ctx context.Context, username string, id uuid.UUID) (*models.SymptomLog, error) {
	var l models.SymptomLog
	err := s.pool.QueryRow(ctx,
		`SELECT id, username, symptom_id, intensity, duration, timestamp, notes, created_at
		 FROM symptom_logs WHERE id = $1 AND username = $2`, id, username,
	).Scan(&l.ID, &l.Username, &l.SymptomID, &l.Intensity, &l.Duration, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("get symptom log: %w", err)
	}
	return &l, nil
}

func (s *SymptomLogStore) List(ctx context.Context, username string) ([]models.SymptomLog, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, symptom_id, intensity, duration, timestamp, notes, created_at
		 FROM symptom_logs WHERE username = $1 ORDER BY timestamp DESC`, username)
	if err != nil {
		return nil, fmt.Errorf("list symptom logs: %w", err)
	}
	defer rows.Close()

	logs := []models.SymptomLog{}
	for rows.Next() {
		var l models.SymptomLog
		if err := rows.Scan(&l.ID, &l.Username, &l.SymptomID, &l.Intensity, &l.Duration, &l.Timestamp, &l.Notes, &l.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan symptom log: %w", err)
		}
		logs = append(logs, l)
	}
	return logs, rows.Err()
}

func (s *SymptomLogStore) Update(ctx context.Context, username string, id uuid.UUID, in models.SymptomLogInput) (*models.SymptomLog, error) {
	var l models.SymptomLog
	err := s.pool.QueryRow(ctx,
		`UPDATE symptom_logs
		 SET symptom_id = $3, intensity = $4, duration = $5, timestamp = $6, notes = $7
		 WHERE id = $1 AND username = $2
		 RETURNING id, username, symptom_id, intensity, duration, timestamp, notes, created_at`,
		id, username, in.SymptomID, in.Intensity, in.Duration, in.Timestamp, in.Notes,
	).Scan(&l.ID, &l.Username, &l.SymptomID, &l.Intensity, &l.Duration, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		if mapped := mapPgError(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("update symptom log: %w", err)
	}
	return &l, nil
}

func (s *SymptomLogStore) Delete(ctx context.Context, username string, id uuid.UUID) (*models.SymptomLog, error) {
	var l models.SymptomLog
	err := s.pool.QueryRow(ctx,
		`DELETE FROM symptom_logs WHERE id = $1 AND username = $2
		 RETURNING id, username, symptom_id, intensity, duration, timestamp, notes, created_at`,
		id, username,
	).Scan(&l.ID, &l.Username, &l.SymptomID, &l.Intensity, &l.Duration, &l.Timestamp, &l.Notes, &l.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.ErrNotFound
		}
		return nil, fmt.Errorf("delete symptom log: %w", err)
	}
	return &l, nil
}
