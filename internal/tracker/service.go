// Package tracker implements the symptom/food tracking domain: foods,
// symptoms, and the per-user logs tying them to points in time.
package tracker

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/models"
)

// FoodStore defines the interface for food persistence.
type FoodStore interface {
	Create(ctx context.Context, f *models.Food) (*models.Food, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.Food, error)
	List(ctx context.Context) ([]models.Food, error)
	Update(ctx context.Context, id uuid.UUID, in models.FoodInput) (*models.Food, error)
	Delete(ctx context.Context, id uuid.UUID) (*models.Food, error)
}

// SymptomStore defines the interface for symptom persistence.
type SymptomStore interface {
	Create(ctx context.Context, s *models.Symptom) (*models.Symptom, error)
	GetByID(ctx context.Context, username string, id uuid.UUID) (*models.Symptom, error)
	List(ctx context.Context, username string) ([]models.Symptom, error)
	Update(ctx context.Context, username string, id uuid.UUID, in models.SymptomInput) (*models.Symptom, error)
	Delete(ctx context.Context, username string, id uuid.UUID) (*models.Symptom, error)
}

// SymptomLogStore defines the interface for symptom log persistence.
type SymptomLogStore interface {
	Create(ctx context.Context, l *models.SymptomLog) (*models.SymptomLog, error)
	GetByID(ctx context.Context, username string, id uuid.UUID) (*models.SymptomLog, error)
	List(ctx context.Context, username string) ([]models.SymptomLog, error)
	Update(ctx context.Context, username string, id uuid.UUID, in models.SymptomLogInput) (*models.SymptomLog, error)
	Delete(ctx context.Context, username string, id uuid.UUID) (*models.SymptomLog, error)
}

// FoodLogStore defines the interface for food log persistence.
type FoodLogStore interface {
	Create(ctx context.Context, l *models.FoodLog) (*models.FoodLog, error)
	GetByID(ctx context.Context, username string, id uuid.UUID) (*models.FoodLog, error)
	List(ctx context.Context, username string) ([]models.FoodLog, error)
	Update(ctx context.Context, username string, id uuid.UUID, in models.FoodLogInput) (*models.FoodLog, error)
	Delete(ctx context.Context, username string, id uuid.UUID) (*models.FoodLog, error)
}

// Service wraps the tracker stores with the domain rules: ownership
// scoping and log validation. CRUD beyond that is a pass-through to the
// repositories.
type Service struct {
	foods       FoodStore
	symptoms    SymptomStore
	symptomLogs SymptomLogStore
	foodLogs    FoodLogStore
}

func NewService(foods FoodStore, symptoms SymptomStore, symptomLogs SymptomLogStore, foodLogs FoodLogStore) *Service {
	return &Service{foods: foods, symptoms: symptoms, symptomLogs: symptomLogs, foodLogs: foodLogs}
}

// ── Foods ────────────────────────────────────────────────

func (s *Service) CreateFood(ctx context.Context, owner string, in models.FoodInput) (*models.Food, error) {
	f := &models.Food{Name: in.Name, Ingredients: in.Ingredients}
	if owner != "" {
		f.Username = &owner
	}
	return s.foods.Create(ctx, f)
}

func (s *Service) GetFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	return s.foods.GetByID(ctx, id)
}

func (s *Service) ListFoods(ctx context.Context) ([]models.Food, error) {
	return s.foods.List(ctx)
}

func (s *Service) UpdateFood(ctx context.Context, id uuid.UUID, in models.FoodInput) (*models.Food, error) {
	return s.foods.Update(ctx, id, in)
}

func (s *Service) DeleteFood(ctx context.Context, id uuid.UUID) (*models.Food, error) {
	return s.foods.Delete(ctx, id)
}

// ── Symptoms ─────────────────────────────────────────────

func (s *Service) CreateSymptom(ctx context.Context, owner string, in models.SymptomInput) (*models.Symptom, error) {
	sym := &models.Symptom{Username: owner, Name: in.Name, Location: in.Location, Sensation: in.Sensation}
	return s.symptoms.Create(ctx, sym)
}

func (s *Service) GetSymptom(ctx context.Context, owner string, id uuid.UUID) (*models.Symptom, error) {
	return s.symptoms.GetByID(ctx, owner, id)
}

func (s *Service) ListSymptoms(ctx context.Context, owner string) ([]models.Symptom, error) {
	return s.symptoms.List(ctx, owner)
}

func (s *Service) UpdateSymptom(ctx context.Context, owner string, id uuid.UUID, in models.SymptomInput) (*models.Symptom, error) {
	return s.symptoms.Update(ctx, owner, id, in)
}

func (s *Service) DeleteSymptom(ctx context.Context, owner string, id uuid.UUID) (*models.Symptom, error) {
	return s.symptoms.Delete(ctx, owner, id)
}

// ── Symptom logs ─────────────────────────────────────────

func validateSymptomLog(in models.SymptomLogInput) error {
	if in.Intensity < 1 || in.Intensity > 10 {
		return fmt.Errorf("%w: intensity must be between 1 and 10", apperr.ErrValidation)
	}
	if in.Timestamp.IsZero() {
		return fmt.Errorf("%w: timestamp is required", apperr.ErrValidation)
	}
	return nil
}

func (s *Service) CreateSymptomLog(ctx context.Context, owner string, in models.SymptomLogInput) (*models.SymptomLog, error) {
	if err := validateSymptomLog(in); err != nil {
		return nil, err
	}
	// The symptom must exist and belong to the caller.
	if _, err := s.symptoms.GetByID(ctx, owner, in.SymptomID); err != nil {
		return nil, err
	}
	l := &models.SymptomLog{
		Username:  owner,
		SymptomID: in.SymptomID,
		Intensity: in.Intensity,
		Duration:  in.Duration,
		Timestamp: in.Timestamp,
		Notes:     in.Notes,
	}
	return s.symptomLogs.Create(ctx, l)
}

func (s *Service) GetSymptomLog(ctx context.Context, owner string, id uuid.UUID) (*models.SymptomLog, error) {
	return s.symptomLogs.GetByID(ctx, owner, id)
}

func (s *Service) ListSymptomLogs(ctx context.Context, owner string) ([]models.SymptomLog, error) {
	return s.symptomLogs.List(ctx, owner)
}

func (s *Service) UpdateSymptomLog(ctx context.Context, owner string, id uuid.UUID, in models.SymptomLogInput) (*models.SymptomLog, error) {
	if err := validateSymptomLog(in); err != nil {
		return nil, err
	}
	// The target symptom must belong to the caller, same as on create;
	// otherwise a log could be repointed at another user's symptom.
	if _, err := s.symptoms.GetByID(ctx, owner, in.SymptomID); err != nil {
		return nil, err
	}
	return s.symptomLogs.Update(ctx, owner, id, in)
}

func (s *Service) DeleteSymptomLog(ctx context.Context, owner string, id uuid.UUID) (*models.SymptomLog, error) {
	return s.symptomLogs.Delete(ctx, owner, id)
}

// ── Food logs ────────────────────────────────────────────

func (s *Service) CreateFoodLog(ctx context.Context, owner string, in models.FoodLogInput) (*models.FoodLog, error) {
	if in.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: timestamp is required", apperr.ErrValidation)
	}
	if _, err := s.foods.GetByID(ctx, in.FoodID); err != nil {
		return nil, err
	}
	l := &models.FoodLog{
		Username:  owner,
		FoodID:    in.FoodID,
		Quantity:  in.Quantity,
		Timestamp: in.Timestamp,
		Notes:     in.Notes,
	}
	return s.foodLogs.Create(ctx, l)
}

func (s *Service) GetFoodLog(ctx context.Context, owner string, id uuid.UUID) (*models.FoodLog, error) {
	return s.foodLogs.GetByID(ctx, owner, id)
}

func (s *Service) ListFoodLogs(ctx context.Context, owner string) ([]models.FoodLog, error) {
	return s.foodLogs.List(ctx, owner)
}

func (s *Service) UpdateFoodLog(ctx context.Context, owner string, id uuid.UUID, in models.FoodLogInput) (*models.FoodLog, error) {
	if in.Timestamp.IsZero() {
		return nil, fmt.Errorf("%w: timestamp is required", apperr.ErrValidation)
	}
	if _, err := s.foods.GetByID(ctx, in.FoodID); err != nil {
		return nil, err
	}
	return s.foodLogs.Update(ctx, owner, id, in)
}

func (s *Service) DeleteFoodLog(ctx context.Context, owner string, id uuid.UUID) (*models.FoodLog, error) {
	return s.foodLogs.Delete(ctx, owner, id)
}
