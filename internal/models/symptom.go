package models

import (
	"time"

	"github.com/google/uuid"
)

// Symptom represents a row in the symptoms table, scoped to its owner.
type Symptom struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Location  *string   `json:"location,omitempty"`
	Sensation *string   `json:"sensation,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SymptomInput is the JSON body for creating or updating a symptom.
type SymptomInput struct {
	Name      string  `json:"name"`
	Location  *string `json:"location,omitempty"`
	Sensation *string `json:"sensation,omitempty"`
}

// SymptomLog records an occurrence of a symptom. Intensity is on a 1-10
// scale, duration is in minutes.
type SymptomLog struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	SymptomID uuid.UUID `json:"symptom_id"`
	Intensity int       `json:"intensity"`
	Duration  *int      `json:"duration,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// SymptomLogInput is the JSON body for creating or updating a symptom log.
type SymptomLogInput struct {
	SymptomID uuid.UUID `json:"symptom_id"`
	Intensity int       `json:"intensity"`
	Duration  *int      `json:"duration,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes,omitempty"`
}
