package models

import (
	"time"

	"github.com/google/uuid"
)

// Food represents a row in the foods table. Username is set when the food
// is user-specific; shared foods leave it empty.
type Food struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Ingredients []string  `json:"ingredients"`
	Username    *string   `json:"username,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// FoodInput is the JSON body for creating or updating a food.
type FoodInput struct {
	Name        string   `json:"name"`
	Ingredients []string `json:"ingredients"`
}

// FoodLog records that a user ate a food at some point in time.
type FoodLog struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	FoodID    uuid.UUID `json:"food_id"`
	Quantity  *string   `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FoodLogInput is the JSON body for creating or updating a food log.
type FoodLogInput struct {
	FoodID    uuid.UUID `json:"food_id"`
	Quantity  *string   `json:"quantity,omitempty"`
	Timestamp time.Time `json:"timestamp"`
	Notes     *string   `json:"notes,omitempty"`
}
