// Package shop is the illustrative "chocolate shop" subsystem used for
// onboarding: a small inventory with orders, a bulk discount rule, and a
// low-stock report. It is intentionally self-contained and backed by an
// in-memory repository.
package shop

import (
	"time"

	"github.com/shopspring/decimal"
)

// Chocolate is a product in the shop inventory.
type Chocolate struct {
	ID              int             `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CocoaPercentage *int            `json:"cocoa_percentage,omitempty"`
	ShelfLifeDays   int             `json:"shelf_life_days"`
	StockQuantity   int             `json:"stock_quantity"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// ChocolateInput is the JSON body for creating a chocolate.
type ChocolateInput struct {
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	CocoaPercentage *int            `json:"cocoa_percentage,omitempty"`
	Quantity        int             `json:"quantity"`
}

// OrderItem is one line of an order.
type OrderItem struct {
	ChocolateID int `json:"chocolate_id"`
	Quantity    int `json:"quantity"`
}

// Order is a placed order with its computed total.
type Order struct {
	ID                  int             `json:"id"`
	CustomerName        string          `json:"customer_name"`
	Items               []OrderItem     `json:"items"`
	TotalPrice          decimal.Decimal `json:"total_price"`
	Status              string          `json:"status"`
	SpecialInstructions *string         `json:"special_instructions,omitempty"`
	CreatedAt           time.Time       `json:"created_at"`
}

// OrderInput is the JSON body for creating an order.
type OrderInput struct {
	CustomerName        string      `json:"customer_name"`
	Items               []OrderItem `json:"items"`
	SpecialInstructions *string     `json:"special_instructions,omitempty"`
}

// LowStockAlert is one entry of the low-stock report.
type LowStockAlert struct {
	ID               int    `json:"id"`
	Name             string `json:"name"`
	CurrentStock     int    `json:"current_stock"`
	RecommendedOrder int    `json:"recommended_order"`
}

// ListFilter narrows ListChocolates. Price bounds are inclusive.
type ListFilter struct {
	MinPrice    *decimal.Decimal
	MaxPrice    *decimal.Decimal
	InStockOnly bool
}
