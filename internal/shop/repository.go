package shop

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/remetra/backend/internal/apperr"
)

// Repository abstracts the shop's persistence so the service logic does
// not care whether it talks to memory or a real store.
type Repository interface {
	CreateChocolate(ctx context.Context, c *Chocolate) (*Chocolate, error)
	GetChocolate(ctx context.Context, id int) (*Chocolate, error)
	GetChocolateByName(ctx context.Context, name string) (*Chocolate, error)
	ListChocolates(ctx context.Context, filter ListFilter) ([]Chocolate, error)

	// ApplyDeductions checks stock for every item and only then deducts,
	// all under one critical section, so a failing order never leaves a
	// partial deduction behind.
	ApplyDeductions(ctx context.Context, items []OrderItem) error

	CreateOrder(ctx context.Context, o *Order) (*Order, error)
	ListLowStock(ctx context.Context, threshold int) ([]Chocolate, error)
}

// MemoryRepository is the in-memory Repository used by the example.
type MemoryRepository struct {
	mu         sync.Mutex
	chocolates []*Chocolate
	orders     []*Order
	nextChocID int
	nextOrdID  int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{nextChocID: 1, nextOrdID: 1}
}

// Seed loads the demo inventory used by the onboarding walkthrough.
func (r *MemoryRepository) Seed(ctx context.Context) error {
	dark, milk := 70, 35
	seed := []*Chocolate{
		{
			Name:            "Dark Chocolate Bar",
			Description:     "70% cocoa dark chocolate",
			Price:           decimal.RequireFromString("5.99"),
			CocoaPercentage: &dark,
			ShelfLifeDays:   365,
			StockQuantity:   50,
		},
		{
			Name:            "Milk Chocolate Truffle",
			Description:     "Creamy milk chocolate with hazelnut center",
			Price:           decimal.RequireFromString("3.49"),
			CocoaPercentage: &milk,
			ShelfLifeDays:   180,
			StockQuantity:   5,
		},
	}
	for _, c := range seed {
		if _, err := r.CreateChocolate(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (r *MemoryRepository) CreateChocolate(_ context.Context, c *Chocolate) (*Chocolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	c.ID = r.nextChocID
	r.nextChocID++
	c.CreatedAt = now
	c.UpdatedAt = now
	r.chocolates = append(r.chocolates, c)

	cp := *c
	return &cp, nil
}

func (r *MemoryRepository) GetChocolate(_ context.Context, id int) (*Chocolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := r.findLocked(id)
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *MemoryRepository) GetChocolateByName(_ context.Context, name string) (*Chocolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, c := range r.chocolates {
		if c.Name == name {
			cp := *c
			return &cp, nil
		}
	}
	return nil, apperr.ErrNotFound
}

func (r *MemoryRepository) ListChocolates(_ context.Context, filter ListFilter) ([]Chocolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []Chocolate{}
	for _, c := range r.chocolates {
		if filter.MinPrice != nil && c.Price.LessThan(*filter.MinPrice) {
			continue
		}
		if filter.MaxPrice != nil && c.Price.GreaterThan(*filter.MaxPrice) {
			continue
		}
		if filter.InStockOnly && c.StockQuantity <= 0 {
			continue
		}
		out = append(out, *c)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price.LessThan(out[j].Price)
	})
	return out, nil
}

func (r *MemoryRepository) ApplyDeductions(_ context.Context, items []OrderItem) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Validate before touching any stock counter. Quantities are summed
	// per chocolate first, so repeated lines for the same product cannot
	// drive stock below zero.
	requested := make(map[int]int, len(items))
	for _, item := range items {
		requested[item.ChocolateID] += item.Quantity
	}
	for _, item := range items {
		c := r.findLocked(item.ChocolateID)
		if c == nil {
			return fmt.Errorf("%w: chocolate %d", apperr.ErrNotFound, item.ChocolateID)
		}
		if requested[c.ID] > c.StockQuantity {
			return fmt.Errorf("%w: chocolate %d has %d left, %d requested",
				apperr.ErrInsufficientStock, c.ID, c.StockQuantity, requested[c.ID])
		}
	}

	now := time.Now()
	for _, item := range items {
		c := r.findLocked(item.ChocolateID)
		c.StockQuantity -= item.Quantity
		c.UpdatedAt = now
	}
	return nil
}

func (r *MemoryRepository) CreateOrder(_ context.Context, o *Order) (*Order, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	o.ID = r.nextOrdID
	r.nextOrdID++
	o.CreatedAt = time.Now()
	r.orders = append(r.orders, o)

	cp := *o
	return &cp, nil
}

func (r *MemoryRepository) ListLowStock(_ context.Context, threshold int) ([]Chocolate, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := []Chocolate{}
	for _, c := range r.chocolates {
		if c.StockQuantity < threshold {
			out = append(out, *c)
		}
	}
	return out, nil
}

// findLocked returns the stored chocolate with the given id; callers must
// hold the mutex.
func (r *MemoryRepository) findLocked(id int) *Chocolate {
	for _, c := range r.chocolates {
		if c.ID == id {
			return c
		}
	}
	return nil
}
