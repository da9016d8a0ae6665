package shop

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/remetra/backend/internal/apperr"
)

const (
	// DefaultLowStockThreshold applies when the report is requested
	// without an explicit threshold.
	DefaultLowStockThreshold = 10

	defaultCocoaPercentage = 30
	longShelfLifeDays      = 365
	shortShelfLifeDays     = 180
)

// Totals strictly above the threshold get the flat bulk discount.
var (
	discountThreshold = decimal.RequireFromString("50.00")
	discountFactor    = decimal.RequireFromString("0.90")
)

// Service holds the shop business rules on top of a Repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateChocolate adds a product to the inventory. Names must be unique;
// shelf life is derived from the cocoa percentage (>= 70% keeps longer).
func (s *Service) CreateChocolate(ctx context.Context, in ChocolateInput) (*Chocolate, error) {
	if _, err := s.repo.GetChocolateByName(ctx, in.Name); err == nil {
		return nil, fmt.Errorf("%w: chocolate %q", apperr.ErrDuplicateName, in.Name)
	} else if !errors.Is(err, apperr.ErrNotFound) {
		return nil, err
	}

	cocoa := defaultCocoaPercentage
	if in.CocoaPercentage != nil {
		cocoa = *in.CocoaPercentage
	}
	shelfLife := shortShelfLifeDays
	if cocoa >= 70 {
		shelfLife = longShelfLifeDays
	}

	return s.repo.CreateChocolate(ctx, &Chocolate{
		Name:            in.Name,
		Description:     in.Description,
		Price:           in.Price,
		CocoaPercentage: in.CocoaPercentage,
		ShelfLifeDays:   shelfLife,
		StockQuantity:   in.Quantity,
	})
}

// GetChocolate returns one product by id.
func (s *Service) GetChocolate(ctx context.Context, id int) (*Chocolate, error) {
	return s.repo.GetChocolate(ctx, id)
}

// ListChocolates returns the inventory ascending by price, optionally
// filtered by inclusive price bounds and availability.
func (s *Service) ListChocolates(ctx context.Context, filter ListFilter) ([]Chocolate, error) {
	return s.repo.ListChocolates(ctx, filter)
}

// CreateOrder places an order. Every line item is resolved and
// stock-checked before any deduction is applied, so a rejected order
// leaves the inventory untouched. Totals above 50.00 get a flat 10%
// discount.
func (s *Service) CreateOrder(ctx context.Context, in OrderInput) (*Order, error) {
	total := decimal.Zero
	requested := make(map[int]int, len(in.Items))
	for _, item := range in.Items {
		c, err := s.repo.GetChocolate(ctx, item.ChocolateID)
		if err != nil {
			if errors.Is(err, apperr.ErrNotFound) {
				return nil, fmt.Errorf("%w: chocolate %d", apperr.ErrNotFound, item.ChocolateID)
			}
			return nil, err
		}
		// Sum repeated lines for the same product; the per-line check
		// alone would let two lines each pass while their total exceeds
		// stock.
		requested[c.ID] += item.Quantity
		if requested[c.ID] > c.StockQuantity {
			return nil, fmt.Errorf("%w: chocolate %d has %d left, %d requested",
				apperr.ErrInsufficientStock, c.ID, c.StockQuantity, requested[c.ID])
		}
		total = total.Add(c.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}

	if total.GreaterThan(discountThreshold) {
		total = total.Mul(discountFactor).Round(2)
	}

	if err := s.repo.ApplyDeductions(ctx, in.Items); err != nil {
		return nil, err
	}

	return s.repo.CreateOrder(ctx, &Order{
		CustomerName:        in.CustomerName,
		Items:               in.Items,
		TotalPrice:          total,
		Status:              "pending",
		SpecialInstructions: in.SpecialInstructions,
	})
}

// CheckLowStock lists products whose stock sits below the threshold,
// with a recommended reorder of twice the threshold.
func (s *Service) CheckLowStock(ctx context.Context, threshold int) ([]LowStockAlert, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	chocolates, err := s.repo.ListLowStock(ctx, threshold)
	if err != nil {
		return nil, err
	}

	alerts := []LowStockAlert{}
	for _, c := range chocolates {
		alerts = append(alerts, LowStockAlert{
			ID:               c.ID,
			Name:             c.Name,
			CurrentStock:     c.StockQuantity,
			RecommendedOrder: 2 * threshold,
		})
	}
	return alerts, nil
}
