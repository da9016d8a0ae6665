package shop

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/remetra/backend/internal/apperr"
	"github.com/remetra/backend/internal/httpx"
)

// Handler holds the shop HTTP handlers.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func respondErr(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		httpx.WriteError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, apperr.ErrDuplicateName):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	case errors.Is(err, apperr.ErrInsufficientStock):
		httpx.WriteError(w, http.StatusConflict, err.Error())
	default:
		slog.Error("shop request failed", "error", err)
		httpx.WriteError(w, http.StatusInternalServerError, "internal error")
	}
}

// CreateChocolate adds a product to the inventory.
func (h *Handler) CreateChocolate(w http.ResponseWriter, r *http.Request) {
	var in ChocolateInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.Name == "" || in.Description == "" {
		httpx.WriteError(w, http.StatusBadRequest, "name and description are required")
		return
	}
	if in.Price.LessThan(decimal.RequireFromString("0.01")) {
		httpx.WriteError(w, http.StatusBadRequest, "price must be at least 0.01")
		return
	}
	if in.CocoaPercentage != nil && (*in.CocoaPercentage < 0 || *in.CocoaPercentage > 100) {
		httpx.WriteError(w, http.StatusBadRequest, "cocoa_percentage must be between 0 and 100")
		return
	}
	if in.Quantity < 0 {
		httpx.WriteError(w, http.StatusBadRequest, "quantity cannot be negative")
		return
	}

	choc, err := h.svc.CreateChocolate(r.Context(), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, choc)
}

// ListChocolates lists the inventory with optional price/stock filters.
func (h *Handler) ListChocolates(w http.ResponseWriter, r *http.Request) {
	var filter ListFilter
	q := r.URL.Query()

	if v := q.Get("min_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "min_price must be a decimal")
			return
		}
		filter.MinPrice = &d
	}
	if v := q.Get("max_price"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil {
			httpx.WriteError(w, http.StatusBadRequest, "max_price must be a decimal")
			return
		}
		filter.MaxPrice = &d
	}
	filter.InStockOnly = q.Get("in_stock_only") == "true"

	chocolates, err := h.svc.ListChocolates(r.Context(), filter)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, chocolates)
}

// GetChocolate returns one product by id.
func (h *Handler) GetChocolate(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "id must be an integer")
		return
	}

	choc, err := h.svc.GetChocolate(r.Context(), id)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, choc)
}

// CreateOrder places an order against the inventory.
func (h *Handler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var in OrderInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if in.CustomerName == "" {
		httpx.WriteError(w, http.StatusBadRequest, "customer_name is required")
		return
	}
	if len(in.Items) == 0 {
		httpx.WriteError(w, http.StatusBadRequest, "order must contain at least one item")
		return
	}
	for _, item := range in.Items {
		if item.Quantity < 1 {
			httpx.WriteError(w, http.StatusBadRequest, "item quantity must be at least 1")
			return
		}
	}

	order, err := h.svc.CreateOrder(r.Context(), in)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, order)
}

// LowStock returns the low-stock report.
func (h *Handler) LowStock(w http.ResponseWriter, r *http.Request) {
	threshold := DefaultLowStockThreshold
	if v := r.URL.Query().Get("threshold"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			httpx.WriteError(w, http.StatusBadRequest, "threshold must be a positive integer")
			return
		}
		threshold = n
	}

	alerts, err := h.svc.CheckLowStock(r.Context(), threshold)
	if err != nil {
		respondErr(w, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, alerts)
}
