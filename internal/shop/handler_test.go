package shop

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	repo := NewMemoryRepository()
	require.NoError(t, repo.Seed(context.Background()))
	h := NewHandler(NewService(repo))

	r := chi.NewRouter()
	r.Route("/api/chocolates", func(r chi.Router) {
		r.Post("/", h.CreateChocolate)
		r.Get("/", h.ListChocolates)
		r.Get("/{id}", h.GetChocolate)
		r.Post("/orders", h.CreateOrder)
		r.Get("/inventory/low-stock", h.LowStock)
	})
	return r
}

func TestShopRoutes_GetChocolate(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chocolates/1", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var c Chocolate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "Dark Chocolate Bar", c.Name)

	req = httptest.NewRequest(http.MethodGet, "/api/chocolates/99", nil)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestShopRoutes_ListWithFilters(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chocolates/?min_price=4.00", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var list []Chocolate
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Equal(t, "Dark Chocolate Bar", list[0].Name)
}

func TestShopRoutes_CreateOrder(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	body := `{"customer_name":"Maya","items":[{"chocolate_id":1,"quantity":2},{"chocolate_id":2,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chocolates/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)
	var order Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &order))
	assert.True(t, order.TotalPrice.Equal(decimal.RequireFromString("15.47")),
		"total = %s", order.TotalPrice)
	assert.Equal(t, "pending", order.Status)
}

func TestShopRoutes_CreateOrder_Insufficient(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	body := `{"customer_name":"Maya","items":[{"chocolate_id":2,"quantity":10}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/chocolates/orders", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, rec.Body.String(), "insufficient stock")
}

func TestShopRoutes_CreateOrder_Validation(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	tests := []struct {
		name string
		body string
	}{
		{"no customer", `{"items":[{"chocolate_id":1,"quantity":1}]}`},
		{"no items", `{"customer_name":"Maya","items":[]}`},
		{"zero quantity", `{"customer_name":"Maya","items":[{"chocolate_id":1,"quantity":0}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/chocolates/orders", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestShopRoutes_LowStock(t *testing.T) {
	t.Parallel()
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/api/chocolates/inventory/low-stock?threshold=10", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var alerts []LowStockAlert
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &alerts))
	require.Len(t, alerts, 1)
	assert.Equal(t, 20, alerts[0].RecommendedOrder)
}
