package catalog

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func triple(cost decimal.Decimal) decimal.Decimal { return cost.Mul(decimal.NewFromInt(3)) }

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	repo := seededRepo()
	repo.products[1].Stock = 0
	router := chi.NewRouter()
	NewHandler(newTestService(t, repo), triple).RegisterRoutes(router)
	return router
}

type productJSON struct {
	ID           int    `json:"id"`
	Name         string `json:"name"`
	Stock        int    `json:"stock"`
	CostPrice    string `json:"cost_price"`
	SellingPrice string `json:"selling_price"`
}

func TestListProductsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var all []productJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&all))
	assert.Len(t, all, 3)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products?in_stock=true", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var inStock []productJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&inStock))
	require.Len(t, inStock, 2)
	assert.Equal(t, 1, inStock[0].ID)
	assert.Equal(t, 3, inStock[1].ID)
}

func TestGetProductEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/1", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var p productJSON
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&p))
	assert.Equal(t, "Vitamin C Serum", p.Name)
	assert.Equal(t, "1000", p.CostPrice)
	assert.Equal(t, "3000", p.SellingPrice)
}

func TestGetProductEndpointErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/42", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/catalog/products/abc", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
