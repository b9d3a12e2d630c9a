package catalog

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
)

// PriceFunc derives the selling price shown to customers from a cost price.
type PriceFunc func(cost decimal.Decimal) decimal.Decimal

// ProductView is a product as exposed over HTTP.
type ProductView struct {
	Product
	SellingPrice decimal.Decimal `json:"selling_price"`
}

// Handler exposes read-only catalog HTTP endpoints.
type Handler struct {
	reader Reader
	price  PriceFunc
}

func NewHandler(reader Reader, price PriceFunc) *Handler {
	return &Handler{reader: reader, price: price}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1/catalog", func(r chi.Router) {
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)
	})
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	inStock := r.URL.Query().Get("in_stock") == "true"
	products, err := h.reader.ListProducts(r.Context())
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	views := make([]ProductView, 0, len(products))
	for _, p := range products {
		if inStock && p.Stock <= 0 {
			continue
		}
		views = append(views, h.view(p))
	}
	respond(w, http.StatusOK, views)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		respond(w, http.StatusBadRequest, map[string]string{"error": "id must be an integer"})
		return
	}
	p, err := h.reader.GetProduct(r.Context(), id)
	if errors.Is(err, ErrProductNotFound) {
		respond(w, http.StatusNotFound, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		respond(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	respond(w, http.StatusOK, h.view(p))
}

func (h *Handler) view(p Product) ProductView {
	return ProductView{Product: p, SellingPrice: h.price(p.CostPrice)}
}

func respond(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
