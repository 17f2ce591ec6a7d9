package handler

import (
	"net/http"
	"strconv"
	"strings"

	"glamora/internal/catalog"
	"glamora/internal/model"
	"glamora/internal/service"

	"github.com/rs/zerolog"
)

// ProductHandler handles catalogue HTTP requests.
type ProductHandler struct {
	service service.ProductService
	logger  zerolog.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(service service.ProductService, logger zerolog.Logger) *ProductHandler {
	return &ProductHandler{
		service: service,
		logger:  logger.With().Str("handler", "product").Logger(),
	}
}

// parseFilters builds catalogue filters from query parameters. Unset
// parameters keep their defaults; malformed numbers are rejected.
func parseFilters(r *http.Request) (catalog.Filters, error) {
	f := catalog.DefaultFilters()
	q := r.URL.Query()

	f.SearchQuery = q.Get("search")
	f.SortBy = q.Get("sortBy")

	for _, c := range q["category"] {
		if c != "" && c != "all" {
			f.Categories = append(f.Categories, c)
		}
	}

	if v := q.Get("minPrice"); v != "" {
		min, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, model.NewDomainError(model.ErrCodeInvalidJSON, "minPrice must be a number")
		}
		f.PriceMin = min
	}
	if v := q.Get("maxPrice"); v != "" {
		max, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return f, model.NewDomainError(model.ErrCodeInvalidJSON, "maxPrice must be a number")
		}
		f.PriceMax = max
	}

	f.InStockOnly = q.Get("inStock") == "true"
	f.OnSaleOnly = q.Get("onSale") == "true"

	return f, nil
}

// GetAll handles GET /api/products requests.
func (h *ProductHandler) GetAll(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidJSON, "method not allowed", h.logger)
		return
	}

	filters, err := parseFilters(r)
	if err != nil {
		writeServiceError(w, err, "invalid filters", h.logger)
		return
	}

	products, err := h.service.Browse(r.Context(), filters)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve products", h.logger)
		return
	}

	if products == nil {
		products = []model.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

// GetByID handles GET /api/products/{id} requests.
func (h *ProductHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidJSON, "method not allowed", h.logger)
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/products/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	product, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve product", h.logger)
		return
	}

	if product == nil {
		writeError(w, http.StatusNotFound, model.ErrCodeProductNotFound, "product not found", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, product)
}
