package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"glamora/internal/model"
	"glamora/internal/service"

	"github.com/rs/zerolog"
)

// CartHandler handles cart HTTP requests. Carts are keyed by the
// client-generated X-Session-Id header so guests can shop without an account.
type CartHandler struct {
	service service.CartService
	logger  zerolog.Logger
}

// NewCartHandler creates a new cart handler.
func NewCartHandler(service service.CartService, logger zerolog.Logger) *CartHandler {
	return &CartHandler{
		service: service,
		logger:  logger.With().Str("handler", "cart").Logger(),
	}
}

func (h *CartHandler) sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {
	sessionID := r.Header.Get("X-Session-Id")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "X-Session-Id header is required", h.logger)
		return "", false
	}
	return sessionID, true
}

// Get handles GET /api/cart requests.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Get(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve cart", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// AddItem handles POST /api/cart/items requests.
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	var req model.CartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}
	if req.ProductID == "" {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "productId is required", h.logger)
		return
	}

	c, err := h.service.AddItem(r.Context(), sessionID, req.ProductID)
	if err != nil {
		writeServiceError(w, err, "failed to add cart item", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// productIDFromPath extracts the product ID from /api/cart/items/{productId}.
func (h *CartHandler) productIDFromPath(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimPrefix(r.URL.Path, "/api/cart/items/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return "", false
	}
	return id, true
}

// UpdateQuantity handles PUT /api/cart/items/{productId} requests. A quantity
// of zero or less removes the line.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	var req model.CartQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	c, err := h.service.UpdateQuantity(r.Context(), sessionID, productID, req.Quantity)
	if err != nil {
		writeServiceError(w, err, "failed to update cart item", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// RemoveItem handles DELETE /api/cart/items/{productId} requests.
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}
	productID, ok := h.productIDFromPath(w, r)
	if !ok {
		return
	}

	c, err := h.service.RemoveItem(r.Context(), sessionID, productID)
	if err != nil {
		writeServiceError(w, err, "failed to remove cart item", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// Clear handles DELETE /api/cart requests.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := h.sessionID(w, r)
	if !ok {
		return
	}

	c, err := h.service.Clear(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, err, "failed to clear cart", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, c)
}
