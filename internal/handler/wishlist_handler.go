package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"glamora/internal/middleware"
	"glamora/internal/model"
	"glamora/internal/service"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// WishlistHandler handles wishlist HTTP requests.
type WishlistHandler struct {
	service service.WishlistService
	logger  zerolog.Logger
}

// NewWishlistHandler creates a new wishlist handler.
func NewWishlistHandler(service service.WishlistService, logger zerolog.Logger) *WishlistHandler {
	return &WishlistHandler{
		service: service,
		logger:  logger.With().Str("handler", "wishlist").Logger(),
	}
}

func (h *WishlistHandler) userID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.UserID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, model.ErrCodeUnauthorised, "authentication required", h.logger)
		return uuid.Nil, false
	}
	return userID, true
}

// List handles GET /api/wishlist requests.
func (h *WishlistHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	items, err := h.service.List(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err, "failed to retrieve wishlist", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Add handles POST /api/wishlist requests.
func (h *WishlistHandler) Add(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	var req model.WishlistRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, model.ErrCodeInvalidJSON, "invalid request body", h.logger)
		return
	}

	created, err := h.service.Add(r.Context(), userID, req.ProductID)
	if err != nil {
		writeServiceError(w, err, "failed to add to wishlist", h.logger)
		return
	}
	if !created {
		writeJSON(w, http.StatusOK, model.MessageResponse{Message: "product already in wishlist"})
		return
	}

	writeJSON(w, http.StatusCreated, model.MessageResponse{Message: "product saved to wishlist"})
}

// Remove handles DELETE /api/wishlist/{productId} requests. The product ID
// may also come from a productId query parameter on the collection URL.
func (h *WishlistHandler) Remove(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.userID(w, r)
	if !ok {
		return
	}

	productID := strings.TrimPrefix(r.URL.Path, "/api/wishlist/")
	if productID == "" || productID == "/api/wishlist" {
		productID = r.URL.Query().Get("productId")
	}
	if productID == "" || strings.Contains(productID, "/") {
		writeError(w, http.StatusBadRequest, model.ErrCodeMissingField, "product ID is required", h.logger)
		return
	}

	if err := h.service.Remove(r.Context(), userID, productID); err != nil {
		writeServiceError(w, err, "failed to remove from wishlist", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, model.MessageResponse{Message: "product removed from wishlist"})
}
