package handler

import (
	"net/http"

	"glamora/internal/middleware"
	"glamora/internal/model"
	"glamora/internal/service"

	"github.com/rs/zerolog"
)

// AdminHandler handles back-office HTTP requests.
type AdminHandler struct {
	service service.AdminService
	logger  zerolog.Logger
}

// NewAdminHandler creates a new admin handler.
func NewAdminHandler(service service.AdminService, logger zerolog.Logger) *AdminHandler {
	return &AdminHandler{
		service: service,
		logger:  logger.With().Str("handler", "admin").Logger(),
	}
}

// Stats handles GET /api/admin/stats requests.
func (h *AdminHandler) Stats(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, model.ErrCodeInvalidJSON, "method not allowed", h.logger)
		return
	}

	if !middleware.IsAdmin(r.Context()) {
		writeError(w, http.StatusForbidden, model.ErrCodeForbidden, "admin access required", h.logger)
		return
	}

	stats, err := h.service.Stats(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to assemble stats", h.logger)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
