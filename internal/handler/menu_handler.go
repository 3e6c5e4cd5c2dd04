package handler

import (
	"net/http"
	"time"

	"coffeehouse/internal/service"

	"github.com/rs/zerolog"
)

// MenuHandler handles menu, store-info and health requests.
type MenuHandler struct {
	service service.MenuService
	logger  zerolog.Logger
}

// NewMenuHandler creates a new menu handler.
func NewMenuHandler(service service.MenuService, logger zerolog.Logger) *MenuHandler {
	return &MenuHandler{
		service: service,
		logger:  logger.With().Str("handler", "menu").Logger(),
	}
}

// Menu handles GET /api/menu requests.
func (h *MenuHandler) Menu(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, h.service.Menu(r.Context()), "")
}

// StoreInfo handles GET /api/store-info requests.
func (h *MenuHandler) StoreInfo(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, h.service.StoreInfo(r.Context()), "")
}

// healthResponse is the envelope for /api/health. It carries a timestamp
// instead of a data payload.
type healthResponse struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Health handles GET /api/health requests.
func (h *MenuHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{
		Success:   true,
		Message:   "Server is running",
		Timestamp: time.Now().UTC(),
	})
}
