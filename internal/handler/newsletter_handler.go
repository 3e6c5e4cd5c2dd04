package handler

import (
	"encoding/json"
	"net/http"

	"coffeehouse/internal/model"
	"coffeehouse/internal/service"

	"github.com/rs/zerolog"
)

// NewsletterHandler handles newsletter signup requests.
type NewsletterHandler struct {
	service service.NewsletterService
	logger  zerolog.Logger
}

// NewNewsletterHandler creates a new newsletter handler.
func NewNewsletterHandler(service service.NewsletterService, logger zerolog.Logger) *NewsletterHandler {
	return &NewsletterHandler{
		service: service,
		logger:  logger.With().Str("handler", "newsletter").Logger(),
	}
}

// Subscribe handles POST /api/newsletter requests.
func (h *NewsletterHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.SubscribeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	sub, err := h.service.Subscribe(r.Context(), req.Email)
	if err != nil {
		status, message := statusForError(err, "Failed to subscribe to newsletter")
		writeError(w, status, message, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, sub, "Successfully subscribed to newsletter")
}
