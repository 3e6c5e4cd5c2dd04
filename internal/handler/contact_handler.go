package handler

import (
	"encoding/json"
	"net/http"

	"coffeehouse/internal/model"
	"coffeehouse/internal/service"

	"github.com/rs/zerolog"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	service service.ContactService
	logger  zerolog.Logger
}

// NewContactHandler creates a new contact handler.
func NewContactHandler(service service.ContactService, logger zerolog.Logger) *ContactHandler {
	return &ContactHandler{
		service: service,
		logger:  logger.With().Str("handler", "contact").Logger(),
	}
}

// Submit handles POST /api/contact requests.
func (h *ContactHandler) Submit(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}

	var req model.ContactRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	if err := h.service.Submit(r.Context(), &req); err != nil {
		status, message := statusForError(err, "Failed to send message")
		writeError(w, status, message, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, nil, "Message sent successfully")
}
