package handler

import (
	"encoding/json"
	"net/http"

	"coffeehouse/internal/model"
	"coffeehouse/internal/service"

	"github.com/rs/zerolog"
)

// ReviewHandler handles review-related HTTP requests.
type ReviewHandler struct {
	service service.ReviewService
	logger  zerolog.Logger
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(service service.ReviewService, logger zerolog.Logger) *ReviewHandler {
	return &ReviewHandler{
		service: service,
		logger:  logger.With().Str("handler", "review").Logger(),
	}
}

// Create handles POST /api/reviews requests.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.ReviewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", h.logger)
		return
	}

	review, err := h.service.SubmitReview(r.Context(), &req)
	if err != nil {
		status, message := statusForError(err, "Failed to submit review")
		writeError(w, status, message, h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, review, "Review submitted successfully")
}

// ListApproved handles GET /api/reviews requests. Only approved reviews
// are ever returned.
func (h *ReviewHandler) ListApproved(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.service.ApprovedReviews(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retrieve reviews", h.logger)
		return
	}

	writeSuccess(w, http.StatusOK, reviews, "")
}
