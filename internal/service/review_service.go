package service

import (
	"context"
	"fmt"
	"strings"

	"coffeehouse/internal/model"
	"coffeehouse/internal/repository"

	"github.com/rs/zerolog"
)

// reviewService implements ReviewService.
type reviewService struct {
	repo   repository.ReviewRepository
	logger zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		repo:   repo,
		logger: logger.With().Str("service", "review").Logger(),
	}
}

// SubmitReview validates and persists a review. Reviews enter the store
// unapproved and stay invisible until moderation approves them.
func (s *reviewService) SubmitReview(ctx context.Context, req *model.ReviewRequest) (*model.Review, error) {
	if req == nil {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Review request is required")
	}

	if strings.TrimSpace(req.Name) == "" ||
		req.Rating == 0 ||
		strings.TrimSpace(req.Comment) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Name, rating, and comment are required")
	}

	if req.Rating < 1 || req.Rating > 5 {
		s.logger.Warn().Int("rating", req.Rating).Msg("rating out of range")
		return nil, model.ErrInvalidRating
	}

	review := &model.Review{
		Name:    req.Name,
		Email:   req.Email,
		Rating:  req.Rating,
		Comment: req.Comment,
	}

	if err := s.repo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("name", req.Name).Msg("failed to create review")
		return nil, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info().
		Int("review_id", review.ID).
		Int("rating", review.Rating).
		Msg("review submitted, awaiting moderation")

	return review, nil
}

// ApprovedReviews returns approved reviews only.
func (s *reviewService) ApprovedReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.repo.ListApproved(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list approved reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
