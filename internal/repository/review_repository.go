package repository

import (
	"context"
	"fmt"

	"coffeehouse/internal/model"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// Create inserts a new review, always unapproved.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (name, email, rating, comment, approved)
		VALUES ($1, $2, $3, $4, FALSE)
		RETURNING id, approved, created_at
	`

	err := r.pool.QueryRow(ctx, query,
		review.Name,
		review.Email,
		review.Rating,
		review.Comment,
	).Scan(&review.ID, &review.Approved, &review.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("name", review.Name).Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	r.logger.Debug().Int("review_id", review.ID).Msg("review created successfully")

	return nil
}

// ListApproved returns approved reviews in insertion order.
func (r *reviewRepository) ListApproved(ctx context.Context) ([]model.Review, error) {
	query := `
		SELECT id, name, email, rating, comment, approved, created_at
		FROM reviews
		WHERE approved
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]model.Review, 0)
	for rows.Next() {
		var rev model.Review
		err := rows.Scan(&rev.ID, &rev.Name, &rev.Email, &rev.Rating, &rev.Comment, &rev.Approved, &rev.CreatedAt)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan review row")
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		reviews = append(reviews, rev)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating review rows")
		return nil, fmt.Errorf("error iterating reviews: %w", err)
	}

	return reviews, nil
}

// Approve flips the approval flag on an existing review.
func (r *reviewRepository) Approve(ctx context.Context, id int) error {
	query := `UPDATE reviews SET approved = TRUE WHERE id = $1`

	tag, err := r.pool.Exec(ctx, query, id)
	if err != nil {
		r.logger.Error().Err(err).Int("review_id", id).Msg("failed to approve review")
		return fmt.Errorf("failed to approve review: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	r.logger.Debug().Int("review_id", id).Msg("review approved")

	return nil
}
