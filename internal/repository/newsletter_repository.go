package repository

import (
	"context"
	"errors"
	"fmt"

	"coffeehouse/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// uniqueViolation is the PostgreSQL SQLSTATE for unique constraint errors.
const uniqueViolation = "23505"

// newsletterRepository implements the NewsletterRepository interface using
// PostgreSQL. Email uniqueness is delegated to the table's unique index so
// the check and the insert are one atomic statement.
type newsletterRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewNewsletterRepository creates a new PostgreSQL-backed newsletter repository.
func NewNewsletterRepository(pool *pgxpool.Pool, logger zerolog.Logger) NewsletterRepository {
	return &newsletterRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "newsletter").Logger(),
	}
}

// Create inserts a new subscription. Returns ErrDuplicate when the email is
// already subscribed.
func (r *newsletterRepository) Create(ctx context.Context, sub *model.Subscription) error {
	query := `
		INSERT INTO newsletter_subscriptions (email)
		VALUES ($1)
		RETURNING id, subscribed_at
	`

	err := r.pool.QueryRow(ctx, query, sub.Email).Scan(&sub.ID, &sub.SubscribedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			r.logger.Debug().Str("email", sub.Email).Msg("email already subscribed")
			return ErrDuplicate
		}
		r.logger.Error().Err(err).Str("email", sub.Email).Msg("failed to create subscription")
		return fmt.Errorf("failed to create subscription: %w", err)
	}

	r.logger.Debug().Int("subscription_id", sub.ID).Msg("subscription created successfully")

	return nil
}

// List returns all subscriptions in insertion order.
func (r *newsletterRepository) List(ctx context.Context) ([]model.Subscription, error) {
	query := `
		SELECT id, email, subscribed_at
		FROM newsletter_subscriptions
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query subscriptions")
		return nil, fmt.Errorf("failed to query subscriptions: %w", err)
	}
	defer rows.Close()

	subs := make([]model.Subscription, 0)
	for rows.Next() {
		var s model.Subscription
		if err := rows.Scan(&s.ID, &s.Email, &s.SubscribedAt); err != nil {
			r.logger.Error().Err(err).Msg("failed to scan subscription row")
			return nil, fmt.Errorf("failed to scan subscription: %w", err)
		}
		subs = append(subs, s)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating subscription rows")
		return nil, fmt.Errorf("error iterating subscriptions: %w", err)
	}

	return subs, nil
}
