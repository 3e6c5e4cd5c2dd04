package repository

import (
	"context"
	"errors"

	"coffeehouse/internal/model"
)

// ErrNotFound is returned when the requested record does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert violates a uniqueness constraint.
var ErrDuplicate = errors.New("already exists")

// OrderRepository defines the interface for order data access operations.
type OrderRepository interface {
	// Create persists a new order and assigns its id, creation time and
	// initial status.
	Create(ctx context.Context, order *model.Order) error

	// List returns all orders in insertion order.
	List(ctx context.Context) ([]model.Order, error)

	// GetByID retrieves a single order by its id.
	GetByID(ctx context.Context, id int) (*model.Order, error)

	// UpdateStatus overwrites the status of an existing order, stamps its
	// update time and returns the updated record.
	UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// Create persists a new review, unapproved, and assigns its id.
	Create(ctx context.Context, review *model.Review) error

	// ListApproved returns approved reviews in insertion order.
	ListApproved(ctx context.Context) ([]model.Review, error)

	// Approve flips the approval flag on an existing review. There is no
	// HTTP endpoint for this; moderation happens out of band.
	Approve(ctx context.Context, id int) error
}

// NewsletterRepository defines the interface for newsletter subscription
// data access operations.
type NewsletterRepository interface {
	// Create persists a new subscription and assigns its id. Returns
	// ErrDuplicate when the email is already subscribed; uniqueness is
	// enforced at insert time.
	Create(ctx context.Context, sub *model.Subscription) error

	// List returns all subscriptions in insertion order.
	List(ctx context.Context) ([]model.Subscription, error)
}
