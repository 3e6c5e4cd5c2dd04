package service

import (
	"context"

	"coffeehouse/internal/model"
)

// MenuService defines read operations for the coffee menu.
type MenuService interface {
	// Menu returns the full menu in listing order.
	Menu(ctx context.Context) []model.MenuItem

	// StoreInfo returns opening hours and the contact phone.
	StoreInfo(ctx context.Context) model.StoreInfo
}

// OrderService defines operations for the order lifecycle.
type OrderService interface {
	// PlaceOrder validates and persists a checkout request, returning the
	// created order with its assigned id.
	PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error)

	// ListOrders returns all orders in insertion order. Admin capability.
	ListOrders(ctx context.Context) ([]model.Order, error)

	// UpdateStatus overwrites an order's status. Admin capability.
	UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error)
}

// ReviewService defines operations for customer reviews.
type ReviewService interface {
	// SubmitReview validates and persists a review, unapproved.
	SubmitReview(ctx context.Context, req *model.ReviewRequest) (*model.Review, error)

	// ApprovedReviews returns approved reviews only, in insertion order.
	ApprovedReviews(ctx context.Context) ([]model.Review, error)
}

// NewsletterService defines the newsletter signup operation.
type NewsletterService interface {
	// Subscribe records a new subscription and sends a best-effort
	// welcome mail.
	Subscribe(ctx context.Context, email string) (*model.Subscription, error)
}

// ContactService relays contact form submissions by mail.
type ContactService interface {
	// Submit sends the shop a notification and the customer an auto-reply.
	Submit(ctx context.Context, req *model.ContactRequest) error
}
