package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"coffeehouse/internal/model"
	"coffeehouse/internal/repository"

	"github.com/rs/zerolog"
)

// orderService implements OrderService.
type orderService struct {
	repo   repository.OrderRepository
	logger zerolog.Logger
}

// NewOrderService creates a new order service.
func NewOrderService(repo repository.OrderRepository, logger zerolog.Logger) OrderService {
	return &orderService{
		repo:   repo,
		logger: logger.With().Str("service", "order").Logger(),
	}
}

// PlaceOrder validates and persists a checkout request.
func (s *orderService) PlaceOrder(ctx context.Context, req *model.OrderRequest) (*model.Order, error) {
	if err := s.validateOrderRequest(req); err != nil {
		return nil, err
	}

	// The client-computed total is trusted when present; when it is
	// omitted the total is recomputed from the line snapshots.
	total := req.Total
	if total <= 0 {
		total = 0
		for _, item := range req.Items {
			total += item.Price * float64(item.Quantity)
		}
	}

	order := &model.Order{
		CustomerName: req.CustomerName,
		Email:        req.Email,
		Phone:        req.Phone,
		Items:        req.Items,
		Total:        total,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(ctx, order); err != nil {
		s.logger.Error().Err(err).Str("customer", req.CustomerName).Msg("failed to create order")
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info().
		Int("order_id", order.ID).
		Int("item_count", len(order.Items)).
		Float64("total", order.Total).
		Msg("order placed successfully")

	return order, nil
}

// ListOrders returns all orders in insertion order.
func (s *orderService) ListOrders(ctx context.Context) ([]model.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list orders")
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	return orders, nil
}

// UpdateStatus overwrites an order's status. Any non-empty string is
// accepted; staff drive the vocabulary.
func (s *orderService) UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	if strings.TrimSpace(status) == "" {
		return nil, model.NewDomainError(model.ErrCodeMissingField, "Status is required")
	}

	order, err := s.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			s.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, model.ErrOrderNotFound
		}
		s.logger.Error().Err(err).Int("order_id", id).Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	s.logger.Info().
		Int("order_id", id).
		Str("status", status).
		Msg("order status updated")

	return order, nil
}

// validateOrderRequest validates the checkout request.
func (s *orderService) validateOrderRequest(req *model.OrderRequest) error {
	if req == nil {
		return model.NewDomainError(model.ErrCodeMissingField, "Order request is required")
	}

	if strings.TrimSpace(req.CustomerName) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		len(req.Items) == 0 {
		return model.NewDomainError(model.ErrCodeMissingField, "Customer name, email, and items are required")
	}

	for i, item := range req.Items {
		if item.Quantity <= 0 {
			s.logger.Warn().
				Int("item_index", i).
				Int("item_id", item.ID).
				Int("quantity", item.Quantity).
				Msg("invalid quantity")
			return model.ErrInvalidQuantity
		}
	}

	return nil
}
