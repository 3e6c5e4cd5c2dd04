package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"coffeehouse/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// orderRepository implements the OrderRepository interface using PostgreSQL.
// Line items are stored as a JSONB snapshot alongside the order, mirroring
// the in-memory shape; ids come from a BIGSERIAL so they stay monotonic.
type orderRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewOrderRepository creates a new PostgreSQL-backed order repository.
func NewOrderRepository(pool *pgxpool.Pool, logger zerolog.Logger) OrderRepository {
	return &orderRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "order").Logger(),
	}
}

// Create inserts a new order and fills in the generated id, status and
// creation timestamp.
func (r *orderRepository) Create(ctx context.Context, order *model.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("failed to encode order items: %w", err)
	}

	query := `
		INSERT INTO orders (customer_name, email, phone, items, total, notes, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, status, order_date
	`

	err = r.pool.QueryRow(ctx, query,
		order.CustomerName,
		order.Email,
		order.Phone,
		items,
		order.Total,
		order.Notes,
		model.StatusPending,
	).Scan(&order.ID, &order.Status, &order.OrderDate)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("customer", order.CustomerName).
			Msg("failed to create order")
		return fmt.Errorf("failed to create order: %w", err)
	}
	order.UpdatedAt = nil

	r.logger.Debug().
		Int("order_id", order.ID).
		Msg("order created successfully")

	return nil
}

// List returns all orders in insertion order.
func (r *orderRepository) List(ctx context.Context) ([]model.Order, error) {
	query := `
		SELECT id, customer_name, email, phone, items, total, notes, status, order_date, updated_at
		FROM orders
		ORDER BY id
	`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query orders")
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	orders := make([]model.Order, 0)
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan order row")
			return nil, err
		}
		orders = append(orders, *o)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating order rows")
		return nil, fmt.Errorf("error iterating orders: %w", err)
	}

	return orders, nil
}

// GetByID retrieves a single order by its id.
func (r *orderRepository) GetByID(ctx context.Context, id int) (*model.Order, error) {
	query := `
		SELECT id, customer_name, email, phone, items, total, notes, status, order_date, updated_at
		FROM orders
		WHERE id = $1
	`

	row := r.pool.QueryRow(ctx, query, id)
	o, err := scanOrder(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, ErrNotFound
		}
		r.logger.Error().Err(err).Int("order_id", id).Msg("failed to query order")
		return nil, fmt.Errorf("failed to query order: %w", err)
	}

	return o, nil
}

// UpdateStatus overwrites the status of an existing order.
func (r *orderRepository) UpdateStatus(ctx context.Context, id int, status string) (*model.Order, error) {
	query := `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1
		RETURNING id, customer_name, email, phone, items, total, notes, status, order_date, updated_at
	`

	row := r.pool.QueryRow(ctx, query, id, status)
	o, err := scanOrder(row)
	if err != nil {
		if err == pgx.ErrNoRows {
			r.logger.Debug().Int("order_id", id).Msg("order not found")
			return nil, ErrNotFound
		}
		r.logger.Error().
			Err(err).
			Int("order_id", id).
			Str("status", status).
			Msg("failed to update order status")
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	r.logger.Debug().
		Int("order_id", id).
		Str("status", status).
		Msg("order status updated")

	return o, nil
}

// scanOrder reads one order row, decoding the JSONB item snapshot.
func scanOrder(row pgx.Row) (*model.Order, error) {
	var (
		o     model.Order
		items []byte
	)
	err := row.Scan(
		&o.ID,
		&o.CustomerName,
		&o.Email,
		&o.Phone,
		&items,
		&o.Total,
		&o.Notes,
		&o.Status,
		&o.OrderDate,
		&o.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to scan order: %w", err)
	}

	if err := json.Unmarshal(items, &o.Items); err != nil {
		return nil, fmt.Errorf("failed to decode order items: %w", err)
	}

	return &o, nil
}
