package model

import "time"

// StatusPending is the status assigned to every newly placed order. Later
// transitions are free-form strings set by staff.
const StatusPending = "pending"

// OrderItem is a snapshot of one cart line at checkout time. Name and price
// are denormalised so the order survives later menu changes.
type OrderItem struct {
	ID       int     `json:"id" db:"item_id"`
	Name     string  `json:"name" db:"name"`
	Price    float64 `json:"price" db:"price"`
	Quantity int     `json:"quantity" db:"quantity"`
}

// Order represents a customer order.
type Order struct {
	ID           int         `json:"id" db:"id"`
	CustomerName string      `json:"customerName" db:"customer_name"`
	Email        string      `json:"email" db:"email"`
	Phone        string      `json:"phone,omitempty" db:"phone"`
	Items        []OrderItem `json:"items" db:"items"`
	Total        float64     `json:"total" db:"total"`
	Notes        string      `json:"notes" db:"notes"`
	Status       string      `json:"status" db:"status"`
	OrderDate    time.Time   `json:"orderDate" db:"order_date"`
	UpdatedAt    *time.Time  `json:"updatedAt,omitempty" db:"updated_at"`
}

// OrderRequest represents the request payload for placing an order.
type OrderRequest struct {
	CustomerName string      `json:"customerName"`
	Email        string      `json:"email"`
	Phone        string      `json:"phone,omitempty"`
	Items        []OrderItem `json:"items"`
	Total        float64     `json:"total,omitempty"`
	Notes        string      `json:"notes,omitempty"`
}

// StatusUpdateRequest represents the request payload for an order status change.
type StatusUpdateRequest struct {
	Status string `json:"status"`
}
