// Package storefront holds the customer-facing shopping flow: an in-memory
// cart and a typed client for the storefront API.
package storefront

import "coffeehouse/internal/model"

// Cart accumulates order lines before checkout. Adding an item already in
// the cart bumps its quantity instead of creating a second line.
type Cart struct {
	lines []model.OrderItem
}

// NewCart creates an empty cart.
func NewCart() *Cart {
	return &Cart{}
}

// AddLine puts one unit of the given menu item in the cart, merging with an
// existing line for the same item id.
func (c *Cart) AddLine(itemID int, name string, price float64) {
	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines[i].Quantity++
			return
		}
	}

	c.lines = append(c.lines, model.OrderItem{
		ID:       itemID,
		Name:     name,
		Price:    price,
		Quantity: 1,
	})
}

// RemoveLine drops the whole line for the given item id, regardless of
// quantity.
func (c *Cart) RemoveLine(itemID int) {
	for i := range c.lines {
		if c.lines[i].ID == itemID {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// Total returns the sum of price times quantity across all lines.
func (c *Cart) Total() float64 {
	var total float64
	for _, l := range c.lines {
		total += l.Price * float64(l.Quantity)
	}
	return total
}

// Count returns the total number of units in the cart.
func (c *Cart) Count() int {
	var n int
	for _, l := range c.lines {
		n += l.Quantity
	}
	return n
}

// Empty reports whether the cart has no lines.
func (c *Cart) Empty() bool {
	return len(c.lines) == 0
}

// Lines returns a copy of the cart contents.
func (c *Cart) Lines() []model.OrderItem {
	out := make([]model.OrderItem, len(c.lines))
	copy(out, c.lines)
	return out
}
