package catalog

import (
	"fmt"

	"coffeehouse/internal/model"
)

// Catalog is the read-only coffee menu. It is fixed at startup; nothing
// mutates it afterwards, so it is safe for concurrent reads.
type Catalog struct {
	items []model.MenuItem
}

// New creates a catalog from the given items. Items must be non-empty and
// carry unique ids.
func New(items []model.MenuItem) (*Catalog, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("catalog must contain at least one item")
	}

	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if item.ID <= 0 {
			return nil, fmt.Errorf("catalog item %q has invalid id %d", item.Name, item.ID)
		}
		if seen[item.ID] {
			return nil, fmt.Errorf("duplicate catalog item id %d", item.ID)
		}
		if item.Name == "" {
			return nil, fmt.Errorf("catalog item %d has no name", item.ID)
		}
		seen[item.ID] = true
	}

	cp := make([]model.MenuItem, len(items))
	copy(cp, items)
	return &Catalog{items: cp}, nil
}

// Default returns the built-in nine-drink menu.
func Default() *Catalog {
	c, err := New(defaultMenu)
	if err != nil {
		// The seed is a compile-time constant; a failure here is a bug.
		panic(err)
	}
	return c
}

// Items returns a copy of the menu in listing order.
func (c *Catalog) Items() []model.MenuItem {
	cp := make([]model.MenuItem, len(c.items))
	copy(cp, c.items)
	return cp
}

// Len returns the number of menu items.
func (c *Catalog) Len() int {
	return len(c.items)
}

var defaultMenu = []model.MenuItem{
	{ID: 1, Name: "Cappuccino", Price: 49, Description: "Perfect blend of espresso, steamed milk, and milk foam"},
	{ID: 2, Name: "Americano", Price: 49, Description: "Rich espresso shots with hot water for a bold flavor"},
	{ID: 3, Name: "Espresso", Price: 49, Description: "Pure, concentrated coffee shot for true coffee lovers"},
	{ID: 4, Name: "Macchiato", Price: 49, Description: "Espresso marked with a dollop of steamed milk foam"},
	{ID: 5, Name: "Mocha", Price: 49, Description: "Delicious combination of espresso, chocolate, and steamed milk"},
	{ID: 6, Name: "Coffee Latte", Price: 49, Description: "Smooth espresso with steamed milk and light foam"},
	{ID: 7, Name: "Piccolo Latte", Price: 49, Description: "Small but strong latte with perfect milk to coffee ratio"},
	{ID: 8, Name: "Ristretto", Price: 49, Description: "Short shot of espresso with intense flavor"},
	{ID: 9, Name: "Affogato", Price: 49, Description: "Vanilla ice cream drowned in a shot of hot espresso"},
}

// DefaultStoreInfo returns the opening hours and phone shown on the site.
func DefaultStoreInfo() model.StoreInfo {
	return model.StoreInfo{
		Weekdays: "Mon-Fri: 8am to 2pm",
		Weekends: "Sat-Sun: 11am to 4pm",
		Phone:    "(012) 6985 236 7512",
	}
}
