package model

// MenuItem represents a drink on the coffee menu.
type MenuItem struct {
	ID          int     `json:"id" db:"id"`
	Name        string  `json:"name" db:"name"`
	Price       float64 `json:"price" db:"price"`
	Description string  `json:"description" db:"description"`
}

// StoreInfo holds the opening hours and contact phone shown on the site.
type StoreInfo struct {
	Weekdays string `json:"weekdays"`
	Weekends string `json:"weekends"`
	Phone    string `json:"phone"`
}
