package entity

import "time"

// CartItem is one product line in a user's cart. A user holds at most one
// line per product; adding the same product again raises the quantity.
type CartItem struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
