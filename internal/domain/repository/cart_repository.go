package repository

import (
	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
)

// CartRepository defines the interface for cart-related database operations.
type CartRepository interface {
	// Upsert inserts the line or, when the user already carries the product,
	// adds the quantity onto the existing line.
	Upsert(item *entity.CartItem) error
	ListByUser(userID string) ([]*entity.CartItem, error)

	// SetQuantity overwrites the quantity and reports whether a line matched.
	SetQuantity(userID, productID string, quantity int) (bool, error)

	// Remove deletes the line; removing an absent line is not an error.
	Remove(userID, productID string) error
}
