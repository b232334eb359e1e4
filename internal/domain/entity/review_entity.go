package entity

import "time"

// Review links a user's rating/comment to a product.
type Review struct {
	ID        string
	ProductID string
	UserID    string
	Username  string
	Rating    int
	Comment   string
	ImageURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
