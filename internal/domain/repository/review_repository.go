package repository

import "github.com/oksasatya/go-ecommerce-api/internal/domain/entity"

// ReviewRepository defines review persistence operations.
type ReviewRepository interface {
	Create(r *entity.Review) error
	ListByProduct(productID string) ([]*entity.Review, error)
}
