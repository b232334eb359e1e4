package repository

import "github.com/oksasatya/go-ecommerce-api/internal/domain/entity"

// ProductRepository defines catalog persistence operations.
type ProductRepository interface {
	Create(p *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List(limit, offset int) ([]*entity.Product, error)
	SetImageURL(id, url string) error
}
