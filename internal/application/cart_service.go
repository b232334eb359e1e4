package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

// CartService maintains per-user cart lines.
type CartService struct {
	Items    repo.CartRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewCartService(items repo.CartRepository, products repo.ProductRepository, logger *logrus.Logger) *CartService {
	return &CartService{Items: items, Products: products, Logger: logger}
}

// Add puts the product into the user's cart. Re-adding a product the cart
// already holds raises that line's quantity instead of creating a second one.
func (s *CartService) Add(ctx context.Context, userID, productID string, quantity int) (*entity.CartItem, error) {
	if quantity < 1 {
		quantity = 1
	}
	p, err := s.Products.GetByID(productID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	item := &entity.CartItem{
		UserID:    userID,
		ProductID: productID,
		Quantity:  quantity,
	}
	if err := s.Items.Upsert(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *CartService) List(ctx context.Context, userID string) ([]*entity.CartItem, error) {
	return s.Items.ListByUser(userID)
}

// UpdateQuantity overwrites a line's quantity; quantity zero removes the line.
func (s *CartService) UpdateQuantity(ctx context.Context, userID, productID string, quantity int) error {
	if quantity <= 0 {
		return s.Items.Remove(userID, productID)
	}
	ok, err := s.Items.SetQuantity(userID, productID, quantity)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCartItemNotFound
	}
	return nil
}

// Remove deletes a line; removing an absent line succeeds.
func (s *CartService) Remove(ctx context.Context, userID, productID string) error {
	return s.Items.Remove(userID, productID)
}
