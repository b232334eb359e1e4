package application

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	repo "github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

// ReviewService stores and lists product reviews.
type ReviewService struct {
	Reviews  repo.ReviewRepository
	Products repo.ProductRepository
	Logger   *logrus.Logger
}

func NewReviewService(reviews repo.ReviewRepository, products repo.ProductRepository, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Reviews: reviews, Products: products, Logger: logger}
}

type AddReviewInput struct {
	ProductID string
	UserID    string
	Username  string
	Rating    int
	Comment   string
	ImageURL  string
}

func (s *ReviewService) Add(ctx context.Context, in AddReviewInput) (*entity.Review, error) {
	p, err := s.Products.GetByID(in.ProductID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrProductNotFound
	}
	rv := &entity.Review{
		ProductID: in.ProductID,
		UserID:    in.UserID,
		Username:  in.Username,
		Rating:    in.Rating,
		Comment:   in.Comment,
		ImageURL:  in.ImageURL,
	}
	if err := s.Reviews.Create(rv); err != nil {
		return nil, err
	}
	return rv, nil
}

func (s *ReviewService) ListByProduct(ctx context.Context, productID string) ([]*entity.Review, error) {
	return s.Reviews.ListByProduct(productID)
}
