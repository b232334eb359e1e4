package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	"github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

type ReviewRepository struct {
	pool *pgxpool.Pool
}

func NewReviewRepository(pool *pgxpool.Pool) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

func (r *ReviewRepository) Create(rv *entity.Review) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO reviews (product_id, user_id, username, rating, comment, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, rv.ProductID, rv.UserID, rv.Username, rv.Rating, rv.Comment, rv.ImageURL)
	return row.Scan(&rv.ID, &rv.CreatedAt, &rv.UpdatedAt)
}

func (r *ReviewRepository) ListByProduct(productID string) ([]*entity.Review, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, product_id, user_id, username, rating, comment, image_url, created_at, updated_at
		FROM reviews
		WHERE product_id = $1
		ORDER BY created_at DESC
	`, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.Review
	for rows.Next() {
		rv := &entity.Review{}
		if err := rows.Scan(&rv.ID, &rv.ProductID, &rv.UserID, &rv.Username, &rv.Rating,
			&rv.Comment, &rv.ImageURL, &rv.CreatedAt, &rv.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, rv)
	}
	return out, rows.Err()
}

var _ repository.ReviewRepository = (*ReviewRepository)(nil)
