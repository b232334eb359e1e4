package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	"github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

type CartRepository struct {
	pool *pgxpool.Pool
}

func NewCartRepository(pool *pgxpool.Pool) *CartRepository {
	return &CartRepository{pool: pool}
}

func (r *CartRepository) Upsert(item *entity.CartItem) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO cart_items (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart_items.quantity + EXCLUDED.quantity, updated_at = now()
		RETURNING id, quantity, created_at, updated_at
	`, item.UserID, item.ProductID, item.Quantity)
	return row.Scan(&item.ID, &item.Quantity, &item.CreatedAt, &item.UpdatedAt)
}

func (r *CartRepository) ListByUser(userID string) ([]*entity.CartItem, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT id, user_id, product_id, quantity, created_at, updated_at
		FROM cart_items
		WHERE user_id = $1
		ORDER BY created_at
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*entity.CartItem
	for rows.Next() {
		item := &entity.CartItem{}
		if err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity,
			&item.CreatedAt, &item.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *CartRepository) SetQuantity(userID, productID string, quantity int) (bool, error) {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE cart_items SET quantity = $1, updated_at = now()
		WHERE user_id = $2 AND product_id = $3
	`, quantity, userID, productID)
	if err != nil {
		return false, err
	}
	return res.RowsAffected() == 1, nil
}

func (r *CartRepository) Remove(userID, productID string) error {
	_, err := r.pool.Exec(context.Background(), `
		DELETE FROM cart_items WHERE user_id = $1 AND product_id = $2
	`, userID, productID)
	return err
}

var _ repository.CartRepository = (*CartRepository)(nil)
