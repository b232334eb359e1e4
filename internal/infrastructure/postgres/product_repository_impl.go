package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/oksasatya/go-ecommerce-api/internal/domain/entity"
	"github.com/oksasatya/go-ecommerce-api/internal/domain/repository"
)

const productColumns = `id, name, description, price, category, stock, image_url, created_at, updated_at`

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	p := &entity.Product{}
	err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock,
		&p.ImageURL, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return p, nil
}

func (r *ProductRepository) Create(p *entity.Product) error {
	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO products (name, description, price, category, stock, image_url)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`, p.Name, p.Description, p.Price, p.Category, p.Stock, p.ImageURL)
	return row.Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
}

func (r *ProductRepository) GetByID(id string) (*entity.Product, error) {
	row := r.pool.QueryRow(context.Background(),
		`SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	return scanProduct(row)
}

func (r *ProductRepository) List(limit, offset int) ([]*entity.Product, error) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	rows, err := r.pool.Query(context.Background(),
		`SELECT `+productColumns+` FROM products ORDER BY created_at DESC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]*entity.Product, 0, limit)
	for rows.Next() {
		p := &entity.Product{}
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.Price, &p.Category, &p.Stock,
			&p.ImageURL, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (r *ProductRepository) SetImageURL(id, url string) error {
	res, err := r.pool.Exec(context.Background(), `
		UPDATE products SET image_url = $1, updated_at = $2 WHERE id = $3
	`, url, time.Now(), id)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

var _ repository.ProductRepository = (*ProductRepository)(nil)
