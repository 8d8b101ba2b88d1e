package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

type ProductRepository struct {
	pool *pgxpool.Pool
}

func NewProductRepository(pool *pgxpool.Pool) *ProductRepository {
	return &ProductRepository{pool: pool}
}

func (r *ProductRepository) Create(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	const query = `
		INSERT INTO products (name, price)
		VALUES ($1, $2)
		RETURNING id, name, price`

	var p domain.Product
	if err := r.pool.QueryRow(ctx, query, product.Name, product.Price).Scan(&p.ID, &p.Name, &p.Price); err != nil {
		return nil, fmt.Errorf("insert product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) FindByID(ctx context.Context, id int64) (*domain.Product, error) {
	const query = `SELECT id, name, price FROM products WHERE id = $1`

	var p domain.Product
	if err := r.pool.QueryRow(ctx, query, id).Scan(&p.ID, &p.Name, &p.Price); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProductNotFound
		}
		return nil, fmt.Errorf("find product: %w", err)
	}
	return &p, nil
}

func (r *ProductRepository) List(ctx context.Context) ([]domain.Product, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name, price FROM products ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	defer rows.Close()

	var products []domain.Product
	for rows.Next() {
		var p domain.Product
		if err := rows.Scan(&p.ID, &p.Name, &p.Price); err != nil {
			return nil, fmt.Errorf("scan product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

func (r *ProductRepository) Update(ctx context.Context, product *domain.Product) (bool, error) {
	if product.ID == 0 {
		return false, domain.ErrMissingID
	}

	tag, err := r.pool.Exec(ctx, `UPDATE products SET name = $2, price = $3 WHERE id = $1`,
		product.ID, product.Name, product.Price)
	if err != nil {
		return false, fmt.Errorf("update product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ProductRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete product: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

var _ ports.ProductRepository = (*ProductRepository)(nil)
