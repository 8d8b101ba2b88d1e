package ports

import (
	"context"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// ProductService defines use-case operations for the product catalog.
type ProductService interface {
	CreateProduct(ctx context.Context, name string, price float64) (*domain.Product, error)
	GetProduct(ctx context.Context, id int64) (*domain.Product, error)
	ListProducts(ctx context.Context) ([]domain.Product, error)
	UpdateProduct(ctx context.Context, id int64, name string, price float64) (bool, error)
	DeleteProduct(ctx context.Context, id int64) (bool, error)
}
