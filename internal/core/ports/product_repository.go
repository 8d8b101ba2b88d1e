package ports

import (
	"context"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

// ProductRepository defines persistence operations for catalog items.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	FindByID(ctx context.Context, id int64) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	Update(ctx context.Context, product *domain.Product) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
}
