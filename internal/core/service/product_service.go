package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/playgroundhq/playground-api/internal/core/domain"
	"github.com/playgroundhq/playground-api/internal/core/ports"
)

// ProductService implements catalog CRUD. Products carry no business
// invariants, so this is a thin pass-through over the repository.
type ProductService struct {
	repo   ports.ProductRepository
	logger zerolog.Logger
}

func NewProductService(repo ports.ProductRepository, logger zerolog.Logger) *ProductService {
	return &ProductService{repo: repo, logger: logger}
}

func (s *ProductService) CreateProduct(ctx context.Context, name string, price float64) (*domain.Product, error) {
	if name == "" || price < 0 {
		return nil, domain.ErrInvalidInput
	}

	created, err := s.repo.Create(ctx, &domain.Product{Name: name, Price: price})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("product_id", created.ID).Str("name", created.Name).Msg("product created")
	return created, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id int64) (*domain.Product, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *ProductService) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.repo.List(ctx)
}

func (s *ProductService) UpdateProduct(ctx context.Context, id int64, name string, price float64) (bool, error) {
	if id == 0 {
		return false, domain.ErrMissingID
	}
	if name == "" || price < 0 {
		return false, domain.ErrInvalidInput
	}
	return s.repo.Update(ctx, &domain.Product{ID: id, Name: name, Price: price})
}

func (s *ProductService) DeleteProduct(ctx context.Context, id int64) (bool, error) {
	return s.repo.Delete(ctx, id)
}

var _ ports.ProductService = (*ProductService)(nil)
