package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/playgroundhq/playground-api/internal/core/domain"
)

type stubProductRepo struct {
	products map[int64]*domain.Product
	nextID   int64
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{products: make(map[int64]*domain.Product), nextID: 1}
}

func (r *stubProductRepo) Create(_ context.Context, p *domain.Product) (*domain.Product, error) {
	stored := *p
	stored.ID = r.nextID
	r.nextID++
	r.products[stored.ID] = &stored
	out := stored
	return &out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id int64) (*domain.Product, error) {
	p, ok := r.products[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	out := *p
	return &out, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.products))
	for id := int64(1); id < r.nextID; id++ {
		if p, ok := r.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubProductRepo) Update(_ context.Context, p *domain.Product) (bool, error) {
	if _, ok := r.products[p.ID]; !ok {
		return false, nil
	}
	stored := *p
	r.products[p.ID] = &stored
	return true, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := r.products[id]; !ok {
		return false, nil
	}
	delete(r.products, id)
	return true, nil
}

func TestProductService_CRUD(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	created, err := svc.CreateProduct(context.Background(), "cupcake", 3.50)
	if err != nil {
		t.Fatalf("CreateProduct returned error: %v", err)
	}
	if created.ID == 0 {
		t.Fatalf("expected assigned id")
	}

	got, err := svc.GetProduct(context.Background(), created.ID)
	if err != nil || got.Name != "cupcake" || got.Price != 3.50 {
		t.Fatalf("GetProduct: %+v %v", got, err)
	}

	ok, err := svc.UpdateProduct(context.Background(), created.ID, "cupcake deluxe", 4.25)
	if err != nil || !ok {
		t.Fatalf("UpdateProduct: ok=%v err=%v", ok, err)
	}

	items, err := svc.ListProducts(context.Background())
	if err != nil || len(items) != 1 || items[0].Name != "cupcake deluxe" {
		t.Fatalf("ListProducts: %+v %v", items, err)
	}

	ok, err = svc.DeleteProduct(context.Background(), created.ID)
	if err != nil || !ok {
		t.Fatalf("DeleteProduct: ok=%v err=%v", ok, err)
	}
	if _, err := svc.GetProduct(context.Background(), created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestProductService_Validation(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	if _, err := svc.CreateProduct(context.Background(), "", 1.0); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty name, got %v", err)
	}
	if _, err := svc.CreateProduct(context.Background(), "free", -0.01); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for negative price, got %v", err)
	}
	if _, err := svc.UpdateProduct(context.Background(), 0, "x", 1.0); !errors.Is(err, domain.ErrMissingID) {
		t.Fatalf("expected ErrMissingID, got %v", err)
	}
}

func TestProductService_UpdateMissing(t *testing.T) {
	svc := NewProductService(newStubProductRepo(), zerolog.Nop())

	ok, err := svc.UpdateProduct(context.Background(), 99, "ghost", 1.0)
	if err != nil || ok {
		t.Fatalf("expected (false, nil), got (%v, %v)", ok, err)
	}
}
