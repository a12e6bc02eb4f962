package product

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
	deleted  int
}

func newFakeProductRepo(products ...*entity.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok || p.UserID != userID {
		return nil, domainerror.ErrProductNotFound
	}
	return p, nil
}
func (f *fakeProductRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.products, id)
	f.deleted++
	return nil
}
func (f *fakeProductRepo) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, p := range f.products {
		if p.UserID == userID && p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeClientCounter struct {
	count int64
}

func (f *fakeClientCounter) Create(ctx context.Context, c *entity.Client) error { return nil }
func (f *fakeClientCounter) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error) {
	return nil, domainerror.ErrClientNotFound
}
func (f *fakeClientCounter) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	return nil, nil
}
func (f *fakeClientCounter) Update(ctx context.Context, c *entity.Client) error     { return nil }
func (f *fakeClientCounter) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }
func (f *fakeClientCounter) CountByProductID(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	return f.count, nil
}

type noopOverviewCache struct{}

func (noopOverviewCache) Get(ctx context.Context, userID uuid.UUID, month time.Month, year int) (string, error) {
	return "", nil
}
func (noopOverviewCache) Set(ctx context.Context, userID uuid.UUID, month time.Month, year int, payload string, ttl time.Duration) error {
	return nil
}
func (noopOverviewCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error { return nil }

func TestDeleteProductUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	product := entity.NewProduct(userID, "Consultoria", "", decimal.Zero, decimal.RequireFromString("100"))

	t.Run("blocks deletion while clients are subscribed", func(t *testing.T) {
		repo := newFakeProductRepo(product)
		uc := NewDeleteProductUseCase(repo, &fakeClientCounter{count: 3}, noopOverviewCache{})

		_, err := uc.Execute(ctx, DeleteProductInput{UserID: userID, ProductID: product.ID})
		var productErr *domainerror.ProductError
		if !errors.As(err, &productErr) {
			t.Fatalf("expected product error, got %v", err)
		}
		if productErr.Code != domainerror.ErrCodeProductInUse {
			t.Errorf("expected in-use code, got %s", productErr.Code)
		}
		if productErr.BlockingClients != 3 {
			t.Errorf("expected 3 blocking clients, got %d", productErr.BlockingClients)
		}
		if repo.deleted != 0 {
			t.Errorf("product must not be deleted while referenced")
		}
	})

	t.Run("deletes an unreferenced product", func(t *testing.T) {
		repo := newFakeProductRepo(product)
		uc := NewDeleteProductUseCase(repo, &fakeClientCounter{count: 0}, noopOverviewCache{})

		out, err := uc.Execute(ctx, DeleteProductInput{UserID: userID, ProductID: product.ID})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Success || repo.deleted != 1 {
			t.Errorf("expected one deletion, got %d", repo.deleted)
		}
	})

	t.Run("rejects a product of another user", func(t *testing.T) {
		repo := newFakeProductRepo(product)
		uc := NewDeleteProductUseCase(repo, &fakeClientCounter{}, noopOverviewCache{})

		_, err := uc.Execute(ctx, DeleteProductInput{UserID: uuid.New(), ProductID: product.ID})
		var productErr *domainerror.ProductError
		if !errors.As(err, &productErr) || productErr.Code != domainerror.ErrCodeProductNotFound {
			t.Fatalf("expected product not found error, got %v", err)
		}
	})
}
