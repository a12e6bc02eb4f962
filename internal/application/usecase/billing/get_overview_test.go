package billing

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

type fakeClientRepo struct {
	clients []*entity.Client
}

func (f *fakeClientRepo) Create(ctx context.Context, c *entity.Client) error { return nil }
func (f *fakeClientRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error) {
	for _, c := range f.clients {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, domainerror.ErrClientNotFound
}
func (f *fakeClientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	return f.clients, nil
}
func (f *fakeClientRepo) Update(ctx context.Context, c *entity.Client) error       { return nil }
func (f *fakeClientRepo) Delete(ctx context.Context, userID, id uuid.UUID) error   { return nil }
func (f *fakeClientRepo) CountByProductID(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	var n int64
	for _, c := range f.clients {
		for _, s := range c.Subscriptions {
			if s.ProductID == productID {
				n++
				break
			}
		}
	}
	return n, nil
}

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}
func (f *fakeProductRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error     { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, userID, id uuid.UUID) error  { return nil }
func (f *fakeProductRepo) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, p := range f.products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

type fakeExpenseRepo struct {
	expenses []*entity.Expense
}

func (f *fakeExpenseRepo) Create(ctx context.Context, e *entity.Expense) error { return nil }
func (f *fakeExpenseRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error) {
	for _, e := range f.expenses {
		if e.ID == id {
			return e, nil
		}
	}
	return nil, domainerror.ErrExpenseNotFound
}
func (f *fakeExpenseRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error) {
	return f.expenses, nil
}
func (f *fakeExpenseRepo) FindByPeriod(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range f.expenses {
		if e.InPeriod(month, year) {
			out = append(out, e)
		}
	}
	return out, nil
}
func (f *fakeExpenseRepo) Update(ctx context.Context, e *entity.Expense) error    { return nil }
func (f *fakeExpenseRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }

type fakeOverviewCache struct {
	entries     map[string]string
	invalidated int
}

func newFakeOverviewCache() *fakeOverviewCache {
	return &fakeOverviewCache{entries: make(map[string]string)}
}

func cacheKey(userID uuid.UUID, month time.Month, year int) string {
	return userID.String() + ":" + time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Format("2006-01")
}

func (f *fakeOverviewCache) Get(ctx context.Context, userID uuid.UUID, month time.Month, year int) (string, error) {
	return f.entries[cacheKey(userID, month, year)], nil
}
func (f *fakeOverviewCache) Set(ctx context.Context, userID uuid.UUID, month time.Month, year int, payload string, ttl time.Duration) error {
	f.entries[cacheKey(userID, month, year)] = payload
	return nil
}
func (f *fakeOverviewCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	f.invalidated++
	f.entries = make(map[string]string)
	return nil
}

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestGetOverviewUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	product := entity.NewProduct(userID, "Consultoria", "", money("0"), money("100"))
	client := entity.NewClient(userID, "Acme", "acme@example.com", "", 10, []entity.ProductSubscription{{
		ProductID:            product.ID,
		ImplementationAmount: decimal.Zero,
		MonthlyAmount:        money("100"),
		ImplementationStatus: entity.ChargeStatusPending,
		MonthlyStatus:        entity.ChargeStatusToPay,
	}})
	expense := entity.NewExpense(userID, "Hospedagem", money("30"), "Tecnologia",
		time.Date(2025, time.March, 3, 0, 0, 0, 0, time.UTC), "")

	newUC := func(cache *fakeOverviewCache) *GetOverviewUseCase {
		uc := NewGetOverviewUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			&fakeExpenseRepo{expenses: []*entity.Expense{expense}},
			cache,
		)
		uc.now = func() time.Time { return time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC) }
		return uc
	}

	t.Run("rejects invalid period", func(t *testing.T) {
		uc := newUC(newFakeOverviewCache())
		_, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: 13, Year: 2025})
		var billingErr *domainerror.BillingError
		if !errors.As(err, &billingErr) || billingErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Fatalf("expected invalid period error, got %v", err)
		}
	})

	t.Run("aggregates and populates the cache", func(t *testing.T) {
		cache := newFakeOverviewCache()
		uc := newUC(cache)

		out, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: time.March, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Summary.TotalOverdue.Equal(money("100")) {
			t.Errorf("expected overdue 100, got %s", out.Summary.TotalOverdue)
		}
		if !out.Summary.TotalExpenses.Equal(money("30")) {
			t.Errorf("expected expenses 30, got %s", out.Summary.TotalExpenses)
		}
		if len(cache.entries) != 1 {
			t.Errorf("expected one cache entry, got %d", len(cache.entries))
		}
	})

	t.Run("serves repeated reads from the cache", func(t *testing.T) {
		cache := newFakeOverviewCache()
		uc := newUC(cache)

		first, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: time.March, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := uc.Execute(ctx, GetOverviewInput{UserID: userID, Month: time.March, Year: 2025})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !first.Summary.TotalExpected.Equal(second.Summary.TotalExpected) {
			t.Errorf("cached summary diverged: %s vs %s", first.Summary.TotalExpected, second.Summary.TotalExpected)
		}
		if !second.Summary.NetProfit.Equal(first.Summary.NetProfit) {
			t.Errorf("cached net profit diverged")
		}
	})
}
