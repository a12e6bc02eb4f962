package client

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
	clients map[uuid.UUID]*entity.Client
	updates int
}

func newFakeClientRepo(clients ...*entity.Client) *fakeClientRepo {
	f := &fakeClientRepo{clients: make(map[uuid.UUID]*entity.Client)}
	for _, c := range clients {
		f.clients[c.ID] = c
	}
	return f
}

func (f *fakeClientRepo) Create(ctx context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	return nil
}
func (f *fakeClientRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error) {
	c, ok := f.clients[id]
	if !ok || c.UserID != userID {
		return nil, domainerror.ErrClientNotFound
	}
	return c, nil
}
func (f *fakeClientRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	var out []*entity.Client
	for _, c := range f.clients {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}
func (f *fakeClientRepo) Update(ctx context.Context, c *entity.Client) error {
	f.clients[c.ID] = c
	f.updates++
	return nil
}
func (f *fakeClientRepo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	delete(f.clients, id)
	return nil
}
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

type fakeOverviewCache struct {
	invalidated int
}

func (f *fakeOverviewCache) Get(ctx context.Context, userID uuid.UUID, month time.Month, year int) (string, error) {
	return "", nil
}
func (f *fakeOverviewCache) Set(ctx context.Context, userID uuid.UUID, month time.Month, year int, payload string, ttl time.Duration) error {
	return nil
}
func (f *fakeOverviewCache) InvalidateUser(ctx context.Context, userID uuid.UUID) error {
	f.invalidated++
	return nil
}

func TestUpdateChargeStatusUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	productID := uuid.New()

	newClient := func() *entity.Client {
		return entity.NewClient(userID, "Acme", "", "", 10, []entity.ProductSubscription{{
			ProductID:            productID,
			ImplementationAmount: decimal.RequireFromString("500"),
			MonthlyAmount:        decimal.RequireFromString("100"),
			ImplementationStatus: entity.ChargeStatusPending,
			MonthlyStatus:        entity.ChargeStatusToPay,
		}})
	}

	t.Run("marks a monthly charge paid and invalidates the cache", func(t *testing.T) {
		client := newClient()
		repo := newFakeClientRepo(client)
		cache := &fakeOverviewCache{}
		uc := NewUpdateChargeStatusUseCase(repo, cache)

		out, err := uc.Execute(ctx, UpdateChargeStatusInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: productID,
			Kind:      entity.ChargeKindMonthly,
			Status:    entity.ChargeStatusPaid,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Client.Subscriptions[0].MonthlyStatus != entity.ChargeStatusPaid {
			t.Errorf("expected monthly status paid, got %s", out.Client.Subscriptions[0].MonthlyStatus)
		}
		if out.Client.Subscriptions[0].ImplementationStatus != entity.ChargeStatusPending {
			t.Errorf("implementation status should be untouched")
		}
		if cache.invalidated != 1 {
			t.Errorf("expected one cache invalidation, got %d", cache.invalidated)
		}
	})

	t.Run("rejects to_pay on an implementation charge", func(t *testing.T) {
		client := newClient()
		uc := NewUpdateChargeStatusUseCase(newFakeClientRepo(client), &fakeOverviewCache{})

		_, err := uc.Execute(ctx, UpdateChargeStatusInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: productID,
			Kind:      entity.ChargeKindImplementation,
			Status:    entity.ChargeStatusToPay,
		})
		var clientErr *domainerror.ClientError
		if !errors.As(err, &clientErr) || clientErr.Code != domainerror.ErrCodeInvalidChargeStatus {
			t.Fatalf("expected invalid charge status error, got %v", err)
		}
	})

	t.Run("rejects an unknown subscription", func(t *testing.T) {
		client := newClient()
		uc := NewUpdateChargeStatusUseCase(newFakeClientRepo(client), &fakeOverviewCache{})

		_, err := uc.Execute(ctx, UpdateChargeStatusInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: uuid.New(),
			Kind:      entity.ChargeKindMonthly,
			Status:    entity.ChargeStatusPaid,
		})
		var clientErr *domainerror.ClientError
		if !errors.As(err, &clientErr) || clientErr.Code != domainerror.ErrCodeSubscriptionNotFound {
			t.Fatalf("expected subscription not found error, got %v", err)
		}
	})

	t.Run("scopes lookups to the owning user", func(t *testing.T) {
		client := newClient()
		uc := NewUpdateChargeStatusUseCase(newFakeClientRepo(client), &fakeOverviewCache{})

		_, err := uc.Execute(ctx, UpdateChargeStatusInput{
			UserID:    uuid.New(),
			ClientID:  client.ID,
			ProductID: productID,
			Kind:      entity.ChargeKindMonthly,
			Status:    entity.ChargeStatusPaid,
		})
		var clientErr *domainerror.ClientError
		if !errors.As(err, &clientErr) || clientErr.Code != domainerror.ErrCodeClientNotFound {
			t.Fatalf("expected client not found error, got %v", err)
		}
	})
}
