package client

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error { return nil }
func (f *fakeProductRepo) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id && p.UserID == userID {
			return p, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}
func (f *fakeProductRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	return f.products, nil
}
func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error    { return nil }
func (f *fakeProductRepo) Delete(ctx context.Context, userID, id uuid.UUID) error { return nil }
func (f *fakeProductRepo) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	for _, p := range f.products {
		if p.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func TestCreateClientUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	product := entity.NewProduct(userID, "Consultoria", "", decimal.RequireFromString("500"), decimal.RequireFromString("100"))

	newUseCase := func(repo *fakeClientRepo) *CreateClientUseCase {
		return NewCreateClientUseCase(repo, &fakeProductRepo{products: []*entity.Product{product}}, &fakeOverviewCache{})
	}

	t.Run("creates a client and masks the WhatsApp number", func(t *testing.T) {
		repo := newFakeClientRepo()
		uc := newUseCase(repo)

		out, err := uc.Execute(ctx, CreateClientInput{
			UserID:   userID,
			Name:     "Acme",
			Email:    "billing@acme.com",
			WhatsApp: "11999990000",
			DueDay:   10,
			Subscriptions: []SubscriptionInput{{
				ProductID:            product.ID,
				ImplementationAmount: decimal.RequireFromString("500"),
				MonthlyAmount:        decimal.RequireFromString("100"),
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Client.WhatsApp != "(11) 99999-0000" {
			t.Errorf("expected masked WhatsApp number, got %q", out.Client.WhatsApp)
		}
		if len(repo.clients) != 1 {
			t.Errorf("expected client to be persisted")
		}
		sub := out.Client.Subscriptions[0]
		if sub.ImplementationStatus != entity.ChargeStatusPending || sub.MonthlyStatus != entity.ChargeStatusToPay {
			t.Errorf("unexpected initial charge statuses: %s / %s", sub.ImplementationStatus, sub.MonthlyStatus)
		}
	})

	t.Run("masks a partially typed WhatsApp number", func(t *testing.T) {
		uc := newUseCase(newFakeClientRepo())

		out, err := uc.Execute(ctx, CreateClientInput{
			UserID:   userID,
			Name:     "Acme",
			WhatsApp: "119999",
			DueDay:   10,
			Subscriptions: []SubscriptionInput{{
				ProductID:     product.ID,
				MonthlyAmount: decimal.RequireFromString("100"),
			}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Client.WhatsApp != "(11) 9999" {
			t.Errorf("expected partial mask, got %q", out.Client.WhatsApp)
		}
	})

	t.Run("rejects a client with no billable subscription", func(t *testing.T) {
		uc := newUseCase(newFakeClientRepo())

		_, err := uc.Execute(ctx, CreateClientInput{
			UserID: userID,
			Name:   "Acme",
			DueDay: 10,
			Subscriptions: []SubscriptionInput{{
				ProductID:            product.ID,
				ImplementationAmount: decimal.Zero,
				MonthlyAmount:        decimal.Zero,
			}},
		})
		var clientErr *domainerror.ClientError
		if !errors.As(err, &clientErr) || clientErr.Code != domainerror.ErrCodeNoBillableSubscription {
			t.Fatalf("expected no billable subscription error, got %v", err)
		}
	})

	t.Run("rejects an unknown product", func(t *testing.T) {
		uc := newUseCase(newFakeClientRepo())

		_, err := uc.Execute(ctx, CreateClientInput{
			UserID: userID,
			Name:   "Acme",
			DueDay: 10,
			Subscriptions: []SubscriptionInput{{
				ProductID:     uuid.New(),
				MonthlyAmount: decimal.RequireFromString("100"),
			}},
		})
		var productErr *domainerror.ProductError
		if !errors.As(err, &productErr) || productErr.Code != domainerror.ErrCodeProductNotFound {
			t.Fatalf("expected product not found error, got %v", err)
		}
	})
}
