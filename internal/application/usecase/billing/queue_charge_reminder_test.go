package billing

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

type fakeEmailService struct {
	reminders []adapter.QueueChargeReminderInput
}

func (f *fakeEmailService) QueuePasswordResetEmail(ctx context.Context, input adapter.QueuePasswordResetInput) error {
	return nil
}
func (f *fakeEmailService) QueueChargeReminderEmail(ctx context.Context, input adapter.QueueChargeReminderInput) error {
	f.reminders = append(f.reminders, input)
	return nil
}

func TestQueueChargeReminderUseCase(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	product := entity.NewProduct(userID, "Consultoria", "", money("500"), money("100"))

	newClientWithEmail := func(email string) *entity.Client {
		return entity.NewClient(userID, "Acme", email, "+5511999990000", 10, []entity.ProductSubscription{{
			ProductID:            product.ID,
			ImplementationAmount: money("500"),
			MonthlyAmount:        money("100"),
			ImplementationStatus: entity.ChargeStatusPending,
			MonthlyStatus:        entity.ChargeStatusToPay,
		}})
	}

	t.Run("queues a monthly reminder with the rendered message", func(t *testing.T) {
		client := newClientWithEmail("billing@acme.com")
		emailService := &fakeEmailService{}
		uc := NewQueueChargeReminderUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			emailService,
		)

		out, err := uc.Execute(ctx, QueueChargeReminderInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: product.ID,
			Kind:      entity.ChargeKindMonthly,
			Month:     3,
			Year:      2025,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Queued {
			t.Errorf("expected reminder to be queued")
		}
		if !strings.Contains(out.Message, "Acme") || !strings.Contains(out.Message, "Consultoria") {
			t.Errorf("message missing client or product name: %q", out.Message)
		}
		if !strings.Contains(out.Message, "dia 10") {
			t.Errorf("message missing due day: %q", out.Message)
		}
		if len(emailService.reminders) != 1 {
			t.Fatalf("expected one queued email, got %d", len(emailService.reminders))
		}
		queued := emailService.reminders[0]
		if queued.ClientEmail != "billing@acme.com" {
			t.Errorf("unexpected recipient %q", queued.ClientEmail)
		}
		if queued.ChargeLabel != "Consultoria (Mens)" {
			t.Errorf("unexpected charge label %q", queued.ChargeLabel)
		}
	})

	t.Run("labels implementation charges", func(t *testing.T) {
		client := newClientWithEmail("billing@acme.com")
		emailService := &fakeEmailService{}
		uc := NewQueueChargeReminderUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			emailService,
		)

		_, err := uc.Execute(ctx, QueueChargeReminderInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: product.ID,
			Kind:      entity.ChargeKindImplementation,
			Month:     3,
			Year:      2025,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if emailService.reminders[0].ChargeLabel != "Consultoria (Impl)" {
			t.Errorf("unexpected charge label %q", emailService.reminders[0].ChargeLabel)
		}
	})

	t.Run("rejects a client without an email address", func(t *testing.T) {
		client := newClientWithEmail("")
		emailService := &fakeEmailService{}
		uc := NewQueueChargeReminderUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			emailService,
		)

		_, err := uc.Execute(ctx, QueueChargeReminderInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: product.ID,
			Kind:      entity.ChargeKindMonthly,
			Month:     3,
			Year:      2025,
		})
		var billingErr *domainerror.BillingError
		if !errors.As(err, &billingErr) || billingErr.Code != domainerror.ErrCodeClientHasNoEmail {
			t.Fatalf("expected client has no email error, got %v", err)
		}
		if len(emailService.reminders) != 0 {
			t.Errorf("no email should be queued without a recipient")
		}
	})

	t.Run("rejects an unknown subscription", func(t *testing.T) {
		client := newClientWithEmail("billing@acme.com")
		uc := NewQueueChargeReminderUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			&fakeEmailService{},
		)

		_, err := uc.Execute(ctx, QueueChargeReminderInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: uuid.New(),
			Kind:      entity.ChargeKindMonthly,
			Month:     3,
			Year:      2025,
		})
		var clientErr *domainerror.ClientError
		if !errors.As(err, &clientErr) || clientErr.Code != domainerror.ErrCodeSubscriptionNotFound {
			t.Fatalf("expected subscription not found error, got %v", err)
		}
	})

	t.Run("rejects an invalid period", func(t *testing.T) {
		client := newClientWithEmail("billing@acme.com")
		uc := NewQueueChargeReminderUseCase(
			&fakeClientRepo{clients: []*entity.Client{client}},
			&fakeProductRepo{products: []*entity.Product{product}},
			&fakeEmailService{},
		)

		_, err := uc.Execute(ctx, QueueChargeReminderInput{
			UserID:    userID,
			ClientID:  client.ID,
			ProductID: product.ID,
			Kind:      entity.ChargeKindMonthly,
			Month:     0,
			Year:      2025,
		})
		var billingErr *domainerror.BillingError
		if !errors.As(err, &billingErr) || billingErr.Code != domainerror.ErrCodeInvalidPeriod {
			t.Fatalf("expected invalid period error, got %v", err)
		}
	})
}
