// Package billing contains billing overview and charge use cases.
package billing

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/billing"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/domain/valueobject"
)

// QueueChargeReminderInput represents the input for queueing a charge
// reminder for one client subscription charge.
type QueueChargeReminderInput struct {
	UserID    uuid.UUID
	ClientID  uuid.UUID
	ProductID uuid.UUID
	Kind      entity.ChargeKind
	Month     time.Month
	Year      int
}

// QueueChargeReminderOutput carries the rendered reminder text, also used
// as the copy-to-clipboard WhatsApp message.
type QueueChargeReminderOutput struct {
	Message string
	Queued  bool
}

// QueueChargeReminderUseCase builds the reminder message for a charge and,
// when the client has an email address, queues it for delivery.
type QueueChargeReminderUseCase struct {
	clientRepo   adapter.ClientRepository
	productRepo  adapter.ProductRepository
	emailService adapter.EmailService
}

// NewQueueChargeReminderUseCase creates a new QueueChargeReminderUseCase instance.
func NewQueueChargeReminderUseCase(
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	emailService adapter.EmailService,
) *QueueChargeReminderUseCase {
	return &QueueChargeReminderUseCase{
		clientRepo:   clientRepo,
		productRepo:  productRepo,
		emailService: emailService,
	}
}

// Execute renders and queues the reminder.
func (uc *QueueChargeReminderUseCase) Execute(ctx context.Context, input QueueChargeReminderInput) (*QueueChargeReminderOutput, error) {
	if input.Month < time.January || input.Month > time.December || input.Year <= 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 1-12 and year positive",
			domainerror.ErrInvalidPeriod,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.UserID, input.ClientID)
	if err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	var amount decimal.Decimal
	found := false
	for _, sub := range client.Subscriptions {
		if sub.ProductID != input.ProductID {
			continue
		}
		found = true
		if input.Kind == entity.ChargeKindImplementation {
			amount = sub.ImplementationAmount
		} else {
			amount = sub.MonthlyAmount
		}
		break
	}
	if !found {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeSubscriptionNotFound,
			"client has no subscription for this product",
			domainerror.ErrSubscriptionNotFound,
		)
	}

	productName := billing.UnknownProductName
	if product, err := uc.productRepo.FindByID(ctx, input.UserID, input.ProductID); err == nil {
		productName = product.Name
	}

	dueDate := billing.DueDate(client.DueDay, input.Month, input.Year)
	message := reminderMessage(client.Name, productName, amount, client.DueDay)

	if client.Email == "" {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeClientHasNoEmail,
			"client has no email address",
			domainerror.ErrClientHasNoEmail,
		)
	}

	chargeLabel := productName + " (Mens)"
	if input.Kind == entity.ChargeKindImplementation {
		chargeLabel = productName + " (Impl)"
	}

	err = uc.emailService.QueueChargeReminderEmail(ctx, adapter.QueueChargeReminderInput{
		ClientID:    client.ID.String(),
		ClientName:  client.Name,
		ClientEmail: client.Email,
		ProductName: productName,
		ChargeLabel: chargeLabel,
		Amount:      valueobject.FormatCurrency(amount),
		DueDate:     dueDate.Format("02/01/2006"),
		Message:     message,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to queue charge reminder: %w", err)
	}

	return &QueueChargeReminderOutput{Message: message, Queued: true}, nil
}

// reminderMessage renders the payment reminder sent to the client, also
// shared verbatim through WhatsApp.
func reminderMessage(clientName, productName string, amount decimal.Decimal, dueDay int) string {
	return fmt.Sprintf(`Olá %s!

Lembrando que sua mensalidade do %s no valor de %s vence no dia %d deste mês.

Para manter seu acesso ativo, por favor efetue o pagamento até a data de vencimento.

Obrigado!`, clientName, productName, valueobject.FormatCurrency(amount), dueDay)
}
