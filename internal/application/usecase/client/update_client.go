// Package client contains client management use cases.
package client

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/domain/valueobject"
)

// UpdateClientInput represents the input for client update. Subscriptions
// replace the stored list; charge statuses of subscriptions kept for the
// same product carry over.
type UpdateClientInput struct {
	UserID        uuid.UUID
	ClientID      uuid.UUID
	Name          string
	Email         string
	WhatsApp      string
	DueDay        int
	Subscriptions []SubscriptionInput
}

// UpdateClientOutput represents the output of client update.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase handles client update logic.
type UpdateClientUseCase struct {
	clientRepo    adapter.ClientRepository
	productRepo   adapter.ProductRepository
	overviewCache adapter.OverviewCache
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	overviewCache adapter.OverviewCache,
) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the client update.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"client name is required",
			domainerror.ErrClientNameRequired,
		)
	}

	if input.DueDay < entity.MinDueDay || input.DueDay > entity.MaxDueDay {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeInvalidDueDay,
			"due day must be between 1 and 31",
			domainerror.ErrInvalidDueDay,
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

	subscriptions, err := uc.mergeSubscriptions(ctx, client, input.Subscriptions)
	if err != nil {
		return nil, err
	}
	if err := requireBillableSubscription(subscriptions); err != nil {
		return nil, err
	}

	client.Name = name
	client.Email = strings.TrimSpace(input.Email)
	client.WhatsApp = valueobject.MaskPhoneBR(input.WhatsApp)
	client.DueDay = input.DueDay
	client.Subscriptions = subscriptions
	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &UpdateClientOutput{Client: client}, nil
}

// mergeSubscriptions validates product references and builds the new
// subscription list, carrying charge statuses over from any existing
// subscription for the same product so a paid charge stays paid.
func (uc *UpdateClientUseCase) mergeSubscriptions(ctx context.Context, client *entity.Client, inputs []SubscriptionInput) ([]entity.ProductSubscription, error) {
	existing := make(map[uuid.UUID]entity.ProductSubscription, len(client.Subscriptions))
	for _, s := range client.Subscriptions {
		existing[s.ProductID] = s
	}

	subscriptions := make([]entity.ProductSubscription, 0, len(inputs))
	for i, in := range inputs {
		if in.ImplementationAmount.IsNegative() || in.MonthlyAmount.IsNegative() {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeMissingClientFields,
				"subscription amounts must not be negative",
				nil,
			)
		}
		if _, err := uc.productRepo.FindByID(ctx, client.UserID, in.ProductID); err != nil {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"subscribed product not found",
				domainerror.ErrProductNotFound,
			)
		}

		implementationStatus := entity.ChargeStatusPending
		monthlyStatus := entity.ChargeStatusToPay
		if prev, ok := existing[in.ProductID]; ok {
			implementationStatus = prev.ImplementationStatus
			monthlyStatus = prev.MonthlyStatus
		}

		subscriptions = append(subscriptions, entity.ProductSubscription{
			ProductID:            in.ProductID,
			ImplementationAmount: in.ImplementationAmount,
			MonthlyAmount:        in.MonthlyAmount,
			ImplementationStatus: implementationStatus,
			MonthlyStatus:        monthlyStatus,
			Position:             i,
		})
	}
	return subscriptions, nil
}
