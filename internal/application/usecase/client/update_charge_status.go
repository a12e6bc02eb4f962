// Package client contains client management use cases.
package client

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// UpdateChargeStatusInput represents the input for updating the stored
// status of one charge on a client's subscription.
type UpdateChargeStatusInput struct {
	UserID    uuid.UUID
	ClientID  uuid.UUID
	ProductID uuid.UUID
	Kind      entity.ChargeKind
	Status    entity.ChargeStatus
}

// UpdateChargeStatusOutput represents the output of a charge status update.
type UpdateChargeStatusOutput struct {
	Client *entity.Client
}

// UpdateChargeStatusUseCase handles marking a subscription charge paid,
// pending, to pay or overdue.
type UpdateChargeStatusUseCase struct {
	clientRepo    adapter.ClientRepository
	overviewCache adapter.OverviewCache
}

// NewUpdateChargeStatusUseCase creates a new UpdateChargeStatusUseCase instance.
func NewUpdateChargeStatusUseCase(clientRepo adapter.ClientRepository, overviewCache adapter.OverviewCache) *UpdateChargeStatusUseCase {
	return &UpdateChargeStatusUseCase{
		clientRepo:    clientRepo,
		overviewCache: overviewCache,
	}
}

// Execute updates the stored status of the referenced charge.
func (uc *UpdateChargeStatusUseCase) Execute(ctx context.Context, input UpdateChargeStatusInput) (*UpdateChargeStatusOutput, error) {
	if !validStatusForKind(input.Kind, input.Status) {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeInvalidChargeStatus,
			fmt.Sprintf("status %q is not valid for %s charges", input.Status, input.Kind),
			domainerror.ErrInvalidChargeStatus,
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

	found := false
	for i := range client.Subscriptions {
		if client.Subscriptions[i].ProductID != input.ProductID {
			continue
		}
		found = true
		switch input.Kind {
		case entity.ChargeKindImplementation:
			client.Subscriptions[i].ImplementationStatus = input.Status
		case entity.ChargeKindMonthly:
			client.Subscriptions[i].MonthlyStatus = input.Status
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

	client.UpdatedAt = time.Now().UTC()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update charge status: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &UpdateChargeStatusOutput{Client: client}, nil
}

// validStatusForKind enforces the status set per charge kind: implementation
// charges move between pending and paid, monthly charges between to_pay,
// paid and overdue.
func validStatusForKind(kind entity.ChargeKind, status entity.ChargeStatus) bool {
	switch kind {
	case entity.ChargeKindImplementation:
		return status == entity.ChargeStatusPending || status == entity.ChargeStatusPaid
	case entity.ChargeKindMonthly:
		return status == entity.ChargeStatusToPay || status == entity.ChargeStatusPaid || status == entity.ChargeStatusOverdue
	default:
		return false
	}
}
