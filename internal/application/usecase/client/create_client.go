// Package client contains client management use cases.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/domain/valueobject"
)

// SubscriptionInput describes one contracted product in a create or update
// request. Amounts are the contract values, which may differ from the
// product's list price.
type SubscriptionInput struct {
	ProductID            uuid.UUID
	ImplementationAmount decimal.Decimal
	MonthlyAmount        decimal.Decimal
}

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	UserID        uuid.UUID
	Name          string
	Email         string
	WhatsApp      string
	DueDay        int
	Subscriptions []SubscriptionInput
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo    adapter.ClientRepository
	productRepo   adapter.ProductRepository
	overviewCache adapter.OverviewCache
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(
	clientRepo adapter.ClientRepository,
	productRepo adapter.ProductRepository,
	overviewCache adapter.OverviewCache,
) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo:    clientRepo,
		productRepo:   productRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the client creation. New subscriptions start with the
// implementation charge pending and the monthly charge to pay.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
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

	subscriptions, err := uc.buildSubscriptions(ctx, input.UserID, input.Subscriptions)
	if err != nil {
		return nil, err
	}
	if err := requireBillableSubscription(subscriptions); err != nil {
		return nil, err
	}

	client := entity.NewClient(input.UserID, name, strings.TrimSpace(input.Email), valueobject.MaskPhoneBR(input.WhatsApp), input.DueDay, subscriptions)

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &CreateClientOutput{Client: client}, nil
}

// buildSubscriptions validates product references and assigns the default
// charge statuses and stable positions.
func (uc *CreateClientUseCase) buildSubscriptions(ctx context.Context, userID uuid.UUID, inputs []SubscriptionInput) ([]entity.ProductSubscription, error) {
	subscriptions := make([]entity.ProductSubscription, 0, len(inputs))
	for i, in := range inputs {
		if in.ImplementationAmount.IsNegative() || in.MonthlyAmount.IsNegative() {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeMissingClientFields,
				"subscription amounts must not be negative",
				nil,
			)
		}
		if _, err := uc.productRepo.FindByID(ctx, userID, in.ProductID); err != nil {
			return nil, domainerror.NewProductError(
				domainerror.ErrCodeProductNotFound,
				"subscribed product not found",
				domainerror.ErrProductNotFound,
			)
		}
		subscriptions = append(subscriptions, entity.ProductSubscription{
			ProductID:            in.ProductID,
			ImplementationAmount: in.ImplementationAmount,
			MonthlyAmount:        in.MonthlyAmount,
			ImplementationStatus: entity.ChargeStatusPending,
			MonthlyStatus:        entity.ChargeStatusToPay,
			Position:             i,
		})
	}
	return subscriptions, nil
}

// requireBillableSubscription rejects clients whose subscriptions carry no
// positive amount at all; such a client would never produce a charge.
func requireBillableSubscription(subscriptions []entity.ProductSubscription) error {
	for _, s := range subscriptions {
		if s.ImplementationAmount.IsPositive() || s.MonthlyAmount.IsPositive() {
			return nil
		}
	}
	return domainerror.NewClientError(
		domainerror.ErrCodeNoBillableSubscription,
		"at least one subscription must have a positive amount",
		domainerror.ErrNoBillableSubscription,
	)
}

// invalidateOverview drops the user's cached billing overviews after a write.
// Cache errors are logged and swallowed; the write already succeeded.
func invalidateOverview(ctx context.Context, cache adapter.OverviewCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate overview cache", "error", err, "userID", userID)
	}
}
