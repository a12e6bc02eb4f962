// Package client contains client management use cases.
package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	UserID   uuid.UUID
	ClientID uuid.UUID
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Success bool
}

// DeleteClientUseCase handles client deletion logic.
type DeleteClientUseCase struct {
	clientRepo    adapter.ClientRepository
	overviewCache adapter.OverviewCache
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository, overviewCache adapter.OverviewCache) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo:    clientRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the client deletion along with its subscriptions.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	if _, err := uc.clientRepo.FindByID(ctx, input.UserID, input.ClientID); err != nil {
		return nil, domainerror.NewClientError(
			domainerror.ErrCodeClientNotFound,
			"client not found",
			domainerror.ErrClientNotFound,
		)
	}

	if err := uc.clientRepo.Delete(ctx, input.UserID, input.ClientID); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &DeleteClientOutput{Success: true}, nil
}
