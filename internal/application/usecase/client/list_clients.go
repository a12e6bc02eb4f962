// Package client contains client management use cases.
package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
)

// ListClientsInput represents the input for listing clients.
type ListClientsInput struct {
	UserID uuid.UUID
}

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase handles listing a user's clients.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{clientRepo: clientRepo}
}

// Execute lists the user's clients with their subscriptions.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return &ListClientsOutput{Clients: clients}, nil
}
