// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client persistence operations.
// Implementations load and save a client together with its product
// subscriptions, preserving subscription order.
type ClientRepository interface {
	// Create creates a new client with its subscriptions.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by ID, scoped to the owning user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error)

	// FindByUserID retrieves all clients for a user, ordered by name.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error)

	// Update updates a client and replaces its subscriptions.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client and its subscriptions.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// CountByProductID counts clients of a user subscribed to a product.
	CountByProductID(ctx context.Context, userID, productID uuid.UUID) (int64, error)
}
