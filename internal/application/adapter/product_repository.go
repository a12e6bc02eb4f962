// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// ProductRepository defines the interface for product persistence operations.
type ProductRepository interface {
	// Create creates a new product in the database.
	Create(ctx context.Context, product *entity.Product) error

	// FindByID retrieves a product by ID, scoped to the owning user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error)

	// FindByUserID retrieves all products for a user, ordered by name.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error)

	// Update updates an existing product.
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error

	// ExistsByName checks if the user already has a product with the given name.
	ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error)
}
