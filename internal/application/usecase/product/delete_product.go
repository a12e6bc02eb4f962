// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// DeleteProductInput represents the input for product deletion.
type DeleteProductInput struct {
	UserID    uuid.UUID
	ProductID uuid.UUID
}

// DeleteProductOutput represents the output of product deletion.
type DeleteProductOutput struct {
	Success bool
}

// DeleteProductUseCase handles product deletion logic. A product referenced
// by any client subscription cannot be deleted.
type DeleteProductUseCase struct {
	productRepo   adapter.ProductRepository
	clientRepo    adapter.ClientRepository
	overviewCache adapter.OverviewCache
}

// NewDeleteProductUseCase creates a new DeleteProductUseCase instance.
func NewDeleteProductUseCase(
	productRepo adapter.ProductRepository,
	clientRepo adapter.ClientRepository,
	overviewCache adapter.OverviewCache,
) *DeleteProductUseCase {
	return &DeleteProductUseCase{
		productRepo:   productRepo,
		clientRepo:    clientRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the product deletion.
func (uc *DeleteProductUseCase) Execute(ctx context.Context, input DeleteProductInput) (*DeleteProductOutput, error) {
	if _, err := uc.productRepo.FindByID(ctx, input.UserID, input.ProductID); err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	count, err := uc.clientRepo.CountByProductID(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, fmt.Errorf("failed to count product subscriptions: %w", err)
	}
	if count > 0 {
		return nil, domainerror.NewProductInUseError(
			fmt.Sprintf("product is in use by %d client(s)", count),
			int(count),
		)
	}

	if err := uc.productRepo.Delete(ctx, input.UserID, input.ProductID); err != nil {
		return nil, fmt.Errorf("failed to delete product: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &DeleteProductOutput{Success: true}, nil
}
