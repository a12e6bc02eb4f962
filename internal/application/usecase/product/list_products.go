// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
)

// ListProductsInput represents the input for listing products.
type ListProductsInput struct {
	UserID uuid.UUID
}

// ListProductsOutput represents the output of listing products.
type ListProductsOutput struct {
	Products []*entity.Product
}

// ListProductsUseCase handles listing a user's products.
type ListProductsUseCase struct {
	productRepo adapter.ProductRepository
}

// NewListProductsUseCase creates a new ListProductsUseCase instance.
func NewListProductsUseCase(productRepo adapter.ProductRepository) *ListProductsUseCase {
	return &ListProductsUseCase{productRepo: productRepo}
}

// Execute lists the user's products ordered by name.
func (uc *ListProductsUseCase) Execute(ctx context.Context, input ListProductsInput) (*ListProductsOutput, error) {
	products, err := uc.productRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	return &ListProductsOutput{Products: products}, nil
}
