// Package product contains product catalog use cases.
package product

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// UpdateProductInput represents the input for product update.
type UpdateProductInput struct {
	UserID            uuid.UUID
	ProductID         uuid.UUID
	Name              string
	Description       string
	ImplementationFee decimal.Decimal
	MonthlyFee        decimal.Decimal
}

// UpdateProductOutput represents the output of product update.
type UpdateProductOutput struct {
	Product *entity.Product
}

// UpdateProductUseCase handles product update logic.
type UpdateProductUseCase struct {
	productRepo   adapter.ProductRepository
	overviewCache adapter.OverviewCache
}

// NewUpdateProductUseCase creates a new UpdateProductUseCase instance.
func NewUpdateProductUseCase(productRepo adapter.ProductRepository, overviewCache adapter.OverviewCache) *UpdateProductUseCase {
	return &UpdateProductUseCase{
		productRepo:   productRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the product update.
func (uc *UpdateProductUseCase) Execute(ctx context.Context, input UpdateProductInput) (*UpdateProductOutput, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameRequired,
			"product name is required",
			domainerror.ErrProductNameRequired,
		)
	}

	if input.ImplementationFee.IsNegative() || input.MonthlyFee.IsNegative() {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeInvalidProductFee,
			"product fees must not be negative",
			nil,
		)
	}

	product, err := uc.productRepo.FindByID(ctx, input.UserID, input.ProductID)
	if err != nil {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNotFound,
			"product not found",
			domainerror.ErrProductNotFound,
		)
	}

	product.Name = name
	product.Description = strings.TrimSpace(input.Description)
	product.ImplementationFee = input.ImplementationFee
	product.MonthlyFee = input.MonthlyFee
	product.UpdatedAt = time.Now().UTC()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &UpdateProductOutput{Product: product}, nil
}
