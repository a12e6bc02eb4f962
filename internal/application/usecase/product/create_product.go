// Package product contains product catalog use cases.
package product

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
)

// CreateProductInput represents the input for product creation.
type CreateProductInput struct {
	UserID            uuid.UUID
	Name              string
	Description       string
	ImplementationFee decimal.Decimal
	MonthlyFee        decimal.Decimal
}

// CreateProductOutput represents the output of product creation.
type CreateProductOutput struct {
	Product *entity.Product
}

// CreateProductUseCase handles product creation logic.
type CreateProductUseCase struct {
	productRepo   adapter.ProductRepository
	overviewCache adapter.OverviewCache
}

// NewCreateProductUseCase creates a new CreateProductUseCase instance.
func NewCreateProductUseCase(productRepo adapter.ProductRepository, overviewCache adapter.OverviewCache) *CreateProductUseCase {
	return &CreateProductUseCase{
		productRepo:   productRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the product creation.
func (uc *CreateProductUseCase) Execute(ctx context.Context, input CreateProductInput) (*CreateProductOutput, error) {
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

	exists, err := uc.productRepo.ExistsByName(ctx, input.UserID, name)
	if err != nil {
		return nil, fmt.Errorf("failed to check product name: %w", err)
	}
	if exists {
		return nil, domainerror.NewProductError(
			domainerror.ErrCodeProductNameTaken,
			"a product with this name already exists",
			domainerror.ErrProductNameTaken,
		)
	}

	product := entity.NewProduct(input.UserID, name, strings.TrimSpace(input.Description), input.ImplementationFee, input.MonthlyFee)

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &CreateProductOutput{Product: product}, nil
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
