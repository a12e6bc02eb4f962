// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/persistence/model"
)

// productRepository implements the adapter.ProductRepository interface.
type productRepository struct {
	db *gorm.DB
}

// NewProductRepository creates a new product repository instance.
func NewProductRepository(db *gorm.DB) adapter.ProductRepository {
	return &productRepository{
		db: db,
	}
}

// Create creates a new product in the database.
func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).Create(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a product by ID, scoped to the owning user.
func (r *productRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Product, error) {
	var productModel model.ProductModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&productModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProductNotFound
		}
		return nil, result.Error
	}
	return productModel.ToEntity(), nil
}

// FindByUserID retrieves all products for a user, ordered by name.
func (r *productRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Product, error) {
	var productModels []model.ProductModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&productModels)
	if result.Error != nil {
		return nil, result.Error
	}

	products := make([]*entity.Product, len(productModels))
	for i, pm := range productModels {
		products[i] = pm.ToEntity()
	}
	return products, nil
}

// Update updates an existing product.
func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	productModel := model.ProductFromEntity(product)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", product.ID, product.UserID).
		Save(productModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a product from the database.
func (r *productRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.ProductModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProductNotFound
	}
	return nil
}

// ExistsByName checks if the user already has a product with the given name.
func (r *productRepository) ExistsByName(ctx context.Context, userID uuid.UUID, name string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count)
	if result.Error != nil {
		return false, result.Error
	}
	return count > 0, nil
}
