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

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// preloadSubscriptions loads subscriptions in their stored form order.
func preloadSubscriptions(db *gorm.DB) *gorm.DB {
	return db.Order("position ASC")
}

// Create creates a new client with its subscriptions.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	result := r.db.WithContext(ctx).Create(clientModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a client by ID, scoped to the owning user.
func (r *clientRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).
		Preload("Subscriptions", preloadSubscriptions).
		Where("id = ? AND user_id = ?", id, userID).
		First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindByUserID retrieves all clients for a user, ordered by name.
func (r *clientRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Client, error) {
	var clientModels []model.ClientModel
	result := r.db.WithContext(ctx).
		Preload("Subscriptions", preloadSubscriptions).
		Where("user_id = ?", userID).
		Order("name ASC").
		Find(&clientModels)
	if result.Error != nil {
		return nil, result.Error
	}

	clients := make([]*entity.Client, len(clientModels))
	for i, cm := range clientModels {
		clients[i] = cm.ToEntity()
	}
	return clients, nil
}

// Update updates a client and replaces its subscriptions in one transaction.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	clientModel := model.ClientFromEntity(client)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", client.ID).
			Delete(&model.ClientSubscriptionModel{}).Error; err != nil {
			return err
		}
		if err := tx.Model(&model.ClientModel{}).
			Where("id = ? AND user_id = ?", client.ID, client.UserID).
			Updates(map[string]interface{}{
				"name":       clientModel.Name,
				"email":      clientModel.Email,
				"whats_app":  clientModel.WhatsApp,
				"due_day":    clientModel.DueDay,
				"updated_at": clientModel.UpdatedAt,
			}).Error; err != nil {
			return err
		}
		if len(clientModel.Subscriptions) > 0 {
			if err := tx.Create(&clientModel.Subscriptions).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes a client; its subscriptions cascade.
func (r *clientRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("client_id = ?", id).
			Delete(&model.ClientSubscriptionModel{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", id, userID).
			Delete(&model.ClientModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return domainerror.ErrClientNotFound
		}
		return nil
	})
}

// CountByProductID counts clients of a user subscribed to a product.
func (r *clientRepository) CountByProductID(ctx context.Context, userID, productID uuid.UUID) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.ClientSubscriptionModel{}).
		Joins("JOIN clients ON clients.id = client_subscriptions.client_id").
		Where("clients.user_id = ? AND client_subscriptions.product_id = ?", userID, productID).
		Distinct("client_subscriptions.client_id").
		Count(&count)
	if result.Error != nil {
		return 0, result.Error
	}
	return count, nil
}
