// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
)

// ProductModel represents the products table in the database.
type ProductModel struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	Name              string          `gorm:"type:varchar(100);not null"`
	Description       string          `gorm:"type:text"`
	ImplementationFee decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MonthlyFee        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	CreatedAt         time.Time       `gorm:"not null"`
	UpdatedAt         time.Time       `gorm:"not null"`
}

// TableName returns the table name for the ProductModel.
func (ProductModel) TableName() string {
	return "products"
}

// ToEntity converts a ProductModel to a domain Product entity.
func (m *ProductModel) ToEntity() *entity.Product {
	return &entity.Product{
		ID:                m.ID,
		UserID:            m.UserID,
		Name:              m.Name,
		Description:       m.Description,
		ImplementationFee: m.ImplementationFee,
		MonthlyFee:        m.MonthlyFee,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

// ProductFromEntity creates a ProductModel from a domain Product entity.
func ProductFromEntity(product *entity.Product) *ProductModel {
	return &ProductModel{
		ID:                product.ID,
		UserID:            product.UserID,
		Name:              product.Name,
		Description:       product.Description,
		ImplementationFee: product.ImplementationFee,
		MonthlyFee:        product.MonthlyFee,
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}
