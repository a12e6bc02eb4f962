// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// CreateProductRequest represents the request body for product creation.
type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	Description       string  `json:"description" binding:"max=500"`
	ImplementationFee float64 `json:"implementation_fee" binding:"min=0"`
	MonthlyFee        float64 `json:"monthly_fee" binding:"min=0"`
}

// UpdateProductRequest represents the request body for product update.
type UpdateProductRequest struct {
	Name              string  `json:"name" binding:"required,min=1,max=100"`
	Description       string  `json:"description" binding:"max=500"`
	ImplementationFee float64 `json:"implementation_fee" binding:"min=0"`
	MonthlyFee        float64 `json:"monthly_fee" binding:"min=0"`
}

// ProductResponse represents a product in API responses. Fee amounts are
// serialized as strings to avoid float rounding.
type ProductResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Description       string    `json:"description"`
	ImplementationFee string    `json:"implementation_fee"`
	MonthlyFee        string    `json:"monthly_fee"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// ProductListResponse represents the response for listing products.
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
}

// ToProductResponse converts a domain Product entity to a ProductResponse DTO.
func ToProductResponse(product *entity.Product) ProductResponse {
	return ProductResponse{
		ID:                product.ID.String(),
		Name:              product.Name,
		Description:       product.Description,
		ImplementationFee: product.ImplementationFee.String(),
		MonthlyFee:        product.MonthlyFee.String(),
		CreatedAt:         product.CreatedAt,
		UpdatedAt:         product.UpdatedAt,
	}
}

// ToProductListResponse converts a slice of products to a list response.
func ToProductListResponse(products []*entity.Product) ProductListResponse {
	resp := ProductListResponse{Products: make([]ProductResponse, 0, len(products))}
	for _, p := range products {
		resp.Products = append(resp.Products, ToProductResponse(p))
	}
	return resp
}
