// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/usecase/product"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/entrypoint/dto"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	listUseCase   *product.ListProductsUseCase
	createUseCase *product.CreateProductUseCase
	updateUseCase *product.UpdateProductUseCase
	deleteUseCase *product.DeleteProductUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), product.ListProductsInput{UserID: userID})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Create handles POST /products requests.
func (c *ProductController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeProductNameRequired),
		})
		return
	}

	input := product.CreateProductInput{
		UserID:            userID,
		Name:              req.Name,
		Description:       req.Description,
		ImplementationFee: decimal.NewFromFloat(req.ImplementationFee),
		MonthlyFee:        decimal.NewFromFloat(req.MonthlyFee),
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PUT /products/:id requests.
func (c *ProductController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeProductNotFound),
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeProductNameRequired),
		})
		return
	}

	input := product.UpdateProductInput{
		UserID:            userID,
		ProductID:         productID,
		Name:              req.Name,
		Description:       req.Description,
		ImplementationFee: decimal.NewFromFloat(req.ImplementationFee),
		MonthlyFee:        decimal.NewFromFloat(req.MonthlyFee),
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests.
func (c *ProductController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	productID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeProductNotFound),
		})
		return
	}

	input := product.DeleteProductInput{
		UserID:    userID,
		ProductID: productID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		ctx.JSON(c.getStatusCodeForProductError(productErr.Code), dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func (c *ProductController) getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeProductNameRequired,
		domainerror.ErrCodeInvalidProductFee:
		return http.StatusBadRequest
	case domainerror.ErrCodeProductNameTaken,
		domainerror.ErrCodeProductInUse:
		return http.StatusConflict
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedProduct:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
