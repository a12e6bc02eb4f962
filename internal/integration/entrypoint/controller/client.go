// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/usecase/client"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/entrypoint/dto"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// ClientController handles client endpoints.
type ClientController struct {
	listUseCase         *client.ListClientsUseCase
	createUseCase       *client.CreateClientUseCase
	updateUseCase       *client.UpdateClientUseCase
	deleteUseCase       *client.DeleteClientUseCase
	chargeStatusUseCase *client.UpdateChargeStatusUseCase
}

// NewClientController creates a new client controller instance.
func NewClientController(
	listUseCase *client.ListClientsUseCase,
	createUseCase *client.CreateClientUseCase,
	updateUseCase *client.UpdateClientUseCase,
	deleteUseCase *client.DeleteClientUseCase,
	chargeStatusUseCase *client.UpdateChargeStatusUseCase,
) *ClientController {
	return &ClientController{
		listUseCase:         listUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		chargeStatusUseCase: chargeStatusUseCase,
	}
}

// List handles GET /clients requests.
func (c *ClientController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), client.ListClientsInput{UserID: userID})
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientListResponse(output.Clients))
}

// Create handles POST /clients requests.
func (c *ClientController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	subs, err := toSubscriptionInputs(req.Subscriptions)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription product ID",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	input := client.CreateClientInput{
		UserID:        userID,
		Name:          req.Name,
		Email:         req.Email,
		WhatsApp:      req.WhatsApp,
		DueDay:        req.DueDay,
		Subscriptions: subs,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToClientResponse(output.Client))
}

// Update handles PUT /clients/:id requests.
func (c *ClientController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	var req dto.UpdateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	subs, err := toSubscriptionInputs(req.Subscriptions)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid subscription product ID",
			Code:  string(domainerror.ErrCodeMissingClientFields),
		})
		return
	}

	input := client.UpdateClientInput{
		UserID:        userID,
		ClientID:      clientID,
		Name:          req.Name,
		Email:         req.Email,
		WhatsApp:      req.WhatsApp,
		DueDay:        req.DueDay,
		Subscriptions: subs,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// Delete handles DELETE /clients/:id requests.
func (c *ClientController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	input := client.DeleteClientInput{
		UserID:   userID,
		ClientID: clientID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// UpdateChargeStatus handles PATCH /clients/:id/charge-status requests.
func (c *ClientController) UpdateChargeStatus(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	clientID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeClientNotFound),
		})
		return
	}

	var req dto.UpdateChargeStatusRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidChargeStatus),
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeSubscriptionNotFound),
		})
		return
	}

	input := client.UpdateChargeStatusInput{
		UserID:    userID,
		ClientID:  clientID,
		ProductID: productID,
		Kind:      entity.ChargeKind(req.Kind),
		Status:    entity.ChargeStatus(req.Status),
	}

	output, err := c.chargeStatusUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleClientError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToClientResponse(output.Client))
}

// toSubscriptionInputs converts subscription request DTOs to use case inputs.
func toSubscriptionInputs(reqs []dto.SubscriptionRequest) ([]client.SubscriptionInput, error) {
	subs := make([]client.SubscriptionInput, 0, len(reqs))
	for _, r := range reqs {
		productID, err := uuid.Parse(r.ProductID)
		if err != nil {
			return nil, err
		}
		subs = append(subs, client.SubscriptionInput{
			ProductID:            productID,
			ImplementationAmount: decimal.NewFromFloat(r.ImplementationAmount),
			MonthlyAmount:        decimal.NewFromFloat(r.MonthlyAmount),
		})
	}
	return subs, nil
}

// handleClientError handles client errors and returns appropriate HTTP responses.
func (c *ClientController) handleClientError(ctx *gin.Context, err error) {
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		ctx.JSON(c.getStatusCodeForClientError(clientErr.Code), dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	// Subscription validation can surface product errors.
	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		status := http.StatusBadRequest
		if productErr.Code == domainerror.ErrCodeProductNotFound {
			status = http.StatusNotFound
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForClientError maps client error codes to HTTP status codes.
func (c *ClientController) getStatusCodeForClientError(code domainerror.ClientErrorCode) int {
	switch code {
	case domainerror.ErrCodeClientNameRequired,
		domainerror.ErrCodeInvalidDueDay,
		domainerror.ErrCodeNoBillableSubscription,
		domainerror.ErrCodeInvalidChargeStatus,
		domainerror.ErrCodeMissingClientFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeClientNotFound,
		domainerror.ErrCodeSubscriptionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedClient:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
