// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/usecase/billing"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/entrypoint/dto"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// BillingController handles billing overview and charge endpoints.
type BillingController struct {
	overviewUseCase *billing.GetOverviewUseCase
	chargesUseCase  *billing.ListMonthlyChargesUseCase
	reminderUseCase *billing.QueueChargeReminderUseCase
}

// NewBillingController creates a new billing controller instance.
func NewBillingController(
	overviewUseCase *billing.GetOverviewUseCase,
	chargesUseCase *billing.ListMonthlyChargesUseCase,
	reminderUseCase *billing.QueueChargeReminderUseCase,
) *BillingController {
	return &BillingController{
		overviewUseCase: overviewUseCase,
		chargesUseCase:  chargesUseCase,
		reminderUseCase: reminderUseCase,
	}
}

// Overview handles GET /billing/overview requests. The month and year
// query parameters default to the current period.
func (c *BillingController) Overview(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month, year := parsePeriod(ctx)
	input := billing.GetOverviewInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	output, err := c.overviewUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToOverviewResponse(output.Summary))
}

// MonthlyCharges handles GET /billing/charges requests.
func (c *BillingController) MonthlyCharges(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	month, year := parsePeriod(ctx)
	input := billing.ListMonthlyChargesInput{
		UserID: userID,
		Month:  month,
		Year:   year,
	}

	output, err := c.chargesUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToMonthlyChargeListResponse(output.Charges))
}

// QueueReminder handles POST /billing/reminders requests.
func (c *BillingController) QueueReminder(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.QueueChargeReminderRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingChargeRef),
		})
		return
	}

	clientID, err := uuid.Parse(req.ClientID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid client ID",
			Code:  string(domainerror.ErrCodeMissingChargeRef),
		})
		return
	}
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product ID",
			Code:  string(domainerror.ErrCodeMissingChargeRef),
		})
		return
	}

	input := billing.QueueChargeReminderInput{
		UserID:    userID,
		ClientID:  clientID,
		ProductID: productID,
		Kind:      entity.ChargeKind(req.Kind),
		Month:     time.Month(req.Month),
		Year:      req.Year,
	}

	output, err := c.reminderUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleBillingError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ChargeReminderResponse{
		Message: output.Message,
		Queued:  output.Queued,
	})
}

// parsePeriod reads the month and year query parameters, defaulting to the
// current UTC period.
func parsePeriod(ctx *gin.Context) (time.Month, int) {
	now := time.Now().UTC()
	month, year := now.Month(), now.Year()
	if monthStr := ctx.Query("month"); monthStr != "" {
		if m, err := strconv.Atoi(monthStr); err == nil {
			month = time.Month(m)
		}
	}
	if yearStr := ctx.Query("year"); yearStr != "" {
		if y, err := strconv.Atoi(yearStr); err == nil {
			year = y
		}
	}
	return month, year
}

// handleBillingError handles billing errors and returns appropriate HTTP responses.
func (c *BillingController) handleBillingError(ctx *gin.Context, err error) {
	var billingErr *domainerror.BillingError
	if errors.As(err, &billingErr) {
		status := http.StatusBadRequest
		if billingErr.Code == domainerror.ErrCodeClientHasNoEmail {
			status = http.StatusUnprocessableEntity
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: billingErr.Message,
			Code:  string(billingErr.Code),
		})
		return
	}

	// Reminder lookups surface client errors.
	var clientErr *domainerror.ClientError
	if errors.As(err, &clientErr) {
		status := http.StatusNotFound
		if clientErr.Code == domainerror.ErrCodeNotAuthorizedClient {
			status = http.StatusForbidden
		}
		ctx.JSON(status, dto.ErrorResponse{
			Error: clientErr.Message,
			Code:  string(clientErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}
