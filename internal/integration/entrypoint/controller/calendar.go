// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/usecase/calendar"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/entrypoint/dto"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// CalendarController handles calendar endpoints.
type CalendarController struct {
	listUseCase   *calendar.ListEntriesUseCase
	addUseCase    *calendar.AddEntryUseCase
	deleteUseCase *calendar.DeleteEntryUseCase
}

// NewCalendarController creates a new calendar controller instance.
func NewCalendarController(
	listUseCase *calendar.ListEntriesUseCase,
	addUseCase *calendar.AddEntryUseCase,
	deleteUseCase *calendar.DeleteEntryUseCase,
) *CalendarController {
	return &CalendarController{
		listUseCase:   listUseCase,
		addUseCase:    addUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /calendar requests. An optional date query parameter
// ("YYYY-MM-DD") filters entries to one day.
func (c *CalendarController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := calendar.ListEntriesInput{
		UserID: userID,
		Date:   ctx.Query("date"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToCalendarEntryListResponse(output.Entries))
}

// Add handles POST /calendar requests.
func (c *CalendarController) Add(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.AddCalendarEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeCalendarTitleRequired),
		})
		return
	}

	input := calendar.AddEntryInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Date:        req.Date,
	}

	output, err := c.addUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	resp := dto.AddCalendarEntryResponse{
		Entry: dto.ToCalendarEntryResponse(output.Entry),
	}
	if output.Task != nil {
		taskResp := dto.ToTaskResponse(output.Task)
		resp.Task = &taskResp
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Delete handles DELETE /calendar/:id requests.
func (c *CalendarController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid entry ID",
			Code:  string(domainerror.ErrCodeCalendarEntryNotFound),
		})
		return
	}

	input := calendar.DeleteEntryInput{
		UserID:  userID,
		EntryID: entryID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleCalendarError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleCalendarError handles calendar errors and returns appropriate HTTP responses.
func (c *CalendarController) handleCalendarError(ctx *gin.Context, err error) {
	var calendarErr *domainerror.CalendarError
	if errors.As(err, &calendarErr) {
		ctx.JSON(c.getStatusCodeForCalendarError(calendarErr.Code), dto.ErrorResponse{
			Error: calendarErr.Message,
			Code:  string(calendarErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForCalendarError maps calendar error codes to HTTP status codes.
func (c *CalendarController) getStatusCodeForCalendarError(code domainerror.CalendarErrorCode) int {
	switch code {
	case domainerror.ErrCodeCalendarTitleRequired,
		domainerror.ErrCodeInvalidCalendarDate:
		return http.StatusBadRequest
	case domainerror.ErrCodeCalendarEntryNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
