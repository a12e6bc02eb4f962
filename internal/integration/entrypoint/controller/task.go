// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/usecase/task"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/entrypoint/dto"
	"github.com/business-manager/backend/internal/integration/entrypoint/middleware"
)

// TaskController handles task board endpoints.
type TaskController struct {
	listUseCase   *task.ListTasksUseCase
	createUseCase *task.CreateTaskUseCase
	updateUseCase *task.UpdateTaskUseCase
	moveUseCase   *task.MoveTaskUseCase
	deleteUseCase *task.DeleteTaskUseCase
}

// NewTaskController creates a new task controller instance.
func NewTaskController(
	listUseCase *task.ListTasksUseCase,
	createUseCase *task.CreateTaskUseCase,
	updateUseCase *task.UpdateTaskUseCase,
	moveUseCase *task.MoveTaskUseCase,
	deleteUseCase *task.DeleteTaskUseCase,
) *TaskController {
	return &TaskController{
		listUseCase:   listUseCase,
		createUseCase: createUseCase,
		updateUseCase: updateUseCase,
		moveUseCase:   moveUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// List handles GET /tasks requests, returning the board grouped by column.
func (c *TaskController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), task.ListTasksInput{UserID: userID})
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskBoardResponse(output.Todo, output.InProgress, output.Completed))
}

// Create handles POST /tasks requests.
func (c *TaskController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTaskTitleRequired),
		})
		return
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date",
			Code:  string(domainerror.ErrCodeTaskTitleRequired),
		})
		return
	}

	input := task.CreateTaskInput{
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
		DueDate:     dueDate,
		DaysOfWeek:  req.DaysOfWeek,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTaskResponse(output.Task))
}

// Update handles PUT /tasks/:id requests.
func (c *TaskController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID",
			Code:  string(domainerror.ErrCodeTaskNotFound),
		})
		return
	}

	var req dto.UpdateTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeTaskTitleRequired),
		})
		return
	}

	dueDate, err := parseOptionalDate(req.DueDate)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid due date",
			Code:  string(domainerror.ErrCodeTaskTitleRequired),
		})
		return
	}

	input := task.UpdateTaskInput{
		UserID:      userID,
		TaskID:      taskID,
		Title:       req.Title,
		Description: req.Description,
		Status:      entity.TaskStatus(req.Status),
		DueDate:     dueDate,
		DaysOfWeek:  req.DaysOfWeek,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Move handles PATCH /tasks/:id/move requests.
func (c *TaskController) Move(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID",
			Code:  string(domainerror.ErrCodeTaskNotFound),
		})
		return
	}

	var req dto.MoveTaskRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidTaskStatus),
		})
		return
	}

	input := task.MoveTaskInput{
		UserID: userID,
		TaskID: taskID,
		Status: entity.TaskStatus(req.Status),
	}

	output, err := c.moveUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTaskResponse(output.Task))
}

// Delete handles DELETE /tasks/:id requests.
func (c *TaskController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	taskID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid task ID",
			Code:  string(domainerror.ErrCodeTaskNotFound),
		})
		return
	}

	input := task.DeleteTaskInput{
		UserID: userID,
		TaskID: taskID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTaskError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseOptionalDate parses a "YYYY-MM-DD" string, returning nil when empty.
func parseOptionalDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// handleTaskError handles task errors and returns appropriate HTTP responses.
func (c *TaskController) handleTaskError(ctx *gin.Context, err error) {
	var taskErr *domainerror.TaskError
	if errors.As(err, &taskErr) {
		ctx.JSON(c.getStatusCodeForTaskError(taskErr.Code), dto.ErrorResponse{
			Error: taskErr.Message,
			Code:  string(taskErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTaskError maps task error codes to HTTP status codes.
func (c *TaskController) getStatusCodeForTaskError(code domainerror.TaskErrorCode) int {
	switch code {
	case domainerror.ErrCodeTaskTitleRequired,
		domainerror.ErrCodeInvalidTaskStatus:
		return http.StatusBadRequest
	case domainerror.ErrCodeTaskNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeNotAuthorizedTask:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
