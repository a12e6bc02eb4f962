// Package task contains task board use cases.
package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// CreateTaskInput represents the input for task creation.
type CreateTaskInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Status      entity.TaskStatus
	DueDate     *time.Time
	DaysOfWeek  []string
}

// CreateTaskOutput represents the output of task creation.
type CreateTaskOutput struct {
	Task *entity.Task
}

// CreateTaskUseCase handles task creation logic.
type CreateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewCreateTaskUseCase creates a new CreateTaskUseCase instance.
func NewCreateTaskUseCase(taskRepo adapter.TaskRepository) *CreateTaskUseCase {
	return &CreateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task creation. An empty status defaults to todo.
func (uc *CreateTaskUseCase) Execute(ctx context.Context, input CreateTaskInput) (*CreateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskTitleRequired,
			"task title is required",
			domainerror.ErrTaskTitleRequired,
		)
	}

	status := input.Status
	if status == "" {
		status = entity.TaskStatusTodo
	}
	if !entity.IsValidTaskStatus(status) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskStatus,
			fmt.Sprintf("unknown task status %q", status),
			domainerror.ErrInvalidTaskStatus,
		)
	}

	task := entity.NewTask(input.UserID, title, strings.TrimSpace(input.Description), status, input.DueDate, input.DaysOfWeek)

	if err := uc.taskRepo.Create(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	return &CreateTaskOutput{Task: task}, nil
}
