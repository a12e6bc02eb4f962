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

// UpdateTaskInput represents the input for task update.
type UpdateTaskInput struct {
	UserID      uuid.UUID
	TaskID      uuid.UUID
	Title       string
	Description string
	Status      entity.TaskStatus
	DueDate     *time.Time
	DaysOfWeek  []string
}

// UpdateTaskOutput represents the output of task update.
type UpdateTaskOutput struct {
	Task *entity.Task
}

// UpdateTaskUseCase handles task update logic.
type UpdateTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewUpdateTaskUseCase creates a new UpdateTaskUseCase instance.
func NewUpdateTaskUseCase(taskRepo adapter.TaskRepository) *UpdateTaskUseCase {
	return &UpdateTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task update.
func (uc *UpdateTaskUseCase) Execute(ctx context.Context, input UpdateTaskInput) (*UpdateTaskOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskTitleRequired,
			"task title is required",
			domainerror.ErrTaskTitleRequired,
		)
	}
	if !entity.IsValidTaskStatus(input.Status) {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeInvalidTaskStatus,
			fmt.Sprintf("unknown task status %q", input.Status),
			domainerror.ErrInvalidTaskStatus,
		)
	}

	task, err := uc.taskRepo.FindByID(ctx, input.UserID, input.TaskID)
	if err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	task.Title = title
	task.Description = strings.TrimSpace(input.Description)
	task.Status = input.Status
	task.DueDate = input.DueDate
	task.DaysOfWeek = input.DaysOfWeek
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	return &UpdateTaskOutput{Task: task}, nil
}
