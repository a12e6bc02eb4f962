// Package task contains task board use cases.
package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// MoveTaskInput represents the input for moving a task between board columns.
type MoveTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
	Status entity.TaskStatus
}

// MoveTaskOutput represents the output of moving a task.
type MoveTaskOutput struct {
	Task *entity.Task
}

// MoveTaskUseCase handles moving a task to another board column.
type MoveTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewMoveTaskUseCase creates a new MoveTaskUseCase instance.
func NewMoveTaskUseCase(taskRepo adapter.TaskRepository) *MoveTaskUseCase {
	return &MoveTaskUseCase{taskRepo: taskRepo}
}

// Execute moves the task. Any column-to-column move is allowed.
func (uc *MoveTaskUseCase) Execute(ctx context.Context, input MoveTaskInput) (*MoveTaskOutput, error) {
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

	task.Status = input.Status
	task.UpdatedAt = time.Now().UTC()

	if err := uc.taskRepo.Update(ctx, task); err != nil {
		return nil, fmt.Errorf("failed to move task: %w", err)
	}

	return &MoveTaskOutput{Task: task}, nil
}
