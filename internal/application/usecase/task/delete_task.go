// Package task contains task board use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// DeleteTaskInput represents the input for task deletion.
type DeleteTaskInput struct {
	UserID uuid.UUID
	TaskID uuid.UUID
}

// DeleteTaskOutput represents the output of task deletion.
type DeleteTaskOutput struct {
	Success bool
}

// DeleteTaskUseCase handles task deletion logic.
type DeleteTaskUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewDeleteTaskUseCase creates a new DeleteTaskUseCase instance.
func NewDeleteTaskUseCase(taskRepo adapter.TaskRepository) *DeleteTaskUseCase {
	return &DeleteTaskUseCase{taskRepo: taskRepo}
}

// Execute performs the task deletion.
func (uc *DeleteTaskUseCase) Execute(ctx context.Context, input DeleteTaskInput) (*DeleteTaskOutput, error) {
	if _, err := uc.taskRepo.FindByID(ctx, input.UserID, input.TaskID); err != nil {
		return nil, domainerror.NewTaskError(
			domainerror.ErrCodeTaskNotFound,
			"task not found",
			domainerror.ErrTaskNotFound,
		)
	}

	if err := uc.taskRepo.Delete(ctx, input.UserID, input.TaskID); err != nil {
		return nil, fmt.Errorf("failed to delete task: %w", err)
	}

	return &DeleteTaskOutput{Success: true}, nil
}
