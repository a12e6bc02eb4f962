// Package task contains task board use cases.
package task

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
)

// ListTasksInput represents the input for listing tasks.
type ListTasksInput struct {
	UserID uuid.UUID
}

// ListTasksOutput groups the user's tasks by board column.
type ListTasksOutput struct {
	Todo       []*entity.Task
	InProgress []*entity.Task
	Completed  []*entity.Task
}

// ListTasksUseCase handles listing a user's task board.
type ListTasksUseCase struct {
	taskRepo adapter.TaskRepository
}

// NewListTasksUseCase creates a new ListTasksUseCase instance.
func NewListTasksUseCase(taskRepo adapter.TaskRepository) *ListTasksUseCase {
	return &ListTasksUseCase{taskRepo: taskRepo}
}

// Execute lists the user's tasks bucketed into the three board columns.
func (uc *ListTasksUseCase) Execute(ctx context.Context, input ListTasksInput) (*ListTasksOutput, error) {
	tasks, err := uc.taskRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	out := &ListTasksOutput{}
	for _, t := range tasks {
		switch t.Status {
		case entity.TaskStatusInProgress:
			out.InProgress = append(out.InProgress, t)
		case entity.TaskStatusCompleted:
			out.Completed = append(out.Completed, t)
		default:
			out.Todo = append(out.Todo, t)
		}
	}
	return out, nil
}
