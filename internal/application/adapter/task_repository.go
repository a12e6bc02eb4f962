// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// TaskRepository defines the interface for task persistence operations.
type TaskRepository interface {
	// Create creates a new task in the database.
	Create(ctx context.Context, task *entity.Task) error

	// FindByID retrieves a task by ID, scoped to the owning user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error)

	// FindByUserID retrieves all tasks for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error)

	// Update updates an existing task.
	Update(ctx context.Context, task *entity.Task) error

	// Delete removes a task from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
