// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/persistence/model"
)

// taskRepository implements the adapter.TaskRepository interface.
type taskRepository struct {
	db *gorm.DB
}

// NewTaskRepository creates a new task repository instance.
func NewTaskRepository(db *gorm.DB) adapter.TaskRepository {
	return &taskRepository{
		db: db,
	}
}

// Create creates a new task in the database.
func (r *taskRepository) Create(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).Create(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a task by ID, scoped to the owning user.
func (r *taskRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Task, error) {
	var taskModel model.TaskModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&taskModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTaskNotFound
		}
		return nil, result.Error
	}
	return taskModel.ToEntity(), nil
}

// FindByUserID retrieves all tasks for a user, newest first.
func (r *taskRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Task, error) {
	var taskModels []model.TaskModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&taskModels)
	if result.Error != nil {
		return nil, result.Error
	}

	tasks := make([]*entity.Task, len(taskModels))
	for i, tm := range taskModels {
		tasks[i] = tm.ToEntity()
	}
	return tasks, nil
}

// Update updates an existing task.
func (r *taskRepository) Update(ctx context.Context, task *entity.Task) error {
	taskModel := model.TaskFromEntity(task)
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", task.ID, task.UserID).
		Save(taskModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// Delete removes a task from the database.
func (r *taskRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.TaskModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrTaskNotFound
	}
	return nil
}
