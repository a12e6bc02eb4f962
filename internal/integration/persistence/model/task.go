// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/business-manager/backend/internal/domain/entity"
)

// TaskModel represents the tasks table in the database. DaysOfWeek uses a
// Postgres text array for the optional recurrence weekdays.
type TaskModel struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	UserID      uuid.UUID      `gorm:"type:uuid;not null;index"`
	Title       string         `gorm:"type:varchar(255);not null"`
	Description string         `gorm:"type:text"`
	Status      string         `gorm:"type:varchar(20);not null;default:'todo';index"`
	DueDate     *time.Time     `gorm:"type:date"`
	DaysOfWeek  pq.StringArray `gorm:"type:text[]"`
	CreatedAt   time.Time      `gorm:"not null"`
	UpdatedAt   time.Time      `gorm:"not null"`
}

// TableName returns the table name for the TaskModel.
func (TaskModel) TableName() string {
	return "tasks"
}

// ToEntity converts a TaskModel to a domain Task entity.
func (m *TaskModel) ToEntity() *entity.Task {
	return &entity.Task{
		ID:          m.ID,
		UserID:      m.UserID,
		Title:       m.Title,
		Description: m.Description,
		Status:      entity.TaskStatus(m.Status),
		DueDate:     m.DueDate,
		DaysOfWeek:  []string(m.DaysOfWeek),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// TaskFromEntity creates a TaskModel from a domain Task entity.
func TaskFromEntity(task *entity.Task) *TaskModel {
	return &TaskModel{
		ID:          task.ID,
		UserID:      task.UserID,
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     task.DueDate,
		DaysOfWeek:  pq.StringArray(task.DaysOfWeek),
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}
