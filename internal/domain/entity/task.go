// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents a board column.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Task represents a card on the task board. DaysOfWeek holds optional
// recurrence weekdays ("monday".."sunday").
type Task struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	DaysOfWeek  []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewTask creates a new Task entity.
func NewTask(userID uuid.UUID, title, description string, status TaskStatus, dueDate *time.Time, daysOfWeek []string) *Task {
	now := time.Now().UTC()
	return &Task{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Status:      status,
		DueDate:     dueDate,
		DaysOfWeek:  daysOfWeek,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// IsValidTaskStatus validates a board column value.
func IsValidTaskStatus(s TaskStatus) bool {
	return s == TaskStatusTodo || s == TaskStatusInProgress || s == TaskStatusCompleted
}
