// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// CreateTaskRequest represents the request body for task creation.
// DueDate uses the "YYYY-MM-DD" wire format when present.
type CreateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=1000"`
	Status      string   `json:"status" binding:"omitempty,oneof=todo in_progress completed"`
	DueDate     string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DaysOfWeek  []string `json:"days_of_week" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// UpdateTaskRequest represents the request body for task update.
type UpdateTaskRequest struct {
	Title       string   `json:"title" binding:"required,min=1,max=200"`
	Description string   `json:"description" binding:"max=1000"`
	Status      string   `json:"status" binding:"required,oneof=todo in_progress completed"`
	DueDate     string   `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
	DaysOfWeek  []string `json:"days_of_week" binding:"omitempty,dive,oneof=monday tuesday wednesday thursday friday saturday sunday"`
}

// MoveTaskRequest represents the request body for moving a task between
// board columns.
type MoveTaskRequest struct {
	Status string `json:"status" binding:"required,oneof=todo in_progress completed"`
}

// TaskResponse represents a task in API responses.
type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	DueDate     *string   `json:"due_date"`
	DaysOfWeek  []string  `json:"days_of_week"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TaskBoardResponse groups the user's tasks by board column.
type TaskBoardResponse struct {
	Todo       []TaskResponse `json:"todo"`
	InProgress []TaskResponse `json:"in_progress"`
	Completed  []TaskResponse `json:"completed"`
}

// ToTaskResponse converts a domain Task entity to a TaskResponse DTO.
func ToTaskResponse(task *entity.Task) TaskResponse {
	var dueDate *string
	if task.DueDate != nil {
		d := task.DueDate.Format("2006-01-02")
		dueDate = &d
	}
	days := task.DaysOfWeek
	if days == nil {
		days = []string{}
	}
	return TaskResponse{
		ID:          task.ID.String(),
		Title:       task.Title,
		Description: task.Description,
		Status:      string(task.Status),
		DueDate:     dueDate,
		DaysOfWeek:  days,
		CreatedAt:   task.CreatedAt,
		UpdatedAt:   task.UpdatedAt,
	}
}

// ToTaskBoardResponse converts the grouped task lists to a board response.
func ToTaskBoardResponse(todo, inProgress, completed []*entity.Task) TaskBoardResponse {
	convert := func(tasks []*entity.Task) []TaskResponse {
		out := make([]TaskResponse, 0, len(tasks))
		for _, t := range tasks {
			out = append(out, ToTaskResponse(t))
		}
		return out
	}
	return TaskBoardResponse{
		Todo:       convert(todo),
		InProgress: convert(inProgress),
		Completed:  convert(completed),
	}
}
