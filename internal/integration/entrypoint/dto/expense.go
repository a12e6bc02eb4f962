// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// CreateExpenseRequest represents the request body for expense creation.
// Date uses the "YYYY-MM-DD" wire format.
type CreateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes" binding:"max=500"`
}

// UpdateExpenseRequest represents the request body for expense update.
type UpdateExpenseRequest struct {
	Description string  `json:"description" binding:"required,min=1,max=200"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Category    string  `json:"category" binding:"required,min=1,max=50"`
	Date        string  `json:"date" binding:"required,datetime=2006-01-02"`
	Notes       string  `json:"notes" binding:"max=500"`
}

// ExpenseResponse represents an expense in API responses.
type ExpenseResponse struct {
	ID          string    `json:"id"`
	Description string    `json:"description"`
	Amount      string    `json:"amount"`
	Category    string    `json:"category"`
	Date        string    `json:"date"`
	Notes       string    `json:"notes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ExpenseListResponse represents the response for listing expenses.
type ExpenseListResponse struct {
	Expenses []ExpenseResponse `json:"expenses"`
	Total    string            `json:"total"`
}

// ToExpenseResponse converts a domain Expense entity to an ExpenseResponse DTO.
func ToExpenseResponse(expense *entity.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Amount:      expense.Amount.String(),
		Category:    expense.Category,
		Date:        expense.Date.Format("2006-01-02"),
		Notes:       expense.Notes,
		CreatedAt:   expense.CreatedAt,
		UpdatedAt:   expense.UpdatedAt,
	}
}
