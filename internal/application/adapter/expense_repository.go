// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// ExpenseRepository defines the interface for expense persistence operations.
type ExpenseRepository interface {
	// Create creates a new expense in the database.
	Create(ctx context.Context, expense *entity.Expense) error

	// FindByID retrieves an expense by ID, scoped to the owning user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.Expense, error)

	// FindByUserID retrieves all expenses for a user, newest first.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Expense, error)

	// FindByPeriod retrieves the expenses of a user dated inside a month.
	FindByPeriod(ctx context.Context, userID uuid.UUID, month time.Month, year int) ([]*entity.Expense, error)

	// Update updates an existing expense.
	Update(ctx context.Context, expense *entity.Expense) error

	// Delete removes an expense from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
