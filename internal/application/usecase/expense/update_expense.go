// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// UpdateExpenseInput represents the input for expense update.
type UpdateExpenseInput struct {
	UserID      uuid.UUID
	ExpenseID   uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Notes       string
}

// UpdateExpenseOutput represents the output of expense update.
type UpdateExpenseOutput struct {
	Expense *entity.Expense
}

// UpdateExpenseUseCase handles expense update logic.
type UpdateExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	overviewCache adapter.OverviewCache
}

// NewUpdateExpenseUseCase creates a new UpdateExpenseUseCase instance.
func NewUpdateExpenseUseCase(expenseRepo adapter.ExpenseRepository, overviewCache adapter.OverviewCache) *UpdateExpenseUseCase {
	return &UpdateExpenseUseCase{
		expenseRepo:   expenseRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the expense update.
func (uc *UpdateExpenseUseCase) Execute(ctx context.Context, input UpdateExpenseInput) (*UpdateExpenseOutput, error) {
	if err := validateExpenseFields(input.Description, input.Category, input.Amount, input.Date); err != nil {
		return nil, err
	}

	expense, err := uc.expenseRepo.FindByID(ctx, input.UserID, input.ExpenseID)
	if err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	expense.Description = strings.TrimSpace(input.Description)
	expense.Amount = input.Amount
	expense.Category = strings.TrimSpace(input.Category)
	expense.Date = input.Date
	expense.Notes = strings.TrimSpace(input.Notes)
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.expenseRepo.Update(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to update expense: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &UpdateExpenseOutput{Expense: expense}, nil
}
