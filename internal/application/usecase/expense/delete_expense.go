// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// DeleteExpenseInput represents the input for expense deletion.
type DeleteExpenseInput struct {
	UserID    uuid.UUID
	ExpenseID uuid.UUID
}

// DeleteExpenseOutput represents the output of expense deletion.
type DeleteExpenseOutput struct {
	Success bool
}

// DeleteExpenseUseCase handles expense deletion logic.
type DeleteExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	overviewCache adapter.OverviewCache
}

// NewDeleteExpenseUseCase creates a new DeleteExpenseUseCase instance.
func NewDeleteExpenseUseCase(expenseRepo adapter.ExpenseRepository, overviewCache adapter.OverviewCache) *DeleteExpenseUseCase {
	return &DeleteExpenseUseCase{
		expenseRepo:   expenseRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the expense deletion.
func (uc *DeleteExpenseUseCase) Execute(ctx context.Context, input DeleteExpenseInput) (*DeleteExpenseOutput, error) {
	if _, err := uc.expenseRepo.FindByID(ctx, input.UserID, input.ExpenseID); err != nil {
		return nil, domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseNotFound,
			"expense not found",
			domainerror.ErrExpenseNotFound,
		)
	}

	if err := uc.expenseRepo.Delete(ctx, input.UserID, input.ExpenseID); err != nil {
		return nil, fmt.Errorf("failed to delete expense: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &DeleteExpenseOutput{Success: true}, nil
}
