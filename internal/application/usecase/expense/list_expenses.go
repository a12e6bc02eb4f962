// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// ListExpensesInput represents the input for listing expenses. When Month
// and Year are both set, only that period's expenses are returned.
type ListExpensesInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// ListExpensesOutput represents the output of listing expenses.
type ListExpensesOutput struct {
	Expenses []*entity.Expense
	Total    decimal.Decimal
}

// ListExpensesUseCase handles listing a user's expenses.
type ListExpensesUseCase struct {
	expenseRepo adapter.ExpenseRepository
}

// NewListExpensesUseCase creates a new ListExpensesUseCase instance.
func NewListExpensesUseCase(expenseRepo adapter.ExpenseRepository) *ListExpensesUseCase {
	return &ListExpensesUseCase{expenseRepo: expenseRepo}
}

// Execute lists expenses, optionally filtered to one month.
func (uc *ListExpensesUseCase) Execute(ctx context.Context, input ListExpensesInput) (*ListExpensesOutput, error) {
	var (
		expenses []*entity.Expense
		err      error
	)
	switch {
	case input.Month == 0 && input.Year == 0:
		expenses, err = uc.expenseRepo.FindByUserID(ctx, input.UserID)
	case input.Month >= time.January && input.Month <= time.December && input.Year > 0:
		expenses, err = uc.expenseRepo.FindByPeriod(ctx, input.UserID, input.Month, input.Year)
	default:
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 1-12 and year positive",
			domainerror.ErrInvalidPeriod,
		)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}

	total := decimal.Zero
	for _, e := range expenses {
		total = total.Add(e.Amount)
	}

	return &ListExpensesOutput{Expenses: expenses, Total: total}, nil
}
