// Package expense contains expense ledger use cases.
package expense

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// CreateExpenseInput represents the input for expense creation.
type CreateExpenseInput struct {
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Notes       string
}

// CreateExpenseOutput represents the output of expense creation.
type CreateExpenseOutput struct {
	Expense *entity.Expense
}

// CreateExpenseUseCase handles expense creation logic.
type CreateExpenseUseCase struct {
	expenseRepo   adapter.ExpenseRepository
	overviewCache adapter.OverviewCache
}

// NewCreateExpenseUseCase creates a new CreateExpenseUseCase instance.
func NewCreateExpenseUseCase(expenseRepo adapter.ExpenseRepository, overviewCache adapter.OverviewCache) *CreateExpenseUseCase {
	return &CreateExpenseUseCase{
		expenseRepo:   expenseRepo,
		overviewCache: overviewCache,
	}
}

// Execute performs the expense creation.
func (uc *CreateExpenseUseCase) Execute(ctx context.Context, input CreateExpenseInput) (*CreateExpenseOutput, error) {
	if err := validateExpenseFields(input.Description, input.Category, input.Amount, input.Date); err != nil {
		return nil, err
	}

	expense := entity.NewExpense(
		input.UserID,
		strings.TrimSpace(input.Description),
		input.Amount,
		strings.TrimSpace(input.Category),
		input.Date,
		strings.TrimSpace(input.Notes),
	)

	if err := uc.expenseRepo.Create(ctx, expense); err != nil {
		return nil, fmt.Errorf("failed to create expense: %w", err)
	}

	invalidateOverview(ctx, uc.overviewCache, input.UserID)

	return &CreateExpenseOutput{Expense: expense}, nil
}

// validateExpenseFields enforces the required fields of the expense form.
func validateExpenseFields(description, category string, amount decimal.Decimal, date time.Time) error {
	if strings.TrimSpace(description) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDescriptionRequired,
			"expense description is required",
			domainerror.ErrExpenseDescriptionRequired,
		)
	}
	if strings.TrimSpace(category) == "" {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseCategoryRequired,
			"expense category is required",
			domainerror.ErrExpenseCategoryRequired,
		)
	}
	if !amount.IsPositive() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeInvalidExpenseAmount,
			"expense amount must be positive",
			domainerror.ErrInvalidExpenseAmount,
		)
	}
	if date.IsZero() {
		return domainerror.NewExpenseError(
			domainerror.ErrCodeExpenseDateRequired,
			"expense date is required",
			domainerror.ErrExpenseDateRequired,
		)
	}
	return nil
}

// invalidateOverview drops the user's cached billing overviews after a write.
// Cache errors are logged and swallowed; the write already succeeded.
func invalidateOverview(ctx context.Context, cache adapter.OverviewCache, userID uuid.UUID) {
	if cache == nil {
		return
	}
	if err := cache.InvalidateUser(ctx, userID); err != nil {
		slog.Warn("Failed to invalidate overview cache", "error", err, "userID", userID)
	}
}
