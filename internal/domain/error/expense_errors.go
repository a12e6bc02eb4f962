// Package error defines domain-specific errors for the Business Manager application.
package error

import "errors"

// Expense domain errors.
var (
	// ErrExpenseNotFound is returned when an expense is not found in the system.
	ErrExpenseNotFound = errors.New("expense not found")

	// ErrExpenseDescriptionRequired is returned when the expense description is missing.
	ErrExpenseDescriptionRequired = errors.New("expense description is required")

	// ErrExpenseCategoryRequired is returned when the expense category is missing.
	ErrExpenseCategoryRequired = errors.New("expense category is required")

	// ErrExpenseDateRequired is returned when the expense date is missing.
	ErrExpenseDateRequired = errors.New("expense date is required")

	// ErrInvalidExpenseAmount is returned when the expense amount is not positive.
	ErrInvalidExpenseAmount = errors.New("expense amount must be positive")

	// ErrNotAuthorizedToModifyExpense is returned when the expense belongs to another user.
	ErrNotAuthorizedToModifyExpense = errors.New("not authorized to modify expense")
)

// ExpenseErrorCode defines error codes for expense errors.
// Format: EXP-XXYYYY where XX is category and YYYY is specific error.
type ExpenseErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeExpenseDescriptionRequired ExpenseErrorCode = "EXP-010001"
	ErrCodeExpenseCategoryRequired    ExpenseErrorCode = "EXP-010002"
	ErrCodeExpenseDateRequired        ExpenseErrorCode = "EXP-010003"
	ErrCodeInvalidExpenseAmount       ExpenseErrorCode = "EXP-010004"

	// Lookup / ownership errors (02XXXX)
	ErrCodeExpenseNotFound      ExpenseErrorCode = "EXP-020001"
	ErrCodeNotAuthorizedExpense ExpenseErrorCode = "EXP-020002"
)

// ExpenseError represents an expense error with code and message.
type ExpenseError struct {
	Code    ExpenseErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ExpenseError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ExpenseError) Unwrap() error {
	return e.Err
}

// NewExpenseError creates a new ExpenseError with the given code and message.
func NewExpenseError(code ExpenseErrorCode, message string, err error) *ExpenseError {
	return &ExpenseError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
