// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SuggestedExpenseCategories is the fixed set offered in the expense form.
// The category field itself is free-form.
var SuggestedExpenseCategories = []string{
	"Alimentação", "Transporte", "Moradia", "Lazer", "Saúde",
	"Educação", "Tecnologia", "Marketing", "Outros",
}

// Expense represents an outgoing payment in the expense ledger.
type Expense struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Description string
	Amount      decimal.Decimal
	Category    string
	Date        time.Time
	Notes       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewExpense creates a new Expense entity.
func NewExpense(userID uuid.UUID, description string, amount decimal.Decimal, category string, date time.Time, notes string) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Notes:       notes,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// InPeriod reports whether the expense date falls in the given month/year.
func (e *Expense) InPeriod(month time.Month, year int) bool {
	return e.Date.Month() == month && e.Date.Year() == year
}
