// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Product represents a catalog entry that clients can subscribe to.
// ImplementationFee is the one-time onboarding charge; MonthlyFee is the
// recurring charge. A zero fee means that charge type is not offered.
type Product struct {
	ID                uuid.UUID
	UserID            uuid.UUID
	Name              string
	Description       string
	ImplementationFee decimal.Decimal
	MonthlyFee        decimal.Decimal
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// NewProduct creates a new Product entity.
func NewProduct(userID uuid.UUID, name, description string, implementationFee, monthlyFee decimal.Decimal) *Product {
	now := time.Now().UTC()
	return &Product{
		ID:                uuid.New(),
		UserID:            userID,
		Name:              name,
		Description:       description,
		ImplementationFee: implementationFee,
		MonthlyFee:        monthlyFee,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
}
