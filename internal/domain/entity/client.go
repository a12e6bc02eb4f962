// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ChargeKind identifies which charge of a subscription is being referenced.
type ChargeKind string

const (
	ChargeKindImplementation ChargeKind = "implementation"
	ChargeKindMonthly        ChargeKind = "monthly"
)

// ChargeStatus is the stored payment status of a subscription charge.
// Implementation charges use {pending, paid}; monthly charges use
// {to_pay, paid, overdue}.
type ChargeStatus string

const (
	ChargeStatusPending ChargeStatus = "pending"
	ChargeStatusToPay   ChargeStatus = "to_pay"
	ChargeStatusPaid    ChargeStatus = "paid"
	ChargeStatusOverdue ChargeStatus = "overdue"
)

// MinDueDay and MaxDueDay bound a client's due day of month.
const (
	MinDueDay = 1
	MaxDueDay = 31
)

// ProductSubscription is a client's contract for a product. The amounts are
// captured at contract time and may differ from the product's list price.
type ProductSubscription struct {
	ProductID            uuid.UUID
	ImplementationAmount decimal.Decimal
	MonthlyAmount        decimal.Decimal
	ImplementationStatus ChargeStatus
	MonthlyStatus        ChargeStatus
	Position             int
}

// Billable reports whether the subscription carries at least one positive
// charge. Zero-amount subscriptions are excluded from all totals.
func (s ProductSubscription) Billable() bool {
	return s.ImplementationAmount.IsPositive() || s.MonthlyAmount.IsPositive()
}

// Client represents a customer with contracted product subscriptions.
// DueDay is the day of month on which the client's charges are due; it is
// not validated against month length.
type Client struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	Name          string
	Email         string
	WhatsApp      string
	DueDay        int
	Subscriptions []ProductSubscription
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewClient creates a new Client entity.
func NewClient(userID uuid.UUID, name, email, whatsapp string, dueDay int, subscriptions []ProductSubscription) *Client {
	now := time.Now().UTC()
	return &Client{
		ID:            uuid.New(),
		UserID:        userID,
		Name:          name,
		Email:         email,
		WhatsApp:      whatsapp,
		DueDay:        dueDay,
		Subscriptions: subscriptions,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// HasBillableSubscription reports whether any subscription is billable.
func (c *Client) HasBillableSubscription() bool {
	for _, s := range c.Subscriptions {
		if s.Billable() {
			return true
		}
	}
	return false
}
