// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID            uuid.UUID                `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	Name          string                   `gorm:"type:varchar(100);not null"`
	Email         string                   `gorm:"type:varchar(255)"`
	WhatsApp      string                   `gorm:"type:varchar(20)"`
	DueDay        int                      `gorm:"not null;default:1"`
	Subscriptions []ClientSubscriptionModel `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time                `gorm:"not null"`
	UpdatedAt     time.Time                `gorm:"not null"`
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ClientSubscriptionModel represents the client_subscriptions table, one row
// per contracted product. Position keeps the form's subscription order.
type ClientSubscriptionModel struct {
	ID                   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID             uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID            uuid.UUID       `gorm:"type:uuid;not null;index"`
	ImplementationAmount decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	MonthlyAmount        decimal.Decimal `gorm:"type:decimal(12,2);not null;default:0"`
	ImplementationStatus string          `gorm:"type:varchar(20);not null;default:'pending'"`
	MonthlyStatus        string          `gorm:"type:varchar(20);not null;default:'to_pay'"`
	Position             int             `gorm:"not null;default:0"`
}

// TableName returns the table name for the ClientSubscriptionModel.
func (ClientSubscriptionModel) TableName() string {
	return "client_subscriptions"
}

// ToEntity converts a ClientModel with its subscriptions to a domain Client.
func (m *ClientModel) ToEntity() *entity.Client {
	subscriptions := make([]entity.ProductSubscription, len(m.Subscriptions))
	for i, s := range m.Subscriptions {
		subscriptions[i] = entity.ProductSubscription{
			ProductID:            s.ProductID,
			ImplementationAmount: s.ImplementationAmount,
			MonthlyAmount:        s.MonthlyAmount,
			ImplementationStatus: entity.ChargeStatus(s.ImplementationStatus),
			MonthlyStatus:        entity.ChargeStatus(s.MonthlyStatus),
			Position:             s.Position,
		}
	}

	return &entity.Client{
		ID:            m.ID,
		UserID:        m.UserID,
		Name:          m.Name,
		Email:         m.Email,
		WhatsApp:      m.WhatsApp,
		DueDay:        m.DueDay,
		Subscriptions: subscriptions,
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(client *entity.Client) *ClientModel {
	subscriptions := make([]ClientSubscriptionModel, len(client.Subscriptions))
	for i, s := range client.Subscriptions {
		subscriptions[i] = ClientSubscriptionModel{
			ID:                   uuid.New(),
			ClientID:             client.ID,
			ProductID:            s.ProductID,
			ImplementationAmount: s.ImplementationAmount,
			MonthlyAmount:        s.MonthlyAmount,
			ImplementationStatus: string(s.ImplementationStatus),
			MonthlyStatus:        string(s.MonthlyStatus),
			Position:             s.Position,
		}
	}

	return &ClientModel{
		ID:            client.ID,
		UserID:        client.UserID,
		Name:          client.Name,
		Email:         client.Email,
		WhatsApp:      client.WhatsApp,
		DueDay:        client.DueDay,
		Subscriptions: subscriptions,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}
