// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// SubscriptionRequest represents one contracted product in a client
// create or update request.
type SubscriptionRequest struct {
	ProductID            string  `json:"product_id" binding:"required,uuid"`
	ImplementationAmount float64 `json:"implementation_amount" binding:"min=0"`
	MonthlyAmount        float64 `json:"monthly_amount" binding:"min=0"`
}

// CreateClientRequest represents the request body for client creation.
type CreateClientRequest struct {
	Name          string                `json:"name" binding:"required,min=1,max=100"`
	Email         string                `json:"email" binding:"omitempty,email"`
	WhatsApp      string                `json:"whatsapp" binding:"max=20"`
	DueDay        int                   `json:"due_day" binding:"required,min=1,max=31"`
	Subscriptions []SubscriptionRequest `json:"subscriptions" binding:"required,min=1,dive"`
}

// UpdateClientRequest represents the request body for client update. The
// subscription list replaces the stored one.
type UpdateClientRequest struct {
	Name          string                `json:"name" binding:"required,min=1,max=100"`
	Email         string                `json:"email" binding:"omitempty,email"`
	WhatsApp      string                `json:"whatsapp" binding:"max=20"`
	DueDay        int                   `json:"due_day" binding:"required,min=1,max=31"`
	Subscriptions []SubscriptionRequest `json:"subscriptions" binding:"required,min=1,dive"`
}

// UpdateChargeStatusRequest represents the request body for updating the
// stored status of one subscription charge.
type UpdateChargeStatusRequest struct {
	ProductID string `json:"product_id" binding:"required,uuid"`
	Kind      string `json:"kind" binding:"required,oneof=implementation monthly"`
	Status    string `json:"status" binding:"required,oneof=pending to_pay paid overdue"`
}

// SubscriptionResponse represents a client subscription in API responses.
type SubscriptionResponse struct {
	ProductID            string `json:"product_id"`
	ImplementationAmount string `json:"implementation_amount"`
	MonthlyAmount        string `json:"monthly_amount"`
	ImplementationStatus string `json:"implementation_status"`
	MonthlyStatus        string `json:"monthly_status"`
}

// ClientResponse represents a client in API responses.
type ClientResponse struct {
	ID            string                 `json:"id"`
	Name          string                 `json:"name"`
	Email         string                 `json:"email"`
	WhatsApp      string                 `json:"whatsapp"`
	DueDay        int                    `json:"due_day"`
	Subscriptions []SubscriptionResponse `json:"subscriptions"`
	CreatedAt     time.Time              `json:"created_at"`
	UpdatedAt     time.Time              `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(client *entity.Client) ClientResponse {
	subs := make([]SubscriptionResponse, 0, len(client.Subscriptions))
	for _, s := range client.Subscriptions {
		subs = append(subs, SubscriptionResponse{
			ProductID:            s.ProductID.String(),
			ImplementationAmount: s.ImplementationAmount.String(),
			MonthlyAmount:        s.MonthlyAmount.String(),
			ImplementationStatus: string(s.ImplementationStatus),
			MonthlyStatus:        string(s.MonthlyStatus),
		})
	}
	return ClientResponse{
		ID:            client.ID.String(),
		Name:          client.Name,
		Email:         client.Email,
		WhatsApp:      client.WhatsApp,
		DueDay:        client.DueDay,
		Subscriptions: subs,
		CreatedAt:     client.CreatedAt,
		UpdatedAt:     client.UpdatedAt,
	}
}

// ToClientListResponse converts a slice of clients to a list response.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	resp := ClientListResponse{Clients: make([]ClientResponse, 0, len(clients))}
	for _, c := range clients {
		resp.Clients = append(resp.Clients, ToClientResponse(c))
	}
	return resp
}
