// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	usecasebilling "github.com/business-manager/backend/internal/application/usecase/billing"
	"github.com/business-manager/backend/internal/domain/billing"
)

// QueueChargeReminderRequest represents the request body for queueing a
// payment reminder for one client subscription charge.
type QueueChargeReminderRequest struct {
	ClientID  string `json:"client_id" binding:"required,uuid"`
	ProductID string `json:"product_id" binding:"required,uuid"`
	Kind      string `json:"kind" binding:"required,oneof=implementation monthly"`
	Month     int    `json:"month" binding:"required,min=1,max=12"`
	Year      int    `json:"year" binding:"required,min=2000,max=2200"`
}

// ProductRevenueResponse is the per-product breakdown of an overview.
type ProductRevenueResponse struct {
	Name              string `json:"name"`
	TotalExpected     string `json:"total_expected"`
	TotalReceived     string `json:"total_received"`
	TotalPending      string `json:"total_pending"`
	TotalOverdue      string `json:"total_overdue"`
	SubscriptionCount int    `json:"subscription_count"`
}

// DueDayChargeResponse is one charge within a due-day group.
type DueDayChargeResponse struct {
	ClientName   string `json:"client_name"`
	ProductLabel string `json:"product_label"`
	Amount       string `json:"amount"`
	Status       string `json:"status"`
}

// DueDayGroupResponse groups the charges falling due on a day of month.
type DueDayGroupResponse struct {
	Day         int                    `json:"day"`
	TotalValue  string                 `json:"total_value"`
	Charges     []DueDayChargeResponse `json:"charges"`
	ClientCount int                    `json:"client_count"`
}

// OverviewResponse represents the billing overview for one period.
type OverviewResponse struct {
	Month           int                      `json:"month"`
	Year            int                      `json:"year"`
	TotalExpected   string                   `json:"total_expected"`
	TotalReceived   string                   `json:"total_received"`
	TotalPending    string                   `json:"total_pending"`
	TotalOverdue    string                   `json:"total_overdue"`
	TotalExpenses   string                   `json:"total_expenses"`
	NetProfit       string                   `json:"net_profit"`
	PercentReceived float64                  `json:"percent_received"`
	ByProduct       []ProductRevenueResponse `json:"by_product"`
	ByDueDay        []DueDayGroupResponse    `json:"by_due_day"`
	Expenses        []ExpenseResponse        `json:"expenses"`
}

// MonthlyChargeResponse is one resolved charge on the monthly listing.
type MonthlyChargeResponse struct {
	ClientID    string    `json:"client_id"`
	ClientName  string    `json:"client_name"`
	ClientEmail string    `json:"client_email"`
	WhatsApp    string    `json:"whatsapp"`
	ProductID   string    `json:"product_id"`
	ProductName string    `json:"product_name"`
	Kind        string    `json:"kind"`
	Amount      string    `json:"amount"`
	Status      string    `json:"status"`
	DueDate     time.Time `json:"due_date"`
}

// MonthlyChargeListResponse represents the response for listing monthly charges.
type MonthlyChargeListResponse struct {
	Charges []MonthlyChargeResponse `json:"charges"`
}

// ChargeReminderResponse carries the rendered reminder message, shared
// verbatim with the WhatsApp copy button on the frontend.
type ChargeReminderResponse struct {
	Message string `json:"message"`
	Queued  bool   `json:"queued"`
}

// ToOverviewResponse converts a billing Summary to an OverviewResponse DTO.
func ToOverviewResponse(summary *billing.Summary) OverviewResponse {
	byProduct := make([]ProductRevenueResponse, 0, len(summary.ByProduct))
	for _, p := range summary.ByProduct {
		byProduct = append(byProduct, ProductRevenueResponse{
			Name:              p.Name,
			TotalExpected:     p.TotalExpected.String(),
			TotalReceived:     p.TotalReceived.String(),
			TotalPending:      p.TotalPending.String(),
			TotalOverdue:      p.TotalOverdue.String(),
			SubscriptionCount: p.SubscriptionCount,
		})
	}

	byDueDay := make([]DueDayGroupResponse, 0, len(summary.ByDueDay))
	for _, g := range summary.ByDueDay {
		charges := make([]DueDayChargeResponse, 0, len(g.Charges))
		for _, c := range g.Charges {
			charges = append(charges, DueDayChargeResponse{
				ClientName:   c.ClientName,
				ProductLabel: c.ProductLabel,
				Amount:       c.Amount.String(),
				Status:       string(c.Status),
			})
		}
		byDueDay = append(byDueDay, DueDayGroupResponse{
			Day:         g.Day,
			TotalValue:  g.TotalValue.String(),
			Charges:     charges,
			ClientCount: g.ClientCount,
		})
	}

	expenses := make([]ExpenseResponse, 0, len(summary.Expenses))
	for _, e := range summary.Expenses {
		expenses = append(expenses, ToExpenseResponse(e))
	}

	return OverviewResponse{
		Month:           int(summary.Month),
		Year:            summary.Year,
		TotalExpected:   summary.TotalExpected.String(),
		TotalReceived:   summary.TotalReceived.String(),
		TotalPending:    summary.TotalPending.String(),
		TotalOverdue:    summary.TotalOverdue.String(),
		TotalExpenses:   summary.TotalExpenses.String(),
		NetProfit:       summary.NetProfit.String(),
		PercentReceived: summary.PercentReceived,
		ByProduct:       byProduct,
		ByDueDay:        byDueDay,
		Expenses:        expenses,
	}
}

// ToMonthlyChargeListResponse converts resolved charges to a list response.
func ToMonthlyChargeListResponse(charges []usecasebilling.MonthlyCharge) MonthlyChargeListResponse {
	resp := MonthlyChargeListResponse{Charges: make([]MonthlyChargeResponse, 0, len(charges))}
	for _, c := range charges {
		resp.Charges = append(resp.Charges, MonthlyChargeResponse{
			ClientID:    c.ClientID.String(),
			ClientName:  c.ClientName,
			ClientEmail: c.ClientEmail,
			WhatsApp:    c.WhatsApp,
			ProductID:   c.ProductID.String(),
			ProductName: c.ProductName,
			Kind:        string(c.Kind),
			Amount:      c.Amount.String(),
			Status:      string(c.Status),
			DueDate:     c.DueDate,
		})
	}
	return resp
}
