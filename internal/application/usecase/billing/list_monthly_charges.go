// Package billing contains billing overview and charge use cases.
package billing

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/billing"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// MonthlyCharge is one billable item of one client resolved for a period,
// the row rendered on the monthly charges screen.
type MonthlyCharge struct {
	ClientID    uuid.UUID
	ClientName  string
	ClientEmail string
	WhatsApp    string
	ProductID   uuid.UUID
	ProductName string
	Kind        entity.ChargeKind
	Amount      decimal.Decimal
	Status      entity.ChargeStatus
	DueDate     time.Time
}

// ListMonthlyChargesInput represents the input for listing monthly charges.
type ListMonthlyChargesInput struct {
	UserID uuid.UUID
	Month  time.Month
	Year   int
}

// ListMonthlyChargesOutput represents the output of listing monthly charges.
type ListMonthlyChargesOutput struct {
	Charges []MonthlyCharge
}

// ListMonthlyChargesUseCase resolves every billable charge of every client
// for a period, ordered by due date then client name.
type ListMonthlyChargesUseCase struct {
	clientRepo  adapter.ClientRepository
	productRepo adapter.ProductRepository
	now         func() time.Time
}

// NewListMonthlyChargesUseCase creates a new ListMonthlyChargesUseCase instance.
func NewListMonthlyChargesUseCase(clientRepo adapter.ClientRepository, productRepo adapter.ProductRepository) *ListMonthlyChargesUseCase {
	return &ListMonthlyChargesUseCase{
		clientRepo:  clientRepo,
		productRepo: productRepo,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

// Execute lists the period's charges with their resolved statuses.
func (uc *ListMonthlyChargesUseCase) Execute(ctx context.Context, input ListMonthlyChargesInput) (*ListMonthlyChargesOutput, error) {
	if input.Month < time.January || input.Month > time.December || input.Year <= 0 {
		return nil, domainerror.NewBillingError(
			domainerror.ErrCodeInvalidPeriod,
			"month must be 1-12 and year positive",
			domainerror.ErrInvalidPeriod,
		)
	}

	clients, err := uc.clientRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load clients: %w", err)
	}
	products, err := uc.productRepo.FindByUserID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		productNames[p.ID] = p.Name
	}

	now := uc.now()
	charges := make([]MonthlyCharge, 0)
	for _, client := range clients {
		for _, item := range billing.BillableItems(client) {
			name, ok := productNames[item.ProductID]
			if !ok {
				name = billing.UnknownProductName
			}
			charges = append(charges, MonthlyCharge{
				ClientID:    client.ID,
				ClientName:  client.Name,
				ClientEmail: client.Email,
				WhatsApp:    client.WhatsApp,
				ProductID:   item.ProductID,
				ProductName: name,
				Kind:        item.Kind,
				Amount:      item.Amount,
				Status:      billing.ResolveStatus(item.StoredStatus, client.DueDay, input.Month, input.Year, now),
				DueDate:     billing.DueDate(client.DueDay, input.Month, input.Year),
			})
		}
	}

	sort.SliceStable(charges, func(i, j int) bool {
		if !charges[i].DueDate.Equal(charges[j].DueDate) {
			return charges[i].DueDate.Before(charges[j].DueDate)
		}
		return charges[i].ClientName < charges[j].ClientName
	})

	return &ListMonthlyChargesOutput{Charges: charges}, nil
}
