package billing

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
)

// Item is a single billable charge extracted from a client subscription.
type Item struct {
	ProductID    uuid.UUID
	Kind         entity.ChargeKind
	Amount       decimal.Decimal
	StoredStatus entity.ChargeStatus
}

// BillableItems extracts the positive-amount charges of a client's
// subscriptions. For each subscription the implementation item (if any) is
// emitted before the monthly item, in subscription order; grouping output
// downstream depends on this ordering. A nil subscription list yields nil.
func BillableItems(client *entity.Client) []Item {
	if client == nil || len(client.Subscriptions) == 0 {
		return nil
	}
	items := make([]Item, 0, len(client.Subscriptions)*2)
	for _, sub := range client.Subscriptions {
		if sub.ImplementationAmount.IsPositive() {
			items = append(items, Item{
				ProductID:    sub.ProductID,
				Kind:         entity.ChargeKindImplementation,
				Amount:       sub.ImplementationAmount,
				StoredStatus: sub.ImplementationStatus,
			})
		}
		if sub.MonthlyAmount.IsPositive() {
			items = append(items, Item{
				ProductID:    sub.ProductID,
				Kind:         entity.ChargeKindMonthly,
				Amount:       sub.MonthlyAmount,
				StoredStatus: sub.MonthlyStatus,
			})
		}
	}
	if len(items) == 0 {
		return nil
	}
	return items
}
