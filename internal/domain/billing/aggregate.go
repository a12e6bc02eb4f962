package billing

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
)

// UnknownProductName is used when an item's product id has no catalog match.
const UnknownProductName = "Unknown Product"

// Label suffixes distinguishing the two charge kinds in due-day listings.
const (
	implementationLabelSuffix = " (Impl)"
	monthlyLabelSuffix        = " (Mens)"
)

// ProductRevenue is the per-product slice of the summary, sorted descending
// by TotalExpected. SubscriptionCount counts implementation items only; a
// monthly-only subscription does not increment it. That asymmetry is
// long-standing reported behavior and is kept on purpose.
type ProductRevenue struct {
	Name              string
	TotalExpected     decimal.Decimal
	TotalReceived     decimal.Decimal
	TotalPending      decimal.Decimal
	TotalOverdue      decimal.Decimal
	SubscriptionCount int
}

// DueDayCharge is one client charge within a due-day group.
type DueDayCharge struct {
	ClientName   string
	ProductLabel string
	Amount       decimal.Decimal
	Status       entity.ChargeStatus
}

// DueDayGroup aggregates the charges falling due on a given day of month.
// ClientCount counts the charge entries, one per billable item.
type DueDayGroup struct {
	Day         int
	TotalValue  decimal.Decimal
	Charges     []DueDayCharge
	ClientCount int
}

// Summary is the result of one aggregation pass over a period snapshot.
// The partition invariant holds: TotalExpected equals TotalReceived +
// TotalPending + TotalOverdue.
type Summary struct {
	Month           time.Month
	Year            int
	TotalExpected   decimal.Decimal
	TotalReceived   decimal.Decimal
	TotalPending    decimal.Decimal
	TotalOverdue    decimal.Decimal
	TotalExpenses   decimal.Decimal
	NetProfit       decimal.Decimal
	PercentReceived float64
	ByProduct       []ProductRevenue
	ByDueDay        []DueDayGroup
	Expenses        []*entity.Expense
}

// Aggregate walks every billable item of every client, resolves its
// effective status as of now, and buckets amounts into period totals plus
// per-product and per-due-day breakdowns. Expenses are filtered to the
// period and subtracted from received revenue for the net profit. The
// function never mutates its inputs and is idempotent for fixed arguments.
func Aggregate(clients []*entity.Client, products []*entity.Product, expenses []*entity.Expense, month time.Month, year int, now time.Time) *Summary {
	s := &Summary{
		Month:         month,
		Year:          year,
		TotalExpected: decimal.Zero,
		TotalReceived: decimal.Zero,
		TotalPending:  decimal.Zero,
		TotalOverdue:  decimal.Zero,
		TotalExpenses: decimal.Zero,
	}

	productNames := make(map[uuid.UUID]string, len(products))
	for _, p := range products {
		if p != nil {
			productNames[p.ID] = p.Name
		}
	}

	byProduct := make(map[string]*ProductRevenue)
	byDueDay := make(map[int]*DueDayGroup)

	for _, client := range clients {
		if client == nil {
			continue
		}
		for _, item := range BillableItems(client) {
			name, ok := productNames[item.ProductID]
			if !ok {
				name = UnknownProductName
			}
			status := ResolveStatus(item.StoredStatus, client.DueDay, month, year, now)

			s.TotalExpected = s.TotalExpected.Add(item.Amount)
			switch status {
			case entity.ChargeStatusPaid:
				s.TotalReceived = s.TotalReceived.Add(item.Amount)
			case entity.ChargeStatusOverdue:
				s.TotalOverdue = s.TotalOverdue.Add(item.Amount)
			default:
				s.TotalPending = s.TotalPending.Add(item.Amount)
			}

			rev, ok := byProduct[name]
			if !ok {
				rev = &ProductRevenue{
					Name:          name,
					TotalExpected: decimal.Zero,
					TotalReceived: decimal.Zero,
					TotalPending:  decimal.Zero,
					TotalOverdue:  decimal.Zero,
				}
				byProduct[name] = rev
			}
			rev.TotalExpected = rev.TotalExpected.Add(item.Amount)
			switch status {
			case entity.ChargeStatusPaid:
				rev.TotalReceived = rev.TotalReceived.Add(item.Amount)
			case entity.ChargeStatusOverdue:
				rev.TotalOverdue = rev.TotalOverdue.Add(item.Amount)
			default:
				rev.TotalPending = rev.TotalPending.Add(item.Amount)
			}

			label := name + monthlyLabelSuffix
			if item.Kind == entity.ChargeKindImplementation {
				label = name + implementationLabelSuffix
			}

			group, ok := byDueDay[client.DueDay]
			if !ok {
				group = &DueDayGroup{Day: client.DueDay, TotalValue: decimal.Zero}
				byDueDay[client.DueDay] = group
			}
			group.TotalValue = group.TotalValue.Add(item.Amount)
			group.Charges = append(group.Charges, DueDayCharge{
				ClientName:   client.Name,
				ProductLabel: label,
				Amount:       item.Amount,
				Status:       status,
			})
			group.ClientCount++

			if item.Kind == entity.ChargeKindImplementation {
				rev.SubscriptionCount++
			}
		}
	}

	for _, e := range expenses {
		if e == nil || !e.InPeriod(month, year) {
			continue
		}
		s.Expenses = append(s.Expenses, e)
		s.TotalExpenses = s.TotalExpenses.Add(e.Amount)
	}

	s.NetProfit = s.TotalReceived.Sub(s.TotalExpenses)
	if s.TotalExpected.IsPositive() {
		pct, _ := s.TotalReceived.Mul(decimal.NewFromInt(100)).Div(s.TotalExpected).Float64()
		s.PercentReceived = pct
	}

	s.ByProduct = make([]ProductRevenue, 0, len(byProduct))
	for _, rev := range byProduct {
		s.ByProduct = append(s.ByProduct, *rev)
	}
	sort.SliceStable(s.ByProduct, func(i, j int) bool {
		if !s.ByProduct[i].TotalExpected.Equal(s.ByProduct[j].TotalExpected) {
			return s.ByProduct[i].TotalExpected.GreaterThan(s.ByProduct[j].TotalExpected)
		}
		return s.ByProduct[i].Name < s.ByProduct[j].Name
	})

	s.ByDueDay = make([]DueDayGroup, 0, len(byDueDay))
	for _, group := range byDueDay {
		s.ByDueDay = append(s.ByDueDay, *group)
	}
	sort.Slice(s.ByDueDay, func(i, j int) bool {
		return s.ByDueDay[i].Day < s.ByDueDay[j].Day
	})

	return s
}
