package billing

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/business-manager/backend/internal/domain/entity"
)

func money(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func testClient(name string, dueDay int, subs ...entity.ProductSubscription) *entity.Client {
	return &entity.Client{
		ID:            uuid.New(),
		UserID:        uuid.New(),
		Name:          name,
		DueDay:        dueDay,
		Subscriptions: subs,
	}
}

func TestAggregate_OverdueInference(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Site Pro"}}

	// Due day 10, reference date the 15th of the same month: unpaid
	// monthly charge is overdue.
	client := testClient("Acme", 10, entity.ProductSubscription{
		ProductID:     productID,
		MonthlyAmount: money("100.00"),
		MonthlyStatus: entity.ChargeStatusToPay,
	})
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	s := Aggregate([]*entity.Client{client}, products, nil, time.June, 2025, now)

	if !s.TotalOverdue.Equal(money("100.00")) {
		t.Errorf("expected totalOverdue 100.00, got %s", s.TotalOverdue)
	}
	if !s.TotalPending.IsZero() {
		t.Errorf("expected totalPending 0, got %s", s.TotalPending)
	}
	if !s.TotalExpected.Equal(money("100.00")) {
		t.Errorf("expected totalExpected 100.00, got %s", s.TotalExpected)
	}
}

func TestAggregate_PaidIsSticky(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Site Pro"}}

	client := testClient("Acme", 10, entity.ProductSubscription{
		ProductID:     productID,
		MonthlyAmount: money("100.00"),
		MonthlyStatus: entity.ChargeStatusPaid,
	})
	now := time.Date(2025, time.June, 15, 10, 0, 0, 0, time.UTC)

	s := Aggregate([]*entity.Client{client}, products, nil, time.June, 2025, now)

	if !s.TotalReceived.Equal(money("100.00")) {
		t.Errorf("expected totalReceived 100.00, got %s", s.TotalReceived)
	}
	if !s.TotalOverdue.IsZero() {
		t.Errorf("expected totalOverdue 0, got %s", s.TotalOverdue)
	}
}

func TestAggregate_DueDayGrouping(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Consultoria"}}

	paid := testClient("Alpha", 5, entity.ProductSubscription{
		ProductID:     productID,
		MonthlyAmount: money("50.00"),
		MonthlyStatus: entity.ChargeStatusPaid,
	})
	open := testClient("Beta", 5, entity.ProductSubscription{
		ProductID:     productID,
		MonthlyAmount: money("50.00"),
		MonthlyStatus: entity.ChargeStatusToPay,
	})
	// Reference date before the due day: nothing is overdue yet.
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	s := Aggregate([]*entity.Client{paid, open}, products, nil, time.June, 2025, now)

	if len(s.ByDueDay) != 1 {
		t.Fatalf("expected one due-day group, got %d", len(s.ByDueDay))
	}
	group := s.ByDueDay[0]
	if group.Day != 5 {
		t.Errorf("expected day 5, got %d", group.Day)
	}
	if !group.TotalValue.Equal(money("100.00")) {
		t.Errorf("expected group total 100.00, got %s", group.TotalValue)
	}
	if group.ClientCount != 2 {
		t.Errorf("expected clientCount 2, got %d", group.ClientCount)
	}
	if !s.TotalPending.Equal(money("50.00")) {
		t.Errorf("expected totalPending 50.00, got %s", s.TotalPending)
	}
	if !s.TotalReceived.Equal(money("50.00")) {
		t.Errorf("expected totalReceived 50.00, got %s", s.TotalReceived)
	}
	if group.Charges[0].ProductLabel != "Consultoria (Mens)" {
		t.Errorf("expected monthly label, got %q", group.Charges[0].ProductLabel)
	}
}

func TestAggregate_ExpensePeriodFilterAndNetProfit(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Site Pro"}}
	client := testClient("Acme", 10, entity.ProductSubscription{
		ProductID:     productID,
		MonthlyAmount: money("100.00"),
		MonthlyStatus: entity.ChargeStatusPaid,
	})

	inPeriod := &entity.Expense{
		ID:     uuid.New(),
		Amount: money("30.00"),
		Date:   time.Date(2025, time.June, 20, 0, 0, 0, 0, time.UTC),
	}
	outOfPeriod := &entity.Expense{
		ID:     uuid.New(),
		Amount: money("99.00"),
		Date:   time.Date(2025, time.May, 20, 0, 0, 0, 0, time.UTC),
	}
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	s := Aggregate([]*entity.Client{client}, products, []*entity.Expense{inPeriod, outOfPeriod}, time.June, 2025, now)

	if !s.TotalExpenses.Equal(money("30.00")) {
		t.Errorf("expected totalExpenses 30.00, got %s", s.TotalExpenses)
	}
	if !s.NetProfit.Equal(money("70.00")) {
		t.Errorf("expected netProfit 70.00, got %s", s.NetProfit)
	}
	if len(s.Expenses) != 1 || s.Expenses[0].ID != inPeriod.ID {
		t.Errorf("expected only the in-period expense to be returned")
	}
}

func TestAggregate_PartitionInvariant(t *testing.T) {
	siteID := uuid.New()
	botID := uuid.New()
	products := []*entity.Product{
		{ID: siteID, Name: "Site Pro"},
		{ID: botID, Name: "Bot"},
	}
	clients := []*entity.Client{
		testClient("Alpha", 5, entity.ProductSubscription{
			ProductID:            siteID,
			ImplementationAmount: money("500.00"),
			ImplementationStatus: entity.ChargeStatusPaid,
			MonthlyAmount:        money("99.90"),
			MonthlyStatus:        entity.ChargeStatusToPay,
		}),
		testClient("Beta", 28, entity.ProductSubscription{
			ProductID:     botID,
			MonthlyAmount: money("150.00"),
			MonthlyStatus: entity.ChargeStatusToPay,
		}),
		testClient("Gamma", 12, entity.ProductSubscription{
			ProductID:            siteID,
			ImplementationAmount: money("500.00"),
			ImplementationStatus: entity.ChargeStatusPending,
		}),
	}
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	s := Aggregate(clients, products, nil, time.June, 2025, now)

	sum := s.TotalReceived.Add(s.TotalPending).Add(s.TotalOverdue)
	if !s.TotalExpected.Equal(sum) {
		t.Errorf("partition invariant broken: expected %s, parts sum to %s", s.TotalExpected, sum)
	}
	if s.PercentReceived < 0 || s.PercentReceived > 100 {
		t.Errorf("percentReceived out of range: %f", s.PercentReceived)
	}
}

func TestAggregate_PercentReceivedZeroWhenNothingExpected(t *testing.T) {
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)
	s := Aggregate(nil, nil, nil, time.June, 2025, now)
	if s.PercentReceived != 0 {
		t.Errorf("expected percentReceived 0, got %f", s.PercentReceived)
	}
	if !s.TotalExpected.IsZero() {
		t.Errorf("expected totalExpected 0, got %s", s.TotalExpected)
	}
}

func TestAggregate_UnknownProductFallback(t *testing.T) {
	client := testClient("Acme", 10, entity.ProductSubscription{
		ProductID:     uuid.New(),
		MonthlyAmount: money("80.00"),
		MonthlyStatus: entity.ChargeStatusToPay,
	})
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	s := Aggregate([]*entity.Client{client}, nil, nil, time.June, 2025, now)

	if len(s.ByProduct) != 1 {
		t.Fatalf("expected one product group, got %d", len(s.ByProduct))
	}
	if s.ByProduct[0].Name != UnknownProductName {
		t.Errorf("expected %q, got %q", UnknownProductName, s.ByProduct[0].Name)
	}
}

func TestAggregate_SubscriptionCountAsymmetry(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Site Pro"}}
	clients := []*entity.Client{
		testClient("Alpha", 5, entity.ProductSubscription{
			ProductID:            productID,
			ImplementationAmount: money("500.00"),
			ImplementationStatus: entity.ChargeStatusPending,
			MonthlyAmount:        money("99.90"),
			MonthlyStatus:        entity.ChargeStatusToPay,
		}),
		// Monthly-only subscription: does not bump SubscriptionCount.
		testClient("Beta", 5, entity.ProductSubscription{
			ProductID:     productID,
			MonthlyAmount: money("99.90"),
			MonthlyStatus: entity.ChargeStatusToPay,
		}),
	}
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	s := Aggregate(clients, products, nil, time.June, 2025, now)

	if len(s.ByProduct) != 1 {
		t.Fatalf("expected one product group, got %d", len(s.ByProduct))
	}
	if s.ByProduct[0].SubscriptionCount != 1 {
		t.Errorf("expected subscriptionCount 1 (implementation items only), got %d", s.ByProduct[0].SubscriptionCount)
	}
}

func TestAggregate_ByProductSortedByExpectedDescending(t *testing.T) {
	bigID := uuid.New()
	smallID := uuid.New()
	products := []*entity.Product{
		{ID: bigID, Name: "Big"},
		{ID: smallID, Name: "Small"},
	}
	clients := []*entity.Client{
		testClient("Alpha", 5, entity.ProductSubscription{
			ProductID:     smallID,
			MonthlyAmount: money("10.00"),
			MonthlyStatus: entity.ChargeStatusToPay,
		}),
		testClient("Beta", 7, entity.ProductSubscription{
			ProductID:     bigID,
			MonthlyAmount: money("900.00"),
			MonthlyStatus: entity.ChargeStatusToPay,
		}),
	}
	now := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)

	s := Aggregate(clients, products, nil, time.June, 2025, now)

	if len(s.ByProduct) != 2 {
		t.Fatalf("expected two product groups, got %d", len(s.ByProduct))
	}
	if s.ByProduct[0].Name != "Big" || s.ByProduct[1].Name != "Small" {
		t.Errorf("expected descending order by expected total, got %q then %q", s.ByProduct[0].Name, s.ByProduct[1].Name)
	}
	if s.ByDueDay[0].Day != 5 || s.ByDueDay[1].Day != 7 {
		t.Errorf("expected due-day groups sorted ascending, got %d then %d", s.ByDueDay[0].Day, s.ByDueDay[1].Day)
	}
}

func TestAggregate_Determinism(t *testing.T) {
	productID := uuid.New()
	products := []*entity.Product{{ID: productID, Name: "Site Pro"}}
	clients := []*entity.Client{
		testClient("Alpha", 5, entity.ProductSubscription{
			ProductID:            productID,
			ImplementationAmount: money("500.00"),
			ImplementationStatus: entity.ChargeStatusPaid,
			MonthlyAmount:        money("99.90"),
			MonthlyStatus:        entity.ChargeStatusToPay,
		}),
	}
	now := time.Date(2025, time.June, 15, 0, 0, 0, 0, time.UTC)

	first := Aggregate(clients, products, nil, time.June, 2025, now)
	second := Aggregate(clients, products, nil, time.June, 2025, now)

	if !first.TotalExpected.Equal(second.TotalExpected) ||
		!first.TotalReceived.Equal(second.TotalReceived) ||
		!first.TotalPending.Equal(second.TotalPending) ||
		!first.TotalOverdue.Equal(second.TotalOverdue) ||
		first.PercentReceived != second.PercentReceived ||
		len(first.ByProduct) != len(second.ByProduct) ||
		len(first.ByDueDay) != len(second.ByDueDay) {
		t.Error("expected identical results for identical inputs")
	}
}

func TestBillableItems(t *testing.T) {
	productID := uuid.New()

	t.Run("nil subscriptions yield nothing", func(t *testing.T) {
		if items := BillableItems(&entity.Client{Name: "Empty"}); items != nil {
			t.Errorf("expected nil, got %d items", len(items))
		}
	})

	t.Run("zero amounts are skipped", func(t *testing.T) {
		client := testClient("Acme", 5, entity.ProductSubscription{
			ProductID: productID,
		})
		if items := BillableItems(client); items != nil {
			t.Errorf("expected nil, got %d items", len(items))
		}
	})

	t.Run("implementation item precedes monthly item", func(t *testing.T) {
		client := testClient("Acme", 5, entity.ProductSubscription{
			ProductID:            productID,
			ImplementationAmount: money("500.00"),
			ImplementationStatus: entity.ChargeStatusPending,
			MonthlyAmount:        money("99.90"),
			MonthlyStatus:        entity.ChargeStatusToPay,
		})
		items := BillableItems(client)
		if len(items) != 2 {
			t.Fatalf("expected 2 items, got %d", len(items))
		}
		if items[0].Kind != entity.ChargeKindImplementation {
			t.Errorf("expected implementation first, got %s", items[0].Kind)
		}
		if items[1].Kind != entity.ChargeKindMonthly {
			t.Errorf("expected monthly second, got %s", items[1].Kind)
		}
	})
}
