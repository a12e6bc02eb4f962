package billing

import (
	"testing"
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

func TestResolveStatus(t *testing.T) {
	now := time.Date(2025, time.March, 15, 12, 0, 0, 0, time.UTC)

	t.Run("paid is terminal even past the due date", func(t *testing.T) {
		got := ResolveStatus(entity.ChargeStatusPaid, 10, time.March, 2025, now)
		if got != entity.ChargeStatusPaid {
			t.Errorf("expected paid, got %s", got)
		}
	})

	t.Run("unpaid charge past due date becomes overdue", func(t *testing.T) {
		got := ResolveStatus(entity.ChargeStatusToPay, 10, time.March, 2025, now)
		if got != entity.ChargeStatusOverdue {
			t.Errorf("expected overdue, got %s", got)
		}
	})

	t.Run("pending implementation past due date becomes overdue", func(t *testing.T) {
		got := ResolveStatus(entity.ChargeStatusPending, 14, time.March, 2025, now)
		if got != entity.ChargeStatusOverdue {
			t.Errorf("expected overdue, got %s", got)
		}
	})

	t.Run("unpaid charge before due date keeps stored status", func(t *testing.T) {
		got := ResolveStatus(entity.ChargeStatusToPay, 20, time.March, 2025, now)
		if got != entity.ChargeStatusToPay {
			t.Errorf("expected to_pay, got %s", got)
		}
	})

	t.Run("stored overdue stays overdue", func(t *testing.T) {
		got := ResolveStatus(entity.ChargeStatusOverdue, 20, time.March, 2025, now)
		if got != entity.ChargeStatusOverdue {
			t.Errorf("expected overdue, got %s", got)
		}
	})

	t.Run("deterministic for fixed inputs", func(t *testing.T) {
		first := ResolveStatus(entity.ChargeStatusToPay, 10, time.March, 2025, now)
		second := ResolveStatus(entity.ChargeStatusToPay, 10, time.March, 2025, now)
		if first != second {
			t.Errorf("expected identical results, got %s and %s", first, second)
		}
	})
}

func TestDueDate(t *testing.T) {
	t.Run("regular day", func(t *testing.T) {
		got := DueDate(10, time.March, 2025)
		want := time.Date(2025, time.March, 10, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("day 31 clamps to end of a 30-day month", func(t *testing.T) {
		got := DueDate(31, time.April, 2025)
		want := time.Date(2025, time.April, 30, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("day 30 clamps to February's last day", func(t *testing.T) {
		got := DueDate(30, time.February, 2025)
		want := time.Date(2025, time.February, 28, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})

	t.Run("leap year February", func(t *testing.T) {
		got := DueDate(31, time.February, 2024)
		want := time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC)
		if !got.Equal(want) {
			t.Errorf("expected %v, got %v", want, got)
		}
	})
}
