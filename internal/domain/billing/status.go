// Package billing implements the read-side financial aggregation core:
// effective-status resolution, billable-item extraction and the monthly
// revenue/expense summary. Everything here is pure and deterministic for a
// fixed input snapshot and reference time, so it is safe to call from any
// number of goroutines.
package billing

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// DueDate returns the charge due date for the given period. Due days beyond
// the month's length are clamped to the last day of the month rather than
// rolling into the next month.
func DueDate(dueDay int, month time.Month, year int) time.Time {
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
	if dueDay > lastDay {
		dueDay = lastDay
	}
	if dueDay < entity.MinDueDay {
		dueDay = entity.MinDueDay
	}
	return time.Date(year, month, dueDay, 0, 0, 0, 0, time.UTC)
}

// ResolveStatus derives the effective status of a charge at read time.
// A stored "paid" is terminal and never reverted. A stored "overdue" stays
// overdue. Any other stored status becomes "overdue" once the period's due
// date is strictly before now, and is returned unchanged otherwise. The
// stored record is never rewritten.
func ResolveStatus(stored entity.ChargeStatus, dueDay int, month time.Month, year int, now time.Time) entity.ChargeStatus {
	if stored == entity.ChargeStatusPaid {
		return entity.ChargeStatusPaid
	}
	if stored == entity.ChargeStatusOverdue {
		return entity.ChargeStatusOverdue
	}
	if DueDate(dueDay, month, year).Before(now) {
		return entity.ChargeStatusOverdue
	}
	return stored
}
