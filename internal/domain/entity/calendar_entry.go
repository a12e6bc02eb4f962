// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// CalendarDateFormat is the wire format for calendar entry dates.
const CalendarDateFormat = "2006-01-02"

// CalendarEntry represents a note pinned to a calendar day. Adding an entry
// also creates a linked board task, mirrored by the application layer.
type CalendarEntry struct {
	ID          uuid.UUID
	UserID      uuid.UUID
	Title       string
	Description string
	Date        time.Time
	CreatedAt   time.Time
}

// NewCalendarEntry creates a new CalendarEntry entity.
func NewCalendarEntry(userID uuid.UUID, title, description string, date time.Time) *CalendarEntry {
	return &CalendarEntry{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       title,
		Description: description,
		Date:        date,
		CreatedAt:   time.Now().UTC(),
	}
}
