// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/business-manager/backend/internal/domain/entity"
)

// AddCalendarEntryRequest represents the request body for creating a
// calendar entry. Date uses the "YYYY-MM-DD" wire format.
type AddCalendarEntryRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=1000"`
	Date        string `json:"date" binding:"required,datetime=2006-01-02"`
}

// CalendarEntryResponse represents a calendar entry in API responses.
type CalendarEntryResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Date        string    `json:"date"`
	CreatedAt   time.Time `json:"created_at"`
}

// AddCalendarEntryResponse is returned on entry creation. Task is the board
// task mirrored from the entry; it is null when task creation failed.
type AddCalendarEntryResponse struct {
	Entry CalendarEntryResponse `json:"entry"`
	Task  *TaskResponse         `json:"task"`
}

// CalendarEntryListResponse represents the response for listing entries.
type CalendarEntryListResponse struct {
	Entries []CalendarEntryResponse `json:"entries"`
}

// ToCalendarEntryResponse converts a CalendarEntry entity to a response DTO.
func ToCalendarEntryResponse(entry *entity.CalendarEntry) CalendarEntryResponse {
	return CalendarEntryResponse{
		ID:          entry.ID.String(),
		Title:       entry.Title,
		Description: entry.Description,
		Date:        entry.Date.Format(entity.CalendarDateFormat),
		CreatedAt:   entry.CreatedAt,
	}
}

// ToCalendarEntryListResponse converts entries to a list response.
func ToCalendarEntryListResponse(entries []*entity.CalendarEntry) CalendarEntryListResponse {
	resp := CalendarEntryListResponse{Entries: make([]CalendarEntryResponse, 0, len(entries))}
	for _, e := range entries {
		resp.Entries = append(resp.Entries, ToCalendarEntryResponse(e))
	}
	return resp
}
