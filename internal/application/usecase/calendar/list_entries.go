// Package calendar contains calendar use cases.
package calendar

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// ListEntriesInput represents the input for listing calendar entries. When
// Date is set ("YYYY-MM-DD"), only that day's entries are returned.
type ListEntriesInput struct {
	UserID uuid.UUID
	Date   string
}

// ListEntriesOutput represents the output of listing calendar entries.
type ListEntriesOutput struct {
	Entries []*entity.CalendarEntry
}

// ListEntriesUseCase handles listing a user's calendar entries.
type ListEntriesUseCase struct {
	calendarRepo adapter.CalendarRepository
}

// NewListEntriesUseCase creates a new ListEntriesUseCase instance.
func NewListEntriesUseCase(calendarRepo adapter.CalendarRepository) *ListEntriesUseCase {
	return &ListEntriesUseCase{calendarRepo: calendarRepo}
}

// Execute lists entries, optionally filtered to one day.
func (uc *ListEntriesUseCase) Execute(ctx context.Context, input ListEntriesInput) (*ListEntriesOutput, error) {
	if input.Date == "" {
		entries, err := uc.calendarRepo.FindByUserID(ctx, input.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to list calendar entries: %w", err)
		}
		return &ListEntriesOutput{Entries: entries}, nil
	}

	if _, err := time.ParseInLocation(entity.CalendarDateFormat, input.Date, time.UTC); err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidCalendarDate,
			fmt.Sprintf("date must use the %s format", entity.CalendarDateFormat),
			domainerror.ErrInvalidCalendarDate,
		)
	}

	entries, err := uc.calendarRepo.FindByDate(ctx, input.UserID, input.Date)
	if err != nil {
		return nil, fmt.Errorf("failed to list calendar entries: %w", err)
	}
	return &ListEntriesOutput{Entries: entries}, nil
}
