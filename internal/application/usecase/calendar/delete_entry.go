// Package calendar contains calendar use cases.
package calendar

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// DeleteEntryInput represents the input for deleting a calendar entry.
type DeleteEntryInput struct {
	UserID  uuid.UUID
	EntryID uuid.UUID
}

// DeleteEntryOutput represents the output of deleting a calendar entry.
type DeleteEntryOutput struct {
	Success bool
}

// DeleteEntryUseCase handles calendar entry deletion.
type DeleteEntryUseCase struct {
	calendarRepo adapter.CalendarRepository
}

// NewDeleteEntryUseCase creates a new DeleteEntryUseCase instance.
func NewDeleteEntryUseCase(calendarRepo adapter.CalendarRepository) *DeleteEntryUseCase {
	return &DeleteEntryUseCase{calendarRepo: calendarRepo}
}

// Execute deletes the entry. The linked board task, if any, stays.
func (uc *DeleteEntryUseCase) Execute(ctx context.Context, input DeleteEntryInput) (*DeleteEntryOutput, error) {
	if _, err := uc.calendarRepo.FindByID(ctx, input.UserID, input.EntryID); err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeCalendarEntryNotFound,
			"calendar entry not found",
			domainerror.ErrCalendarEntryNotFound,
		)
	}

	if err := uc.calendarRepo.Delete(ctx, input.UserID, input.EntryID); err != nil {
		return nil, fmt.Errorf("failed to delete calendar entry: %w", err)
	}

	return &DeleteEntryOutput{Success: true}, nil
}
