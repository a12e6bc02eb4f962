// Package calendar contains calendar use cases.
package calendar

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
)

// AddEntryInput represents the input for creating a calendar entry.
// Date uses the "YYYY-MM-DD" wire format.
type AddEntryInput struct {
	UserID      uuid.UUID
	Title       string
	Description string
	Date        string
}

// AddEntryOutput represents the output of creating a calendar entry.
type AddEntryOutput struct {
	Entry *entity.CalendarEntry
	Task  *entity.Task
}

// AddEntryUseCase creates a calendar entry and mirrors it as a todo task on
// the board, due on the entry's date.
type AddEntryUseCase struct {
	calendarRepo adapter.CalendarRepository
	taskRepo     adapter.TaskRepository
}

// NewAddEntryUseCase creates a new AddEntryUseCase instance.
func NewAddEntryUseCase(calendarRepo adapter.CalendarRepository, taskRepo adapter.TaskRepository) *AddEntryUseCase {
	return &AddEntryUseCase{
		calendarRepo: calendarRepo,
		taskRepo:     taskRepo,
	}
}

// Execute creates the entry and its linked task.
func (uc *AddEntryUseCase) Execute(ctx context.Context, input AddEntryInput) (*AddEntryOutput, error) {
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeCalendarTitleRequired,
			"calendar entry title is required",
			domainerror.ErrCalendarTitleRequired,
		)
	}

	date, err := time.ParseInLocation(entity.CalendarDateFormat, input.Date, time.UTC)
	if err != nil {
		return nil, domainerror.NewCalendarError(
			domainerror.ErrCodeInvalidCalendarDate,
			fmt.Sprintf("date must use the %s format", entity.CalendarDateFormat),
			domainerror.ErrInvalidCalendarDate,
		)
	}

	entry := entity.NewCalendarEntry(input.UserID, title, strings.TrimSpace(input.Description), date)
	if err := uc.calendarRepo.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("failed to create calendar entry: %w", err)
	}

	// The board mirror is best effort: the entry stands on its own if the
	// task insert fails.
	task := entity.NewTask(input.UserID, title, entry.Description, entity.TaskStatusTodo, &date, nil)
	if err := uc.taskRepo.Create(ctx, task); err != nil {
		slog.Warn("Failed to create linked board task for calendar entry", "error", err, "entryID", entry.ID)
		task = nil
	}

	return &AddEntryOutput{Entry: entry, Task: task}, nil
}
