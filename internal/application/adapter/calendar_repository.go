// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/business-manager/backend/internal/domain/entity"
)

// CalendarRepository defines the interface for calendar entry persistence operations.
type CalendarRepository interface {
	// Create creates a new calendar entry in the database.
	Create(ctx context.Context, entry *entity.CalendarEntry) error

	// FindByID retrieves a calendar entry by ID, scoped to the owning user.
	FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CalendarEntry, error)

	// FindByUserID retrieves all calendar entries for a user, ordered by date.
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CalendarEntry, error)

	// FindByDate retrieves the entries of a user on a "YYYY-MM-DD" date.
	FindByDate(ctx context.Context, userID uuid.UUID, date string) ([]*entity.CalendarEntry, error)

	// Delete removes a calendar entry from the database.
	Delete(ctx context.Context, userID, id uuid.UUID) error
}
