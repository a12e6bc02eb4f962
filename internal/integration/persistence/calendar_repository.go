// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/business-manager/backend/internal/application/adapter"
	"github.com/business-manager/backend/internal/domain/entity"
	domainerror "github.com/business-manager/backend/internal/domain/error"
	"github.com/business-manager/backend/internal/integration/persistence/model"
)

// calendarRepository implements the adapter.CalendarRepository interface.
type calendarRepository struct {
	db *gorm.DB
}

// NewCalendarRepository creates a new calendar repository instance.
func NewCalendarRepository(db *gorm.DB) adapter.CalendarRepository {
	return &calendarRepository{
		db: db,
	}
}

// Create creates a new calendar entry in the database.
func (r *calendarRepository) Create(ctx context.Context, entry *entity.CalendarEntry) error {
	entryModel := model.CalendarEntryFromEntity(entry)
	result := r.db.WithContext(ctx).Create(entryModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a calendar entry by ID, scoped to the owning user.
func (r *calendarRepository) FindByID(ctx context.Context, userID, id uuid.UUID) (*entity.CalendarEntry, error) {
	var entryModel model.CalendarEntryModel
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&entryModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrCalendarEntryNotFound
		}
		return nil, result.Error
	}
	return entryModel.ToEntity(), nil
}

// FindByUserID retrieves all calendar entries for a user, ordered by date.
func (r *calendarRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.CalendarEntry, error) {
	var entryModels []model.CalendarEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date ASC, created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCalendarEntities(entryModels), nil
}

// FindByDate retrieves the entries of a user on a "YYYY-MM-DD" date.
func (r *calendarRepository) FindByDate(ctx context.Context, userID uuid.UUID, date string) ([]*entity.CalendarEntry, error) {
	day, err := time.ParseInLocation(entity.CalendarDateFormat, date, time.UTC)
	if err != nil {
		return nil, domainerror.ErrInvalidCalendarDate
	}

	var entryModels []model.CalendarEntryModel
	result := r.db.WithContext(ctx).
		Where("user_id = ? AND date >= ? AND date < ?", userID, day, day.AddDate(0, 0, 1)).
		Order("created_at ASC").
		Find(&entryModels)
	if result.Error != nil {
		return nil, result.Error
	}
	return toCalendarEntities(entryModels), nil
}

// Delete removes a calendar entry from the database.
func (r *calendarRepository) Delete(ctx context.Context, userID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&model.CalendarEntryModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrCalendarEntryNotFound
	}
	return nil
}

func toCalendarEntities(models []model.CalendarEntryModel) []*entity.CalendarEntry {
	entries := make([]*entity.CalendarEntry, len(models))
	for i, em := range models {
		entries[i] = em.ToEntity()
	}
	return entries
}
